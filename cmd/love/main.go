package main

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/san-kum/love/internal/anim"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "1.2.0"

// main runs the love command on the real terminal and exits with status 1 if
// the command returns an error.
func main() {
	a := &app{
		term:    anim.NewConsole(os.Stdout),
		profile: termenv.NewOutput(os.Stdout).Profile,
		delay:   anim.DefaultDelay,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
