package anim

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// Terminal is the output the heart scrolls on. Size is queried on every
// frame so the animation follows the current window dimensions.
type Terminal interface {
	io.Writer
	Size() (cols, rows int, err error)
}

// Console is a Terminal backed by a file descriptor, usually os.Stdout.
type Console struct {
	f *os.File
}

func NewConsole(f *os.File) *Console {
	return &Console{f: f}
}

func (c *Console) Write(p []byte) (int, error) {
	return c.f.Write(p)
}

func (c *Console) Size() (cols, rows int, err error) {
	if !term.IsTerminal(c.f.Fd()) {
		return 0, 0, ErrNotTerminal
	}
	return term.GetSize(c.f.Fd())
}
