package anim

import "errors"

var (
	// ErrTerminal wraps any failure to query or write the terminal.
	ErrTerminal = errors.New("anim: terminal i/o failed")

	// ErrNotTerminal indicates the output is not attached to a terminal.
	ErrNotTerminal = errors.New("anim: output is not a terminal")
)
