// Package anim drives the scrolling heart: it takes over the terminal, feeds
// one row per tick to a renderer and puts the terminal back when done.
package anim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// DefaultDelay is the pause between two rows.
const DefaultDelay = 300 * time.Millisecond

const (
	enterSeq = ansi.SetAltScreenSaveCursorMode + ansi.HideCursor + ansi.SaveCursor
	leaveSeq = ansi.RestoreCursor + ansi.ShowCursor + ansi.ResetAltScreenSaveCursorMode
)

// RowRenderer writes row y for a cols x rows terminal and reports whether
// the animation has finished.
type RowRenderer interface {
	Row(w io.Writer, y, cols, rows int) (done bool, err error)
}

type Animator struct {
	term     Terminal
	renderer RowRenderer
	delay    time.Duration
}

type Option func(*Animator)

// WithDelay overrides DefaultDelay. Zero disables the pause.
func WithDelay(d time.Duration) Option {
	return func(a *Animator) { a.delay = d }
}

func New(t Terminal, r RowRenderer, opts ...Option) *Animator {
	a := &Animator{
		term:     t,
		renderer: r,
		delay:    DefaultDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run animates until ctx is cancelled or the renderer reports it is done.
// Cancellation is a normal stop and returns nil. The terminal is restored on
// every return path.
func (a *Animator) Run(ctx context.Context) (err error) {
	defer func() {
		if lerr := a.leave(); lerr != nil && err == nil {
			err = lerr
		}
	}()
	if err := a.enter(); err != nil {
		return err
	}

	for y := 0; ; y++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		cols, rows, err := a.term.Size()
		if err != nil {
			return fmt.Errorf("%w: query size: %w", ErrTerminal, err)
		}

		done, err := a.renderer.Row(a.term, y, cols, rows)
		if err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrTerminal, y, err)
		}
		if done {
			return nil
		}

		if !a.sleep(ctx) {
			return nil
		}
	}
}

// enter switches to the alternate screen and parks the cursor on the bottom
// row so every new line pushes the previous ones up.
func (a *Animator) enter() error {
	if _, err := io.WriteString(a.term, enterSeq); err != nil {
		return fmt.Errorf("%w: enter alternate screen: %w", ErrTerminal, err)
	}
	_, rows, err := a.term.Size()
	if err != nil {
		return fmt.Errorf("%w: query size: %w", ErrTerminal, err)
	}
	if _, err := io.WriteString(a.term, ansi.CursorPosition(1, rows)); err != nil {
		return fmt.Errorf("%w: move cursor: %w", ErrTerminal, err)
	}
	return nil
}

func (a *Animator) leave() error {
	if _, err := io.WriteString(a.term, leaveSeq); err != nil {
		return fmt.Errorf("%w: restore terminal: %w", ErrTerminal, err)
	}
	return nil
}

// sleep waits for the frame delay and reports false if ctx ended first.
func (a *Animator) sleep(ctx context.Context) bool {
	if a.delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(a.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
