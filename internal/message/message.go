// Package message validates and sanitizes the text shown inside the heart.
package message

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxLength is the longest message accepted, in characters.
const MaxLength = 100

// ErrTooLong indicates a message longer than MaxLength. It is shown to the
// user verbatim, hence the capital letter.
var ErrTooLong = errors.New("Message too long")

// Validate rejects messages longer than MaxLength and returns the sanitized
// form of everything else.
func Validate(raw string) (string, error) {
	if utf8.RuneCountInString(raw) > MaxLength {
		return "", fmt.Errorf("%w (max %d characters)", ErrTooLong, MaxLength)
	}
	return Sanitize(raw), nil
}

// Sanitize drops every rune outside printable ASCII, keeping tab and newline.
// The result is interpolated straight into terminal output, so escape and
// control sequences must not survive.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if allowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allowed(r rune) bool {
	return (r >= 0x20 && r <= 0x7e) || r == '\t' || r == '\n'
}
