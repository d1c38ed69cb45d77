package heart

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const (
	glyph = "vv"
	blank = "  "

	// indentOffset shifts the heart left of the terminal's center column.
	indentOffset = 10
)

// Renderer draws the heart one terminal row at a time.
type Renderer struct {
	size    Size
	message string
	style   termenv.Style
}

// NewRenderer builds a renderer for the given size, message and color. The
// message must already be sanitized. An empty message draws a bare heart.
func NewRenderer(size Size, message string, color Color, profile termenv.Profile) *Renderer {
	if message != "" {
		message = " " + message + " "
	}
	return &Renderer{
		size:    size,
		message: message,
		style:   profile.String().Foreground(profile.Color(string(color.Value))),
	}
}

// Size returns the drawing area the renderer was built for.
func (r *Renderer) Size() Size { return r.size }

// Row writes row y of the heart for a terminal of cols x rows cells. done
// reports that the heart has scrolled completely off the screen.
func (r *Renderer) Row(w io.Writer, y, cols, rows int) (done bool, err error) {
	var b strings.Builder
	if indent := (cols/2 - r.size.Half) - indentOffset; indent > 0 {
		b.WriteString(strings.Repeat(" ", indent))
	}
	b.WriteString(r.style.Styled(r.cells(y)))
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return false, err
	}
	return y >= rows+r.size.Total, nil
}

// cells lays out the glyphs of row y. On the midline the padded message is
// spliced in at messageIndent and the column counter skips half its length.
// Both divisors were tuned by eye and only look right together.
func (r *Renderer) cells(y int) string {
	var b strings.Builder
	midline := y == r.size.Half-1
	messageIndent := r.size.Half - len(r.message)/4 - 1

	for x := 0; ; x++ {
		if Contains(x, y, r.size.Total) {
			b.WriteString(glyph)
		} else {
			b.WriteString(blank)
		}
		if midline && x == messageIndent {
			b.WriteString(r.message)
			x += len(r.message) / 2
		}
		if x >= r.size.Total {
			break
		}
	}
	return b.String()
}
