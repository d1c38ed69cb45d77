// Package heart draws an ASCII heart row by row.
package heart

import "math"

// Shape tuning. These were picked by eye so the glyph grid looks like a heart
// at common terminal cell aspect ratios.
const (
	widthScale  = 2.2
	heightScale = 3.0
	xCenter     = 0.5
	yBaseline   = 0.4
	lobeCoeff   = 0.7
)

// Contains reports whether cell (x, y) lies inside a heart of the given size.
// Row 0 is the top of the shape and y grows downward.
func Contains(x, y, size int) bool {
	s := float64(size)
	nx := (float64(x)/s - xCenter) * widthScale
	ny := (float64(size-y)/s - yBaseline) * heightScale

	r := 1 - nx*nx
	if r < 0 {
		return false
	}

	circle := math.Sqrt(r)
	lobe := lobeCoeff * math.Sqrt(math.Abs(nx))

	top := circle + lobe
	bottom := -circle + lobe
	return bottom <= ny && ny <= top
}
