package ternary

import (
	"math"

	"github.com/compviz/tricolor/simplex"
)

// ToCartesian projects a barycentric simplex point onto the plane, placing
// the simplex corners at (0,0), (1/2, √3/2) and (1,0): an equilateral
// triangle with the p2 corner on top. Renderers draw in this frame.
func ToCartesian(c simplex.Composition) (x, y float64) {
	x = c[2] + c[1]/2
	y = math.Sqrt(3) / 2 * c[1]
	return
}

// FromCartesian is the exact inverse of ToCartesian up to floating
// precision.
func FromCartesian(x, y float64) simplex.Composition {
	p2 := 2 / math.Sqrt(3) * y
	p3 := x - p2/2
	return simplex.Composition{1 - p2 - p3, p2, p3}
}
