// Package render rasterizes simplex polygons for the demo commands. It is
// the thin rendering collaborator of the color-mapping core: it consumes
// Cartesian projections and display colors and knows nothing about how they
// were produced.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/compviz/tricolor/simplex"
	"github.com/compviz/tricolor/ternary"
)

const margin = 16

// Canvas is a square white canvas holding an upright equilateral triangle
// spanning the drawable area.
type Canvas struct {
	size int
	img  *image.NRGBA
	ras  *vector.Rasterizer
}

func NewCanvas(size int) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Canvas{size: size, img: img, ras: vector.NewRasterizer(size, size)}
}

// project maps a simplex point to pixel coordinates, y growing downward.
func (self *Canvas) project(p simplex.Composition) (float32, float32) {
	x, y := ternary.ToCartesian(p)
	scale := float64(self.size - 2*margin)
	return float32(margin + x*scale), float32(float64(self.size-margin) - y*scale)
}

// FillPolygon fills the polygon through the given simplex points. Closed
// rings (first point repeated last) are handled, ClosePath closes the ring
// either way.
func (self *Canvas) FillPolygon(points []simplex.Composition, c color.NRGBA) {
	if len(points) < 3 {
		return
	}
	self.ras.Reset(self.size, self.size)
	x, y := self.project(points[0])
	self.ras.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = self.project(p)
		self.ras.LineTo(x, y)
	}
	self.ras.ClosePath()
	self.ras.Draw(self.img, self.img.Bounds(), image.NewUniform(c), image.Point{})
}

// FillTriangle fills one mesh cell.
func (self *Canvas) FillTriangle(v [3]simplex.Composition, c color.NRGBA) {
	self.FillPolygon(v[:], c)
}

func (self *Canvas) Image() image.Image {
	return self.img
}
