// Renders the sextant color key: the six regions of the simplex around a
// center, filled with the fixed sextant palette.
package main

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"strconv"

	"github.com/compviz/tricolor"
	"github.com/compviz/tricolor/internal/render"
	"github.com/compviz/tricolor/simplex"
	"github.com/compviz/tricolor/ternary"
)

var _ = fmt.Print

const size = 640

func parse_hex(s string) (c color.NRGBA, err error) {
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return c, err
	}
	return color.NRGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, nil
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) != 2 && len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/sextantkey output-file [c1 c2 c3]")
		os.Exit(1)
	}
	opts := tricolor.DefaultSextantOptions()
	if len(os.Args) == 5 {
		vals := make([]float64, 3)
		for i, a := range os.Args[2:] {
			if vals[i], err = strconv.ParseFloat(a, 64); err != nil {
				return
			}
		}
		center := simplex.PointOf(vals...).Closed()
		if !center.Valid {
			err = fmt.Errorf("invalid center %v", vals)
			return
		}
		opts.Center = center.C
	}
	canvas := render.NewCanvas(size)
	for _, s := range ternary.SextantVertices(opts.Center) {
		var c color.NRGBA
		if c, err = parse_hex(opts.Values[s.ID-1]); err != nil {
			return
		}
		canvas.FillPolygon(s.Vertices, c)
	}
	out, err := os.OpenFile(os.Args[1], os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return
	}
	defer out.Close()
	if err = png.Encode(out, canvas.Image()); err == nil {
		fmt.Println("Sextant key saved to:", os.Args[1])
	}
}
