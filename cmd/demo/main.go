// Renders the discrete color key of a ternary color map: the simplex mesh
// for a given number of breaks, each cell filled with its mapped color. With
// more than one frame the output is an animated PNG sweeping the spread
// parameter, which visualizes how contrast grows away from the center.
package main

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/kettek/apng"

	"github.com/compviz/tricolor"
	"github.com/compviz/tricolor/colorconv"
	"github.com/compviz/tricolor/internal/render"
	"github.com/compviz/tricolor/simplex"
	"github.com/compviz/tricolor/ternary"
)

var _ = fmt.Print

const size = 640

func key_frame(k int, spread float64) (image.Image, error) {
	opts := tricolor.DefaultOptions()
	opts.Breaks = float64(k)
	opts.Spread = spread
	cells := ternary.Mesh(k)
	points := make([]simplex.Point, len(cells))
	for i, c := range cells {
		points[i] = simplex.Point{C: c.Centroid, Valid: true}
	}
	results, err := tricolor.ColorMap(points, opts)
	if err != nil {
		return nil, err
	}
	canvas := render.NewCanvas(size)
	for i, c := range cells {
		r := results[i]
		canvas.FillTriangle(c.Vertices, colorconv.HCLToNRGBA(r.Hue, r.Chroma, r.Lightness))
	}
	return canvas.Image(), nil
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) < 2 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/demo output-file [breaks] [frames]")
		os.Exit(1)
	}
	output_file := os.Args[1]
	breaks := 4
	if len(os.Args) > 2 {
		if breaks, err = strconv.Atoi(os.Args[2]); err != nil {
			return
		}
	}
	num_frames := 1
	if len(os.Args) > 3 {
		if num_frames, err = strconv.Atoi(os.Args[3]); err != nil {
			return
		}
	}
	var anim apng.APNG
	for i := range num_frames {
		// sweep spread over [1, 3]
		spread := 1.0
		if num_frames > 1 {
			spread = 1 + 2*float64(i)/float64(num_frames-1)
		}
		var frame image.Image
		if frame, err = key_frame(breaks, spread); err != nil {
			return
		}
		anim.Frames = append(anim.Frames, apng.Frame{
			Image: frame, DelayNumerator: 1, DelayDenominator: 5,
			DisposeOp: apng.DISPOSE_OP_NONE, BlendOp: apng.BLEND_OP_SOURCE,
		})
	}
	out, err := os.OpenFile(output_file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return
	}
	defer out.Close()
	if err = apng.Encode(out, anim); err == nil {
		fmt.Println("Color key saved to:", output_file)
	}
}
