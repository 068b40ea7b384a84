package tricolor

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"

	"github.com/compviz/tricolor/colorconv"
	"github.com/compviz/tricolor/simplex"
	"github.com/compviz/tricolor/ternary"
)

var _ = fmt.Print

// ColorResult is the color assigned to one input composition. Input holds
// the closed original composition, independent of any discretization applied
// before mixing. When Valid is false the input could not be interpreted as a
// composition and all color fields are absent.
type ColorResult struct {
	Input     simplex.Point
	Hue       float64 // degrees, in [0,360)
	Chroma    float64
	Lightness float64
	Color     string // #RRGGBB
	Valid     bool
}

// SextantResult is the region color assigned to one input composition.
// Sextant is 0 with Valid false when the input is invalid or falls on no
// sextant (for example the center itself).
type SextantResult struct {
	Input   simplex.Point
	Sextant int
	Color   string
	Valid   bool
}

// ColorMap assigns each composition a color through trichromatic hue mixing:
// the input is closed, optionally snapped to the nearest of Breaks² mesh
// centroids, recentered on opts.Center, power-scaled by opts.Spread, and
// mixed into an HCL color that is converted to sRGB hex. Always returns one
// result per input, in input order; invalid inputs yield invalid results
// rather than errors.
func ColorMap(points []simplex.Point, opts Options) ([]ColorResult, error) {
	closed := simplex.Closure(points)
	mapped := closed
	if !opts.Continuous() {
		centroids := ternary.MeshCentroids(int(opts.Breaks))
		mapped = ternary.NearestOf(closed, centroids)
	}
	mapped = simplex.Perturb(mapped, opts.Center)
	mapped = simplex.PowerScale(mapped, opts.Spread)

	ans := make([]ColorResult, len(points))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			ans[i].Input = closed[i]
			p := mapped[i]
			if !p.Valid {
				continue
			}
			h, c, l := colorconv.MixHues(p.C[0], p.C[1], p.C[2], opts.Hue, opts.Chroma, opts.Lightness, opts.Contrast)
			ans[i].Hue, ans[i].Chroma, ans[i].Lightness = h, c, l
			ans[i].Color = colorconv.HCLToHex(h, c, l)
			ans[i].Valid = true
		}
	}
	err := parallel.Run_in_parallel_over_range(0, f, 0, len(points))
	return ans, err
}

// SextantColorMap assigns each composition one of six fixed colors according
// to the sextant it falls into around opts.Center. Fails if the palette does
// not have exactly 6 entries; per-element invalidity never fails the batch.
func SextantColorMap(points []simplex.Point, opts SextantOptions) ([]SextantResult, error) {
	if len(opts.Values) != 6 {
		return nil, fmt.Errorf("invalid sextant palette: need exactly 6 colors, got %d", len(opts.Values))
	}
	closed := simplex.Closure(points)
	ids := ternary.ClassifySextant(closed, opts.Center)
	ans := make([]SextantResult, len(points))
	for i, id := range ids {
		ans[i].Input = closed[i]
		if id == 0 {
			continue
		}
		ans[i].Sextant = id
		ans[i].Color = opts.Values[id-1]
		ans[i].Valid = true
	}
	return ans, nil
}
