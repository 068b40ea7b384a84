package tricolor

import (
	"math"

	"github.com/compviz/tricolor/simplex"
)

// Breaks at or above this count produce cells smaller than any plausible
// rendering can resolve, so such maps are treated as continuous.
const continuousBreaks = 100

// Options configures ColorMap. Zero values are not meaningful; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// Center is the composition that maps to neutral gray. Defaults to the
	// simplex centroid; pass simplex.Center of the dataset for a map
	// centered on the data.
	Center simplex.Composition
	// Breaks is the mesh subdivision level for discrete maps: the simplex
	// is divided into Breaks² cells, one color each. math.Inf(1) (or any
	// value >= 100) disables discretization.
	Breaks float64
	// Hue is the primary hue of the first component, in degrees. The other
	// two components sit at Hue+120 and Hue+240.
	Hue float64
	// Chroma is the maximum chroma, reached when a single component
	// dominates completely.
	Chroma float64
	// Lightness is the lightness at the center, modulated toward the
	// periphery according to Contrast.
	Lightness float64
	// Contrast in [0,1] scales how strongly lightness and chroma differ
	// between center and periphery: 0 keeps lightness constant, 1 modulates
	// it fully by the mixed chroma.
	Contrast float64
	// Spread is the power-scaling exponent applied after centering; values
	// above 1 spread colors away from the center.
	Spread float64
}

// DefaultOptions returns the documented ColorMap defaults.
func DefaultOptions() Options {
	return Options{
		Center:    simplex.Composition{1. / 3, 1. / 3, 1. / 3},
		Breaks:    4,
		Hue:       80,
		Chroma:    140,
		Lightness: 80,
		Contrast:  0.4,
		Spread:    1,
	}
}

// Continuous reports whether the options select continuous (non-discretized)
// mapping.
func (o Options) Continuous() bool {
	return math.IsInf(o.Breaks, 1) || o.Breaks >= continuousBreaks
}

// SextantOptions configures SextantColorMap.
type SextantOptions struct {
	// Center is the composition separating the six regions.
	Center simplex.Composition
	// Values are the six region colors, Values[0] for sextant 1 through
	// Values[5] for sextant 6. Must have exactly 6 entries.
	Values []string
}

// DefaultSextantPalette is the fixed 6-color palette used by
// DefaultSextantOptions.
func DefaultSextantPalette() []string {
	return []string{"#FFFF00", "#B3DCC3", "#01A0C6", "#B8B3D8", "#F11D8C", "#FFB3B3"}
}

// DefaultSextantOptions returns the documented SextantColorMap defaults.
func DefaultSextantOptions() SextantOptions {
	return SextantOptions{
		Center: simplex.Composition{1. / 3, 1. / 3, 1. / 3},
		Values: DefaultSextantPalette(),
	}
}
