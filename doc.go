/*
Package tricolor maps three-part compositional data (triples of proportions
summing to 1, such as vote shares among three parties or land-cover
fractions) onto colors for choropleth-style visualization.

Compositions near a chosen reference center map to a neutral gray while
compositions dominated by one component diverge toward one of three hues
spaced 120 degrees apart. ColorMap produces continuous or mesh-discretized
colors through trichromatic hue mixing; SextantColorMap partitions the
simplex into 6 regions around the center and assigns fixed palette colors.

The supporting algebra and geometry live in the simplex and ternary
subpackages and are exported for use by rendering layers, which consume the
color strings and Cartesian coordinates produced here.
*/
package tricolor

import "fmt"

type TricolorVersion struct {
	Major, Minor, Patch uint
}

func (v TricolorVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v TricolorVersion) Equal(o TricolorVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v TricolorVersion) After(o TricolorVersion) bool {
	switch {
	case v.Major == o.Major:
		switch {
		case v.Minor == o.Minor:
			return v.Patch > o.Patch
		case v.Minor > o.Minor:
			return true
		case v.Minor < o.Minor:
			return false
		}
	case v.Major > o.Major:
		return true
	case v.Major < o.Major:
		return false
	}
	return false
}

func (v TricolorVersion) Before(o TricolorVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = TricolorVersion{1, 0, 0}
