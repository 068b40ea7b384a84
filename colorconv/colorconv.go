package colorconv

import (
	"fmt"
	"image/color"
	"math"
)

// This package converts HCL colors (polar CIE L*u*v*, the cylindrical space
// ternary color maps mix hues in) into sRGB values relative to D65, and
// implements the trichromatic hue mixing that turns a 3-part composition
// into an HCL triple.
//
// Notes:
// - Input H is in degrees, C in [0,230], L in [0,100]; inputs outside those
//   ranges are clamped before conversion so out-of-gamut excursions cannot
//   produce nonsensical tristimulus values.
// - Returned sRGB values are gamma-encoded and clipped to [0,1].

type Vec3 [3]float64
type Mat3 [3][3]float64

// D65 reference white (CIE XYZ), normalized so Y = 1.0
var whiteD65 = Vec3{0.95047, 1.00000, 1.08883}

// u', v' chromaticity of the D65 white, used by the LUV <-> XYZ transform
var (
	whiteU = 4 * whiteD65[0] / (whiteD65[0] + 15*whiteD65[1] + 3*whiteD65[2])
	whiteV = 9 * whiteD65[1] / (whiteD65[0] + 15*whiteD65[1] + 3*whiteD65[2])
)

// sRGB (linear) transform matrix from CIE XYZ (D65)
var srgbFromXYZ = Mat3{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

const (
	deg2rad = math.Pi / 180

	// CIE companding breakpoint and slope of the cube-or-linear function
	// relating L* to the Y tristimulus value.
	labFBreak = 0.206893034
	labKappa  = 903.3

	maxChroma    = 230
	maxLightness = 100
)

// Public API

// MixHues combines a closed, centered composition (p1,p2,p3) into one HCL
// triple by vector-summing three unit vectors placed at hue, hue+120 and
// hue+240 degrees, each scaled by chroma times the corresponding component.
// A composition dominated by one component pulls the resultant toward that
// component's primary hue; a balanced composition yields near-zero magnitude
// and so a neutral color.
//
// contrast in [0,1] then rescales lightness and chroma between center and
// periphery: at 0 the returned lightness is always the input lightness, at 1
// it is fully modulated by the mixed chroma.
func MixHues(p1, p2, p3, hue, chroma, lightness, contrast float64) (h, c, l float64) {
	var x, y float64
	for i, p := range [3]float64{p1, p2, p3} {
		ang := (hue + 120*float64(i)) * deg2rad
		x += p * chroma * math.Cos(ang)
		y += p * chroma * math.Sin(ang)
	}
	mixed := math.Hypot(x, y)
	h = math.Atan2(y, x) / deg2rad
	if h < 0 {
		h += 360
	}
	factor := 1 - contrast
	if chroma != 0 {
		factor += mixed * contrast / chroma
	}
	return h, factor * mixed, factor * lightness
}

// HCLToSRGB converts an HCL color to gamma-encoded sRGB. Chroma is clamped
// to [0,230] and lightness to [0,100] first; the returned components are in
// [0,1].
func HCLToSRGB(h, c, l float64) (r, g, b float64) {
	c = math.Max(0, math.Min(c, maxChroma))
	l = math.Max(0, math.Min(l, maxLightness))
	X, Y, Z := hclToXYZ(h, c, l)
	rl, gl, bl := mulMat3Vec(srgbFromXYZ, Vec3{X, Y, Z})
	r = clamp01(linearToSRGBComp(rl))
	g = clamp01(linearToSRGBComp(gl))
	b = clamp01(linearToSRGBComp(bl))
	return
}

// HCLToNRGBA converts an HCL color to an opaque 8-bit sRGB color.
func HCLToNRGBA(h, c, l float64) color.NRGBA {
	r, g, b := HCLToSRGB(h, c, l)
	return color.NRGBA{quantize8(r), quantize8(g), quantize8(b), 0xff}
}

// HCLToHex converts an HCL color to a #RRGGBB display string.
func HCLToHex(h, c, l float64) string {
	q := HCLToNRGBA(h, c, l)
	return fmt.Sprintf("#%02X%02X%02X", q.R, q.G, q.B)
}

// Helpers: core conversions

// hclToXYZ maps cylindrical HCL through L*u*v* to CIE XYZ relative to D65
// (Y=1). L <= 0 is black regardless of chroma, which also keeps the
// 1/(13L) term finite.
func hclToXYZ(h, c, l float64) (X, Y, Z float64) {
	if l <= 0 {
		return 0, 0, 0
	}
	L := l
	U := c * math.Cos(h*deg2rad)
	V := c * math.Sin(h*deg2rad)

	// Inverse of the CIE cube-or-linear L* function
	t := (L + 16) / 116
	if t > labFBreak {
		Y = whiteD65[1] * t * t * t
	} else {
		Y = whiteD65[1] * L / labKappa
	}

	u := U/(13*L) + whiteU
	v := V/(13*L) + whiteV
	X = 9 * Y * u / (4 * v)
	Z = -X/3 - 5*Y + 3*Y/v
	return
}

// linearToSRGBComp applies the sRGB (gamma) companding function to a linear component.
func linearToSRGBComp(c float64) float64 {
	// clip small negative rounding noise at this stage for stability
	if c <= 0 {
		return 0.0
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// quantize8 maps a [0,1] component to 8 bits, rounding to nearest.
func quantize8(c float64) uint8 {
	return uint8(math.Round(255 * clamp01(c)))
}

// clamp01 clamps value to [0,1]
func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// Matrix & vector utilities

func mulMat3Vec(m Mat3, v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}
