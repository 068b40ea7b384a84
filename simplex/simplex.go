// Package simplex implements the compositional algebra underlying ternary
// color maps: closure, geometric-mean centering, perturbation and power
// scaling of 3-part compositions (points on the 2-simplex).
//
// Invalid data (wrong arity, non-finite components) never aborts a batch.
// It is carried as an invalid Point through every operation and surfaces as
// an absent result for that element only.
package simplex

import (
	"fmt"
	"math"
)

// CloseTol is the tolerance used when checking that a composition sums to 1.
const CloseTol = 1e-9

// Composition is an ordered triple of proportions. A closed composition has
// non-negative components summing to 1 within CloseTol.
type Composition [3]float64

// Point is an optional Composition. Valid is false when the source value
// could not be interpreted as a composition; all operations in this package
// propagate such points unchanged instead of failing the whole batch.
type Point struct {
	C     Composition
	Valid bool
}

// PointOf builds a Point from raw values. Anything that is not exactly three
// finite numbers yields an invalid Point. This is the only place arity is
// checked; from here on the type system guarantees it.
func PointOf(vals ...float64) Point {
	if len(vals) != 3 {
		return Point{}
	}
	var c Composition
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}
		}
		c[i] = v
	}
	return Point{C: c, Valid: true}
}

// Points converts a slice of raw triples into Points.
func Points(vals [][]float64) []Point {
	ans := make([]Point, len(vals))
	for i, v := range vals {
		ans[i] = PointOf(v...)
	}
	return ans
}

// Sum returns p1+p2+p3.
func (c Composition) Sum() float64 {
	return c[0] + c[1] + c[2]
}

func (c Composition) finite() bool {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Closed rescales the point so its components sum to 1. A point whose
// normalization produces non-finite components (for example the all-zero
// composition) comes back invalid.
func (p Point) Closed() Point {
	if !p.Valid || !p.C.finite() {
		return Point{}
	}
	s := p.C.Sum()
	c := Composition{p.C[0] / s, p.C[1] / s, p.C[2] / s}
	if !c.finite() {
		return Point{}
	}
	return Point{C: c, Valid: true}
}

// Closure closes every point in the batch, one output per input.
func Closure(points []Point) []Point {
	ans := make([]Point, len(points))
	for i, p := range points {
		ans[i] = p.Closed()
	}
	return ans
}

// GeometricMean returns the geometric mean of values, computed through the
// sum of logarithms so large datasets cannot overflow the running product.
// With removeZeros, values equal to 0 are excluded from both the product and
// the count. Returns 0 when no values remain.
func GeometricMean(values []float64, removeZeros bool) float64 {
	var logsum float64
	n := 0
	for _, v := range values {
		if removeZeros && v == 0 {
			continue
		}
		logsum += math.Log(v)
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Exp(logsum / float64(n))
}

// Center returns the compositional center of the dataset: the per-component
// geometric mean over valid points (zeros removed), closed. Useful as the
// neutral reference point of a color map centered on the data.
func Center(points []Point) Composition {
	var cols [3][]float64
	for _, p := range points {
		if !p.Valid {
			continue
		}
		for i, v := range p.C {
			cols[i] = append(cols[i], v)
		}
	}
	var gm Composition
	for i := range gm {
		gm[i] = GeometricMean(cols[i], true)
	}
	s := gm.Sum()
	if s == 0 {
		return gm
	}
	return Composition{gm[0] / s, gm[1] / s, gm[2] / s}
}

// Perturb recenters every point by the reference composition ref:
// component-wise multiplication with the reciprocal of ref, then closure.
// The point equal to ref maps to (1/3, 1/3, 1/3). A ref with a zero
// component makes the corresponding results invalid, matching the usual
// caveat that the center must lie strictly inside the simplex.
func Perturb(points []Point, ref Composition) []Point {
	ans := make([]Point, len(points))
	for i, p := range points {
		if !p.Valid {
			continue
		}
		q := Point{
			C:     Composition{p.C[0] / ref[0], p.C[1] / ref[1], p.C[2] / ref[2]},
			Valid: true,
		}
		ans[i] = q.Closed()
	}
	return ans
}

// PowerScale raises each component to exponent and re-closes. Exponent 1 is
// the identity; exponents above 1 push points away from the simplex center,
// increasing the color contrast of off-center compositions.
func PowerScale(points []Point, exponent float64) []Point {
	ans := make([]Point, len(points))
	for i, p := range points {
		if !p.Valid {
			continue
		}
		q := Point{
			C: Composition{
				math.Pow(p.C[0], exponent),
				math.Pow(p.C[1], exponent),
				math.Pow(p.C[2], exponent),
			},
			Valid: true,
		}
		ans[i] = q.Closed()
	}
	return ans
}

// Validate checks that every valid point in the batch is a closed
// composition: non-negative components summing to 1 within CloseTol.
// Invalid (sentinel) entries are skipped, they are data, not caller bugs.
func Validate(points []Point) error {
	for i, p := range points {
		if !p.Valid {
			continue
		}
		for _, v := range p.C {
			if v < 0 {
				return fmt.Errorf("invalid composition at index %d: negative component %v in %v", i, v, p.C)
			}
		}
		if d := math.Abs(p.C.Sum() - 1); d > CloseTol {
			return fmt.Errorf("invalid composition at index %d: components %v sum to %v, want 1", i, p.C, p.C.Sum())
		}
	}
	return nil
}
