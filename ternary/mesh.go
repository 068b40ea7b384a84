// Package ternary implements the geometry of the 2-simplex used by ternary
// color maps: equal subdivision of the simplex into k² triangular cells,
// nearest-cell assignment under the simplex chord metric, sextant
// partitioning around a reference center, and the Cartesian projection used
// by renderers to draw an equilateral triangle.
package ternary

import (
	"math"

	"github.com/compviz/tricolor/simplex"
)

// Cell is one triangular cell of a simplex subdivision. ID is 1-based and
// runs over [1, k²] for subdivision level k.
type Cell struct {
	ID       int
	Centroid simplex.Composition
	Vertices [3]simplex.Composition
}

// MeshCentroids enumerates the centroids of the subdivision of the simplex
// into k² cells. Cells are arranged in k rows from the p2 apex; row r holds
// 2r-1 cells, alternating upward and downward pointing triangles starting
// with an upward one. The centroid for a given id is a closed-form function
// of the id alone, so the id->centroid mapping is identical across calls and
// subdivision levels.
func MeshCentroids(k int) []simplex.Composition {
	ans := make([]simplex.Composition, 0, k*k)
	d := 3 * float64(k)
	for id := 1; id <= k*k; id++ {
		i3, j3, l3 := centroidLattice(id, k)
		ans = append(ans, simplex.Composition{float64(i3) / d, float64(j3) / d, float64(l3) / d})
	}
	return ans
}

// centroidLattice returns the centroid of cell id scaled by 3k, as integers.
// Upward cells sit at (...+1 mod 3) p2-levels, downward cells at (...+2);
// that parity is what MeshVertices later uses to recover the cell shape.
func centroidLattice(id, k int) (i3, j3, l3 int) {
	// row r (1-based, from the apex) is the largest r with (r-1)² < id
	r := int(math.Sqrt(float64(id - 1)))
	for r*r > id-1 {
		r--
	}
	for (r+1)*(r+1) <= id-1 {
		r++
	}
	r++
	t := id - (r-1)*(r-1) // position within the row, 1..2r-1
	a := k - r            // p2 lattice level of the row's base
	if t%2 == 1 {
		s := (t - 1) / 2 // upward triangle
		return 3*(r-s) - 2, 3*a + 1, 3*s + 1
	}
	s := t / 2 // downward triangle
	return 3*(r-s) - 1, 3*a + 2, 3*s - 1
}

// MeshVertices derives the 3 corner vertices of each cell from its centroid.
// The offsets applied depend on the parity of the centroid's p2 lattice
// coordinate, which distinguishes upward from downward cells. Every vertex is
// emitted as an exact lattice fraction m/k, so vertices shared between
// adjacent cells compare equal as floats, a requirement for gap-free polygon
// tiling in renderers.
//
// The input must be the full centroid set of one subdivision level, as
// returned by MeshCentroids.
func MeshVertices(centroids []simplex.Composition) [][3]simplex.Composition {
	k := int(math.Round(math.Sqrt(float64(len(centroids)))))
	d := 3 * float64(k)
	ans := make([][3]simplex.Composition, len(centroids))
	for n, c := range centroids {
		i3 := int(math.Round(c[0] * d))
		j3 := int(math.Round(c[1] * d))
		l3 := int(math.Round(c[2] * d))
		var v [3][3]int
		if j3%3 == 1 { // upward
			v = [3][3]int{
				{(i3 + 2) / 3, (j3 - 1) / 3, (l3 - 1) / 3},
				{(i3 - 1) / 3, (j3 - 1) / 3, (l3 + 2) / 3},
				{(i3 - 1) / 3, (j3 + 2) / 3, (l3 - 1) / 3},
			}
		} else { // downward
			v = [3][3]int{
				{(i3 + 1) / 3, (j3 - 2) / 3, (l3 + 1) / 3},
				{(i3 - 2) / 3, (j3 + 1) / 3, (l3 + 1) / 3},
				{(i3 + 1) / 3, (j3 + 1) / 3, (l3 - 2) / 3},
			}
		}
		for vi, vv := range v {
			ans[n][vi] = simplex.Composition{
				float64(vv[0]) / float64(k),
				float64(vv[1]) / float64(k),
				float64(vv[2]) / float64(k),
			}
		}
	}
	return ans
}

// Mesh returns the full cell set for subdivision level k.
func Mesh(k int) []Cell {
	centroids := MeshCentroids(k)
	vertices := MeshVertices(centroids)
	ans := make([]Cell, len(centroids))
	for i := range ans {
		ans[i] = Cell{ID: i + 1, Centroid: centroids[i], Vertices: vertices[i]}
	}
	return ans
}

// Distance is the squared chord distance between two simplex points:
// -(q2*q3 + q3*q1 + q1*q2) for q = p - c. On the simplex plane (where the
// components of q sum to 0) this equals half the squared Euclidean distance,
// and it is the metric under which the mesh centroids form an exact
// nearest-neighbor partition of their cells. Do not substitute raw Euclidean
// distance: ties at cell boundaries break differently.
func Distance(p, c simplex.Composition) float64 {
	q0 := p[0] - c[0]
	q1 := p[1] - c[1]
	q2 := p[2] - c[2]
	return -(q1*q2 + q2*q0 + q0*q1)
}

// NearestIndex returns the index of the candidate nearest to p under
// Distance. The first minimum wins, so ties resolve by candidate order.
// Returns -1 for an empty candidate set.
func NearestIndex(p simplex.Composition, candidates []simplex.Composition) int {
	best := -1
	bestd := math.Inf(1)
	for i, c := range candidates {
		if d := Distance(p, c); d < bestd {
			best, bestd = i, d
		}
	}
	return best
}

// NearestOf replaces every valid point with its nearest candidate, the
// discretization step of a color map with breaks. Invalid points stay
// invalid; output order matches input order.
func NearestOf(points []simplex.Point, candidates []simplex.Composition) []simplex.Point {
	ans := make([]simplex.Point, len(points))
	for i, p := range points {
		if !p.Valid {
			continue
		}
		n := NearestIndex(p.C, candidates)
		if n < 0 {
			continue
		}
		ans[i] = simplex.Point{C: candidates[n], Valid: true}
	}
	return ans
}

// Limits returns the component-wise minimum and maximum over the valid
// points of a dataset, for scale calibration by callers. With no valid
// points both results are zero.
func Limits(points []simplex.Point) (lo, hi simplex.Composition) {
	first := true
	for _, p := range points {
		if !p.Valid {
			continue
		}
		if first {
			lo, hi = p.C, p.C
			first = false
			continue
		}
		for i, v := range p.C {
			lo[i] = math.Min(lo[i], v)
			hi[i] = math.Max(hi[i], v)
		}
	}
	return lo, hi
}
