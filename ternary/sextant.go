package ternary

import "github.com/compviz/tricolor/simplex"

// A Sextant is one of the 6 regions the simplex falls into around a center
// point C: the three level lines p1=C1, p2=C2, p3=C3 all pass through C and
// cut the simplex into 6 sectors. Vertices is a closed ring (the first point
// repeated at the end); rings alternate between 5 entries (sectors containing
// a simplex corner) and 4 entries (sectors spanning a stretch of one edge).
type Sextant struct {
	ID       int
	Vertices []simplex.Composition
}

// SextantVertices assembles the 6 sector polygons around center. The
// building blocks are the center itself, the 3 simplex corners, and the 6
// points where the level line of each component through the center crosses a
// simplex edge. The rings tile the simplex with no gaps or overlaps and all
// share the center as a common vertex. IDs correspond to ClassifySextant:
// odd sextants contain corner (id+1)/2.
func SextantVertices(center simplex.Composition) []Sextant {
	c1, c2, c3 := center[0], center[1], center[2]
	e1 := simplex.Composition{1, 0, 0}
	e2 := simplex.Composition{0, 1, 0}
	e3 := simplex.Composition{0, 0, 1}
	// xIJ: level line of component I crossing the edge where component J is 0
	x23 := simplex.Composition{1 - c2, c2, 0}
	x13 := simplex.Composition{c1, 1 - c1, 0}
	x31 := simplex.Composition{0, 1 - c3, c3}
	x21 := simplex.Composition{0, c2, 1 - c2}
	x12 := simplex.Composition{c1, 0, 1 - c1}
	x32 := simplex.Composition{1 - c3, 0, c3}
	return []Sextant{
		{1, []simplex.Composition{center, x23, e1, x32, center}},
		{2, []simplex.Composition{center, x13, x23, center}},
		{3, []simplex.Composition{center, x31, e2, x13, center}},
		{4, []simplex.Composition{center, x21, x31, center}},
		{5, []simplex.Composition{center, x12, e3, x21, center}},
		{6, []simplex.Composition{center, x32, x12, center}},
	}
}

// sextantOf maps the per-component dominance pattern of a point against the
// center to a sextant id. Only the 6 listed patterns name a sextant; the two
// remaining patterns (no component dominant, which includes the center
// itself, and all components dominant, impossible for closed data) have no
// sextant and yield 0.
func sextantOf(g1, g2, g3 bool) int {
	switch {
	case g1 && !g2 && !g3:
		return 1
	case g1 && g2 && !g3:
		return 2
	case !g1 && g2 && !g3:
		return 3
	case !g1 && g2 && g3:
		return 4
	case !g1 && !g2 && g3:
		return 5
	case g1 && !g2 && g3:
		return 6
	}
	return 0
}

// ClassifySextant assigns each point the sextant it falls into relative to
// center, by comparing every component against the center's (strictly
// greater vs not). Invalid points and points matching no sextant pattern get
// 0. Output order matches input order.
func ClassifySextant(points []simplex.Point, center simplex.Composition) []int {
	ans := make([]int, len(points))
	for i, p := range points {
		if !p.Valid {
			continue
		}
		ans[i] = sextantOf(p.C[0] > center[0], p.C[1] > center[1], p.C[2] > center[2])
	}
	return ans
}
