package simplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestPointOf(t *testing.T) {
	testCases := []struct {
		name  string
		vals  []float64
		valid bool
	}{
		{"valid", []float64{1, 2, 3}, true},
		{"zeros", []float64{0, 0, 0}, true},
		{"too few", []float64{1, 2}, false},
		{"too many", []float64{1, 2, 3, 4}, false},
		{"empty", nil, false},
		{"nan", []float64{1, math.NaN(), 3}, false},
		{"inf", []float64{1, 2, math.Inf(1)}, false},
		{"negative is not rejected here", []float64{1, -2, 3}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, PointOf(tc.vals...).Valid)
		})
	}
}

func TestClosure(t *testing.T) {
	points := Points([][]float64{
		{1, 2, 1},
		{0.2, 0.3, 0.5},
		{10, 0, 0},
		{1, math.NaN(), 1},
		{0, 0, 0}, // normalization produces NaN, must come back invalid
	})
	closed := Closure(points)
	require.Len(t, closed, len(points))

	for i, p := range closed[:3] {
		if !p.Valid {
			t.Fatalf("point %d unexpectedly invalid", i)
		}
		if !nearlyEqual(p.C.Sum(), 1, CloseTol) {
			t.Fatalf("point %d sums to %v, want 1", i, p.C.Sum())
		}
		for _, v := range p.C {
			if v < 0 {
				t.Fatalf("point %d has negative component %v", i, v)
			}
		}
	}
	require.Equal(t, Composition{0.25, 0.5, 0.25}, closed[0].C)
	require.Equal(t, Composition{1, 0, 0}, closed[2].C)
	require.False(t, closed[3].Valid)
	require.False(t, closed[4].Valid)
}

func TestClosureIdempotent(t *testing.T) {
	p := PointOf(0.17, 0.33, 0.5).Closed()
	q := p.Closed()
	for i := range p.C {
		if !nearlyEqual(p.C[i], q.C[i], 1e-15) {
			t.Fatalf("closure not idempotent: %v vs %v", p.C, q.C)
		}
	}
}

func TestGeometricMean(t *testing.T) {
	testCases := []struct {
		name        string
		values      []float64
		removeZeros bool
		want        float64
	}{
		{"simple", []float64{2, 8}, true, 4},
		{"single", []float64{7}, true, 7},
		{"zeros removed", []float64{0, 2, 0, 8}, true, 4},
		{"zeros kept", []float64{0, 2, 8}, false, 0},
		{"all zeros removed", []float64{0, 0}, true, 0},
		{"empty", nil, true, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := GeometricMean(tc.values, tc.removeZeros)
			if !nearlyEqual(got, tc.want, 1e-12) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	// a dataset symmetric under component rotation centers on the barycenter
	points := Points([][]float64{
		{0.5, 0.25, 0.25},
		{0.25, 0.5, 0.25},
		{0.25, 0.25, 0.5},
	})
	c := Center(points)
	for _, v := range c {
		if !nearlyEqual(v, 1./3, 1e-12) {
			t.Fatalf("center of symmetric dataset = %v, want barycenter", c)
		}
	}

	// invalid points are skipped, not averaged
	points = append(points, PointOf(math.NaN(), 1, 1))
	c2 := Center(points)
	for i := range c {
		if !nearlyEqual(c[i], c2[i], 1e-12) {
			t.Fatalf("invalid point affected center: %v vs %v", c, c2)
		}
	}
}

func TestPerturb(t *testing.T) {
	ref := Composition{0.5, 0.3, 0.2}
	points := []Point{
		{C: ref, Valid: true},
		PointOf(math.Inf(1), 0, 0),
	}
	ans := Perturb(points, ref)
	require.Len(t, ans, 2)
	require.True(t, ans[0].Valid)
	for _, v := range ans[0].C {
		if !nearlyEqual(v, 1./3, 1e-12) {
			t.Fatalf("perturbing the reference by itself gave %v, want barycenter", ans[0].C)
		}
	}
	require.False(t, ans[1].Valid)
}

func TestPowerScale(t *testing.T) {
	points := Closure(Points([][]float64{{0.6, 0.3, 0.1}, {1, 1, 1}}))

	neutral := PowerScale(points, 1)
	for i := range points {
		for j := range points[i].C {
			if !nearlyEqual(points[i].C[j], neutral[i].C[j], 1e-12) {
				t.Fatalf("exponent 1 is not neutral: %v vs %v", points[i].C, neutral[i].C)
			}
		}
	}

	// a larger exponent moves off-center points further from the barycenter
	spread := PowerScale(points, 2)
	if spread[0].C[0] <= points[0].C[0] {
		t.Fatalf("dominant component shrank under spread: %v -> %v", points[0].C, spread[0].C)
	}
	if !nearlyEqual(spread[0].C.Sum(), 1, CloseTol) {
		t.Fatalf("power scaling broke closure: sum %v", spread[0].C.Sum())
	}
}

func TestValidate(t *testing.T) {
	good := []Point{
		PointOf(0.2, 0.3, 0.5),
		{}, // sentinel entries are skipped
		PointOf(1, 0, 0),
	}
	require.NoError(t, Validate(good))

	require.Error(t, Validate([]Point{PointOf(0.5, -0.1, 0.6)}))
	require.Error(t, Validate([]Point{PointOf(0.2, 0.3, 0.4)}))
	require.ErrorContains(t, Validate([]Point{good[0], PointOf(2, 0, 0)}), "index 1")
}
