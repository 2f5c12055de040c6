package heuristic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/heuristic"
)

const eps = 1e-9

// TestValues checks each estimator against hand-computed deltas.
func TestValues(t *testing.T) {
	cases := []struct {
		name   string
		fn     heuristic.Func
		dx, dy float64
		want   float64
	}{
		{"Manhattan", heuristic.Manhattan, 3, 4, 7},
		{"Manhattan_Zero", heuristic.Manhattan, 0, 0, 0},
		{"Euclidean", heuristic.Euclidean, 3, 4, 5},
		{"Chebyshev", heuristic.Chebyshev, 3, 4, 4},
		{"Octile_Square", heuristic.Octile, 4, 4, 4 * math.Sqrt2},
		{"Octile_Mixed", heuristic.Octile, 2, 5, 2*(math.Sqrt2-1) + 5},
		{"Octile_MixedFlipped", heuristic.Octile, 5, 2, 2*(math.Sqrt2-1) + 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.dx, tc.dy); math.Abs(got-tc.want) > eps {
				t.Errorf("%s(%v,%v) = %v; want %v", tc.name, tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

// TestNonnegativeFinite sweeps a small delta range; every estimator must
// stay nonnegative and finite.
func TestNonnegativeFinite(t *testing.T) {
	fns := map[string]heuristic.Func{
		"Manhattan": heuristic.Manhattan,
		"Euclidean": heuristic.Euclidean,
		"Octile":    heuristic.Octile,
		"Chebyshev": heuristic.Chebyshev,
	}
	for name, fn := range fns {
		for dx := 0.0; dx <= 10; dx++ {
			for dy := 0.0; dy <= 10; dy++ {
				v := fn(dx, dy)
				if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
					t.Fatalf("%s(%v,%v) = %v; want nonnegative finite", name, dx, dy, v)
				}
			}
		}
	}
}
