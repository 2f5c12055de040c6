// Package heuristic provides distance estimates for grid-based path search.
//
// Every estimator is a pure Func over absolute coordinate deltas (dx, dy)
// and returns a nonnegative, finite value. Admissibility — never exceeding
// the true remaining cost — is what makes a weight-1 search optimal:
//
//   - Manhattan is admissible for 4-directional movement.
//   - Octile is admissible for 8-directional movement with √2 diagonals.
//   - Euclidean is admissible for any movement rule above.
//   - Chebyshev assumes unit-cost diagonals; it under-estimates with √2
//     diagonals and over-prunes nothing, but is listed for completeness.
//
// Complexity: every Func is O(1).
package heuristic

import "math"

// Func estimates the remaining distance given absolute deltas dx, dy ≥ 0.
// Implementations must be pure and return nonnegative, finite values.
type Func func(dx, dy float64) float64

// sqrt2Minus1 is the per-cell saving of a diagonal step over two
// orthogonal steps.
const sqrt2Minus1 = math.Sqrt2 - 1

// Manhattan returns dx + dy, the exact cost under 4-directional movement
// on an obstacle-free grid.
func Manhattan(dx, dy float64) float64 {
	return dx + dy
}

// Euclidean returns the straight-line distance √(dx²+dy²).
func Euclidean(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// Octile returns the exact cost under 8-directional movement with √2
// diagonals on an obstacle-free grid: diagonal steps cover min(dx,dy),
// orthogonal steps cover the remainder.
func Octile(dx, dy float64) float64 {
	if dx < dy {
		return sqrt2Minus1*dx + dy
	}

	return sqrt2Minus1*dy + dx
}

// Chebyshev returns max(dx, dy), the exact cost when diagonal steps cost
// the same as orthogonal ones.
func Chebyshev(dx, dy float64) float64 {
	return math.Max(dx, dy)
}
