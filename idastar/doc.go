// Package idastar provides Iterative Deepening A* (IDA*) path search over
// the gridpath grid model.
//
// Overview:
//
//   - IDA* repeats a depth-first, branch-and-bound expansion with a rising
//     cost bound (the cutoff) until the goal is reached or the search is
//     proven exhausted. It keeps no open or closed sets: memory is the
//     recursion stack plus the route under construction.
//   - Each sweep's cutoff is the minimum f-value (f = g + weight·heuristic)
//     that was pruned in the previous sweep, so successive cutoffs are
//     non-decreasing and the search never skips over the optimal cost.
//   - With weight = 1 and an admissible heuristic the returned path is
//     optimal; weight > 1 trades optimality for speed.
//
// When to use:
//
//   - Memory-constrained path search on large grids where A*'s open set is
//     too expensive.
//   - Deterministic, reproducible searches: for a fixed grid, policy, and
//     configuration, the cutoff sequence and the returned path are stable
//     because neighbor enumeration order is deterministic.
//
// Key features:
//
//   - Functional options configure policy, heuristic, weight, time budget,
//     clock, instrumentation, and hooks without changing the API signature.
//   - The time budget is polled once per node examined through an
//     injectable Clock, so tests can simulate timeouts without real delay.
//   - A Tracker mirrors the live recursion frontier for external
//     visualizers; it is fully unwound by the time FindPath returns.
//   - Timeout and exhaustion are distinct outcomes (ErrTimeLimit vs
//     ErrNoPath); both leave Result.Path empty for callers that only care
//     whether a path was produced.
//
// Performance and complexity:
//
//   - Time: worst case exponential in solution depth, as for any IDA*;
//     the weighted heuristic and corner policies prune aggressively on
//     typical maps.
//   - Space: O(L) where L is the final path length.
//
// Thread safety:
//
//   - FindPath itself mutates only per-call state, so concurrent searches
//     over the same immutable Grid are safe as long as each call uses its
//     own Tracker (or none) and the grid is not mutated concurrently.
//
// See also:
//
//   - grid.Grid: the walkability map and neighbor enumeration contract.
//   - heuristic: the distance estimators accepted by WithHeuristic.
package idastar
