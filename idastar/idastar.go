// Package idastar implements Iterative Deepening A* (IDA*) over a grid:
// repeated depth-first sweeps with an escalating cost bound, trading the
// memory of A*'s open set for a recursion stack.
//
// Key features:
//   - FindPath(g, sx, sy, ex, ey, opts...): single public operation
//   - Cutoff escalation: each sweep's bound is the minimum f-value that was
//     pruned in the previous sweep, so the sequence is non-decreasing
//   - Path reconstruction without parent pointers: each frame records its
//     own coordinate at its own depth while the success signal unwinds
//   - Soft time budget polled once per node via an injectable Clock
//   - Recursion instrumentation (Tracker) and per-node/per-sweep hooks
//
// Complexity:
//
//   - Time:   worst case exponential in path length (depth-first re-expansion);
//     on grids with strong heuristics each sweep revisits the previous
//     sweep's frontier plus one escalation layer.
//   - Memory: O(L) for the recursion stack and route, L = path length —
//     no open/closed sets are kept.
//
// Options:
//
//   - WithDiagonalMovement(dm)   explicit movement policy (precedence).
//   - WithAllowDiagonal()        legacy flag, resolved once at config time.
//   - WithDontCrossCorners()     legacy flag, resolved once at config time.
//   - WithHeuristic(h)           estimate; default Manhattan/Octile by policy.
//   - WithWeight(w)              heuristic multiplier ≥ 1.
//   - WithTimeLimit(d)           wall-clock budget; ≤ 0 unbounded.
//   - WithClock(c)               injectable time source for the budget.
//   - WithTracker(t)             live-frontier instrumentation.
//   - WithOnExpand(fn)           per-node hook.
//   - WithOnSweep(fn)            per-sweep cutoff hook.
//
// Errors:
//
//   - ErrNilGrid       if g is nil.
//   - ErrNodeNotFound  if a start/goal coordinate is outside the grid.
//   - ErrNoPath        if the goal is provably unreachable.
//   - ErrTimeLimit     if the budget elapsed first.
package idastar

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// boundEps absorbs accumulated floating-point rounding in the f-values:
// a route of n diagonal steps sums math.Sqrt2 n times and can land a few
// ulps above the closed-form octile estimate. Without the tolerance an
// equal-cost goal frame is pruned and a whole extra sweep re-runs just to
// cover that gap.
const boundEps = 1e-9

// outcomeKind tags the result of one recursive expansion.
type outcomeKind int

const (
	// outcomePruned carries the minimum f-value that exceeded the cutoff.
	outcomePruned outcomeKind = iota
	// outcomeFound signals that the goal was reached in this subtree.
	outcomeFound
	// outcomeTimedOut signals that the time budget elapsed; it short-circuits
	// every enclosing frame.
	outcomeTimedOut
)

// outcome is the tagged return value of the recursive search: exactly one
// of the three variants, never an overloaded numeric channel.
type outcome struct {
	kind  outcomeKind
	bound float64 // meaningful only for outcomePruned
}

// FindPath runs IDA* from (sx,sy) to (ex,ey) on g.
//
// Returns:
//
//   - Result with the full start-to-goal path and its cost on success.
//   - Result with an empty Path and err == ErrNoPath when every sweep's
//     escalation bound is unbounded (goal provably unreachable).
//   - Result with an empty Path and err == ErrTimeLimit when the budget
//     elapsed first. Callers that do not care which keep the documented
//     "empty path on failure" surface.
//
// Expanded and Sweeps are populated on every outcome for diagnostics.
//
// The call is synchronous and single-threaded; it does not yield until it
// returns. Cancellation granularity is one node examination.
func FindPath(g *grid.Grid, sx, sy, ex, ey int, opts ...Option) (Result, error) {
	// 1) Validate the grid collaborator.
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Build and normalize the configuration exactly once.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	// 3) Resolve endpoints via the grid; nil lookups surface the caller's
	//    bounds violation.
	start := g.NodeAt(sx, sy)
	if start == nil {
		return Result{}, fmt.Errorf("%w: start (%d,%d)", ErrNodeNotFound, sx, sy)
	}
	end := g.NodeAt(ex, ey)
	if end == nil {
		return Result{}, fmt.Errorf("%w: goal (%d,%d)", ErrNodeNotFound, ex, ey)
	}

	// 4) Set up the per-call engine state.
	e := &engine{g: g, cfg: cfg, end: end, onPath: make([]bool, g.Width*g.Height)}
	if cfg.Tracker != nil {
		cfg.Tracker.reset()
	}
	if cfg.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = cfg.Clock.Now().Add(cfg.TimeLimit)
	}

	// 5) Initial cutoff: the weighted estimate from start to goal.
	cutoff := e.estimate(start)

	// 6) Sweep loop: bounded depth-first expansion with escalating cutoff.
	for {
		e.sweeps++
		if cfg.OnSweep != nil {
			cfg.OnSweep(cutoff)
		}

		out := e.search(start, 0, cutoff, 0)
		switch out.kind {
		case outcomeFound:
			return Result{Path: e.route, Cost: e.cost, Expanded: e.expanded, Sweeps: e.sweeps}, nil
		case outcomeTimedOut:
			return Result{Expanded: e.expanded, Sweeps: e.sweeps}, ErrTimeLimit
		case outcomePruned:
			if math.IsInf(out.bound, 1) {
				// No neighbor anywhere produced a finite bound: exhausted.
				return Result{Expanded: e.expanded, Sweeps: e.sweeps}, ErrNoPath
			}
			cutoff = out.bound
		}
	}
}

// engine holds the mutable state of one FindPath call. A dedicated struct
// (instead of closures) keeps the hot recursion explicit and testable.
type engine struct {
	g   *grid.Grid
	cfg Options
	end *grid.Node

	route    [][2]int // filled depth-indexed while the success signal unwinds
	cost     float64  // g-value at the goal
	onPath   []bool   // cells on the current recursion path, row-major
	expanded int
	sweeps   int

	useDeadline bool
	deadline    time.Time
}

// estimate returns the weighted heuristic value from n to the goal.
func (e *engine) estimate(n *grid.Node) float64 {
	dx := math.Abs(float64(e.end.X - n.X))
	dy := math.Abs(float64(e.end.Y - n.Y))

	return e.cfg.Heuristic(dx, dy) * e.cfg.Weight
}

// stepCost is 1 for an orthogonal move and √2 for a diagonal one,
// determined by comparing the two endpoints.
func stepCost(a, b *grid.Node) float64 {
	if a.X == b.X || a.Y == b.Y {
		return 1
	}

	return math.Sqrt2
}

// record writes n's coordinate at the given recursion depth, growing the
// route as needed. The deepest frame (the goal) writes first; every
// enclosing frame fills its own slot as the success signal unwinds, so the
// finished route is the full start-to-goal sequence.
func (e *engine) record(depth int, n *grid.Node) {
	for len(e.route) <= depth {
		e.route = append(e.route, [2]int{})
	}
	e.route[depth] = [2]int{n.X, n.Y}
}

// search performs one bounded depth-first expansion from n with accumulated
// path cost g under the given cutoff.
//
// Exactly one of the three outcomes is returned:
//   - pruned(f)   when f = g + weighted estimate exceeds the cutoff, or the
//     minimum pruned bound among the children otherwise;
//   - found       when this subtree reached the goal;
//   - timedOut    when the budget elapsed (checked once per node).
func (e *engine) search(n *grid.Node, g, cutoff float64, depth int) outcome {
	// 1) Per-node bookkeeping: counter, budget poll, hook.
	e.expanded++
	if e.useDeadline && e.cfg.Clock.Now().After(e.deadline) {
		return outcome{kind: outcomeTimedOut}
	}
	if e.cfg.OnExpand != nil {
		e.cfg.OnExpand(n.X, n.Y, g)
	}

	// 2) Prune when the estimated total exceeds the current bound.
	f := g + e.estimate(n)
	if f > cutoff+boundEps {
		return outcome{kind: outcomePruned, bound: f}
	}

	// 3) Goal: record this frame's coordinate and start the unwind.
	if n == e.end {
		e.record(depth, n)
		e.cost = g

		return outcome{kind: outcomeFound}
	}

	// 4) Descend into each neighbor in the grid's deterministic order,
	//    tracking the minimum pruned bound among them. Cells already on the
	//    current path are skipped: revisiting one can never beat a simple
	//    path, and a sweep that prunes nothing finite then terminates the
	//    escalation with the unbounded sentinel.
	idx := n.Y*e.g.Width + n.X
	e.onPath[idx] = true
	min := math.Inf(1)
	for _, nb := range e.g.Neighbors(n, e.cfg.Diagonal) {
		if e.onPath[nb.Y*e.g.Width+nb.X] {
			continue
		}
		if e.cfg.Tracker != nil {
			e.cfg.Tracker.enter(nb.X, nb.Y)
		}

		t := e.search(nb, g+stepCost(n, nb), cutoff, depth+1)

		// Unwind instrumentation on every return path, success included.
		if e.cfg.Tracker != nil {
			e.cfg.Tracker.leave(nb.X, nb.Y)
		}

		switch t.kind {
		case outcomeFound:
			e.onPath[idx] = false
			e.record(depth, n)

			return t
		case outcomeTimedOut:
			e.onPath[idx] = false

			return t
		case outcomePruned:
			if t.bound < min {
				min = t.bound
			}
		}
	}
	e.onPath[idx] = false

	// 5) No child reached the goal: yield the tightest violated bound.
	return outcome{kind: outcomePruned, bound: min}
}
