// Package idastar defines core types, sentinel errors, and configuration
// options for Iterative Deepening A* search over a grid.
package idastar

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("idastar: grid is nil")

	// ErrNodeNotFound indicates that a start or goal coordinate lies outside
	// the grid. Bounds are the caller's obligation; the error surfaces the
	// violated lookup rather than masking it.
	ErrNodeNotFound = errors.New("idastar: coordinate outside the grid")

	// ErrNoPath indicates the search space was exhausted: no sweep produced
	// a finite escalation bound, so the goal is provably unreachable.
	ErrNoPath = errors.New("idastar: no path between start and goal")

	// ErrTimeLimit indicates the configured time limit elapsed before the
	// search could either find a path or prove none exists.
	ErrTimeLimit = errors.New("idastar: time limit exceeded")

	// ErrBadWeight indicates a heuristic weight below 1, which would make
	// the estimate inadmissible in the wrong direction and break the
	// bound-escalation contract.
	ErrBadWeight = errors.New("idastar: weight must be at least 1")
)

// Clock abstracts the wall-clock source used for time-limit polling, so
// deterministic tests can simulate a timeout without real delay.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Result holds the outcome of one FindPath call.
type Result struct {
	// Path is the ordered coordinate sequence from start to goal,
	// inclusive of both endpoints. Empty when err != nil.
	Path [][2]int

	// Cost is the total step cost of Path (0 when Path is empty).
	Cost float64

	// Expanded counts nodes examined across all sweeps.
	Expanded int

	// Sweeps counts outer cutoff-escalation iterations performed.
	Sweeps int
}

// Options configures the behavior of the IDA* search.
//
// Diagonal          – movement policy; an explicit WithDiagonalMovement value
//                     takes precedence over the legacy flags below.
// AllowDiagonal     – legacy flag: permit diagonal steps at all.
// DontCrossCorners  – legacy flag: forbid cutting blocked corners.
// Heuristic         – remaining-distance estimate; defaults to Manhattan
//                     when the resolved policy is Never, Octile otherwise.
// Weight            – multiplier ≥ 1 applied to the heuristic only. 1
//                     preserves optimality under an admissible heuristic;
//                     larger values trade optimality for speed.
// TimeLimit         – wall-clock budget; ≤ 0 means unbounded.
// Clock             – time source for deadline polling; defaults to time.Now.
// Tracker           – optional recursion instrumentation (see Tracker).
// OnExpand          – optional hook invoked once per node examined, with the
//                     node's coordinates and accumulated path cost g.
// OnSweep           – optional hook invoked at the start of each sweep with
//                     the cutoff about to be used.
type Options struct {
	Diagonal         grid.DiagonalMovement
	AllowDiagonal    bool
	DontCrossCorners bool
	Heuristic        heuristic.Func
	Weight           float64
	TimeLimit        time.Duration
	Clock            Clock
	Tracker          *Tracker
	OnExpand         func(x, y int, g float64)
	OnSweep          func(cutoff float64)

	// diagonalSet records whether Diagonal was chosen explicitly; only then
	// does it override the legacy flags during normalization.
	diagonalSet bool
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithDiagonalMovement sets the movement policy explicitly. It takes
// precedence over WithAllowDiagonal / WithDontCrossCorners.
func WithDiagonalMovement(dm grid.DiagonalMovement) Option {
	return func(o *Options) {
		o.Diagonal = dm
		o.diagonalSet = true
	}
}

// WithAllowDiagonal sets the legacy diagonal-permission flag. Without
// WithDontCrossCorners the resolved policy is IfAtMostOneObstacle.
func WithAllowDiagonal() Option {
	return func(o *Options) {
		o.AllowDiagonal = true
	}
}

// WithDontCrossCorners sets the legacy corner-blocking flag. Combined with
// WithAllowDiagonal the resolved policy is OnlyWhenNoObstacles; on its own
// it has no effect (no diagonals means no corners to cross).
func WithDontCrossCorners() Option {
	return func(o *Options) {
		o.DontCrossCorners = true
	}
}

// WithHeuristic sets the remaining-distance estimate. Passing a nil func
// has no effect (the policy-derived default is retained). Admissibility is
// the caller's obligation; a non-admissible estimate silently degrades
// optimality rather than failing.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithWeight sets the heuristic weight. Must pass a value ≥ 1; smaller
// values cause ErrBadWeight.
// Panic on invalid input follows the option-constructor convention: fail
// at configuration time, not mid-search.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if w < 1 {
			panic(ErrBadWeight.Error())
		}
		o.Weight = w
	}
}

// WithTimeLimit sets the wall-clock budget for the whole FindPath call.
// A value ≤ 0 means unbounded (the default).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithClock sets the time source used for deadline polling. Passing nil
// has no effect (the system clock is retained).
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithTracker installs recursion instrumentation. The tracker is reset at
// the start of the call and is guaranteed fully unwound when FindPath
// returns, whatever the outcome.
func WithTracker(t *Tracker) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracker = t
		}
	}
}

// WithOnExpand installs a per-node hook, called once for every node
// examined with its coordinates and accumulated path cost. The hook never
// influences pruning or path selection.
func WithOnExpand(fn func(x, y int, g float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnSweep installs a per-sweep hook, called with the cutoff about to
// be used. Across successive calls within one search the observed cutoffs
// are non-decreasing.
func WithOnSweep(fn func(cutoff float64)) Option {
	return func(o *Options) {
		o.OnSweep = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Diagonal:  derived from legacy flags (both false ⇒ grid.Never)
//   - Heuristic: nil (resolved from the policy during normalization)
//   - Weight:    1 (optimal search under an admissible heuristic)
//   - TimeLimit: 0 (unbounded)
//   - Clock:     system clock
//   - No tracker, no hooks.
func DefaultOptions() Options {
	return Options{
		Weight: 1,
		Clock:  systemClock{},
	}
}

// normalize resolves the configuration exactly once, before the search
// starts: the legacy flags collapse into the canonical policy enum, and
// the heuristic default follows the resolved policy. The search itself
// never branches on the legacy flags.
func (o *Options) normalize() {
	if !o.diagonalSet {
		switch {
		case !o.AllowDiagonal:
			o.Diagonal = grid.Never
		case o.DontCrossCorners:
			o.Diagonal = grid.OnlyWhenNoObstacles
		default:
			o.Diagonal = grid.IfAtMostOneObstacle
		}
	}
	if o.Heuristic == nil {
		if o.Diagonal == grid.Never {
			o.Heuristic = heuristic.Manhattan
		} else {
			o.Heuristic = heuristic.Octile
		}
	}
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
	if o.Weight < 1 {
		// Option constructor already panics; this guards direct struct use.
		o.Weight = 1
	}
}
