// Package idastar — recursion instrumentation shared with external visualizers.
//
// The Tracker mirrors the live recursion frontier of one in-flight search:
// a cell's active depth count says how many recursion frames currently hold
// it, and the frontier set lists every cell with a nonzero count. Counts are
// true reference counts, not boolean toggles — distinct branches of the
// depth-first descent may converge on the same cell, and the cell stays
// "being visited" until the last frame releases it.
//
// The Tracker never influences pruning or path selection. It is scoped to a
// single FindPath call: the engine resets it on entry and unwinds it fully
// before returning, success or failure.
//
// Concurrency: the frontier set is safe for concurrent reads (a visualizer
// polling mid-search from another goroutine), but the count map is owned by
// the searching goroutine. Do not share one Tracker between two concurrent
// searches.
package idastar

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// Tracker records per-cell active depth counts for one in-flight search.
type Tracker struct {
	counts   map[[2]int]int
	frontier mapset.Set
}

// NewTracker returns an empty Tracker ready to be passed to WithTracker.
func NewTracker() *Tracker {
	return &Tracker{
		counts:   make(map[[2]int]int),
		frontier: mapset.NewSet(),
	}
}

// reset discards all state; called by the engine at the start of a search.
func (t *Tracker) reset() {
	t.counts = make(map[[2]int]int)
	t.frontier.Clear()
}

// enter increments the active depth count of (x,y), adding it to the
// frontier when the count was previously zero.
func (t *Tracker) enter(x, y int) {
	key := [2]int{x, y}
	if t.counts[key] == 0 {
		t.frontier.Add(key)
	}
	t.counts[key]++
}

// leave decrements the active depth count of (x,y), removing it from the
// frontier once the count reaches zero.
func (t *Tracker) leave(x, y int) {
	key := [2]int{x, y}
	t.counts[key]--
	if t.counts[key] <= 0 {
		delete(t.counts, key)
		t.frontier.Remove(key)
	}
}

// ActiveDepth returns how many recursion frames currently hold (x,y).
// Zero for any cell once the search has returned.
func (t *Tracker) ActiveDepth(x, y int) int {
	return t.counts[[2]int{x, y}]
}

// BeingVisited reports whether (x,y) is on the live recursion frontier.
// False for every cell once the search has returned.
func (t *Tracker) BeingVisited(x, y int) bool {
	return t.frontier.Contains([2]int{x, y})
}

// Frontier returns a snapshot of the live frontier, sorted row-major for
// deterministic output.
func (t *Tracker) Frontier() [][2]int {
	raw := t.frontier.ToSlice()
	out := make([][2]int, 0, len(raw))
	for _, v := range raw {
		if key, ok := v.([2]int); ok {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][1] != out[j][1] {
			return out[i][1] < out[j][1]
		}

		return out[i][0] < out[j][0]
	})

	return out
}
