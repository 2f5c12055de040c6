// Package gridpath is a grid path-search toolkit built around Iterative
// Deepening A*: memory-lean optimal routing over walkability maps.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• grid:      rectangular walkability maps with diagonal-movement policies
//		• heuristic: Manhattan, Euclidean, Octile, and Chebyshev estimators
//		• idastar:   the IDA* search core — cutoff escalation, time budgets,
//		             recursion instrumentation for live visualizers
//
// ✨ Why choose gridpath?
//
//   - Deterministic – fixed neighbor order ⇒ reproducible paths and cutoffs
//   - Memory-lean – no open/closed sets, just the recursion stack
//   - Extensible – functional options, injectable clock, per-node hooks
//
// Everything is organized under three subpackages plus a demo binary:
//
//	grid/         — Grid, Node, DiagonalMovement policies
//	heuristic/    — pure distance estimators
//	idastar/      — FindPath, Options, Tracker
//	cmd/gridpath/ — maze solver CLI and websocket frontier feed
//
// Quick ASCII example:
//
//	S . . . .        S * . . .
//	# # # . .   ⇒    # # # * .
//	. . . . G        . . . . G
//
// Start with grid.NewFromMatrix, then idastar.FindPath.
package gridpath
