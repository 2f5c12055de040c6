// Package grid models a 2D walkability map for grid-based path search.
//
// What:
//
//   - Grid wraps a rectangular field of Nodes addressed by (x,y).
//   - Cells are walkable or blocked; blocked cells are never enumerated
//     as neighbors.
//   - Neighbors(node, policy) lists reachable adjacent cells under a
//     DiagonalMovement policy, in a deterministic order.
//
// Why:
//
//   - Game maps and tile worlds: obstacle-aware movement queries.
//   - Robotics and planning demos: occupancy grids for search algorithms.
//   - Serves as the collaborator consumed by the idastar search package.
//
// Diagonal policies:
//
//   - Never:               4-directional movement only.
//   - IfAtMostOneObstacle: diagonal allowed unless both cut corners are blocked.
//   - OnlyWhenNoObstacles: diagonal allowed only with both cut corners free.
//   - Always:              diagonal always allowed.
//
// Complexity:
//
//   - Construction: O(W×H), Memory: O(W×H).
//   - Inside / WalkableAt / NodeAt / SetWalkableAt: O(1).
//   - Neighbors: O(1) — at most eight probes per call.
//
// Errors:
//
//   - ErrEmptyGrid: input matrix has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDimensions: non-positive width or height.
package grid
