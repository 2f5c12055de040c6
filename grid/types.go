// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
)

// DiagonalMovement selects which diagonal neighbors are visitable.
// The rule is evaluated against the two orthogonal cells adjacent to
// a diagonal step (the "corners" the move cuts across).
type DiagonalMovement int

const (
	// Never forbids all diagonal steps: 4-directional movement only.
	Never DiagonalMovement = iota
	// IfAtMostOneObstacle permits a diagonal step unless both adjacent
	// orthogonal cells are blocked.
	IfAtMostOneObstacle
	// OnlyWhenNoObstacles permits a diagonal step only when both adjacent
	// orthogonal cells are walkable.
	OnlyWhenNoObstacles
	// Always permits every diagonal step regardless of adjacent obstacles.
	Always
)

// String returns the canonical name of the policy.
func (dm DiagonalMovement) String() string {
	switch dm {
	case Never:
		return "Never"
	case IfAtMostOneObstacle:
		return "IfAtMostOneObstacle"
	case OnlyWhenNoObstacles:
		return "OnlyWhenNoObstacles"
	case Always:
		return "Always"
	default:
		return "Unknown"
	}
}

// Node represents a single grid cell addressed by integer coordinates.
// Walkability is owned by the enclosing Grid; Node carries no transient
// search state, so concurrent searches over the same Grid stay safe as
// long as the Grid itself is not mutated.
type Node struct {
	X, Y     int  // Coordinates within the grid
	Walkable bool // Whether the cell may be entered
}
