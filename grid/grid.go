// Package grid provides the rectangular walkability map consumed by the
// search packages. It supports:
//
//   - Construction from explicit dimensions or from a 0/1 obstacle matrix
//   - O(1) bounds and walkability queries
//   - Neighbor enumeration under a DiagonalMovement policy, in an order
//     that is deterministic for a given (node, policy) pair
//
// Cells with matrix value 0 are walkable; any nonzero value is an obstacle.
package grid

// Grid is a rectangular collection of Nodes. Width and Height define the
// dimensions; nodes[y][x] holds the cell at column x, row y.
// Walkability may be mutated via SetWalkableAt; the node layout itself is
// fixed at construction.
type Grid struct {
	Width, Height int
	nodes         [][]Node
}

// New constructs a Grid of the given dimensions with every cell walkable.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	g := &Grid{Width: width, Height: height, nodes: make([][]Node, height)}
	for y := 0; y < height; y++ {
		g.nodes[y] = make([]Node, width)
		for x := 0; x < width; x++ {
			g.nodes[y][x] = Node{X: x, Y: y, Walkable: true}
		}
	}

	return g, nil
}

// NewFromMatrix constructs a Grid from a non-empty, rectangular 0/1 matrix.
// A cell with value 0 is walkable; any other value is an obstacle.
// The input is read once and never retained.
// Returns ErrEmptyGrid if the matrix has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewFromMatrix(matrix [][]int) (*Grid, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(matrix), len(matrix[0])
	for _, row := range matrix {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.nodes[y][x].Walkable = matrix[y][x] == 0
		}
	}

	return g, nil
}

// Inside reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Inside(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// WalkableAt reports whether (x,y) is inside the grid and walkable.
// Complexity: O(1).
func (g *Grid) WalkableAt(x, y int) bool {
	return g.Inside(x, y) && g.nodes[y][x].Walkable
}

// SetWalkableAt updates the walkability of (x,y). Out-of-bounds
// coordinates are ignored.
// Complexity: O(1).
func (g *Grid) SetWalkableAt(x, y int, walkable bool) {
	if g.Inside(x, y) {
		g.nodes[y][x].Walkable = walkable
	}
}

// NodeAt returns the Node at (x,y), or nil when (x,y) is out of bounds.
// Callers are responsible for supplying in-bounds coordinates; the nil
// return exists so that violation surfaces at the lookup site.
// Complexity: O(1).
func (g *Grid) NodeAt(x, y int) *Node {
	if !g.Inside(x, y) {
		return nil
	}

	return &g.nodes[y][x]
}

// Clone returns a deep copy of the grid, including walkability state.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, nodes: make([][]Node, g.Height)}
	for y := 0; y < g.Height; y++ {
		c.nodes[y] = make([]Node, g.Width)
		copy(c.nodes[y], g.nodes[y])
	}

	return c
}

// Neighbors returns the walkable neighbors of n under the given diagonal
// policy. The enumeration order is fixed for a given (node, policy) pair:
// up, right, down, left, then up-left, up-right, down-right, down-left
// for whichever diagonals the policy admits. Deterministic order is part
// of the contract; search cutoff sequences depend on it.
// Complexity: O(1) — at most eight probes.
func (g *Grid) Neighbors(n *Node, dm DiagonalMovement) []*Node {
	x, y := n.X, n.Y
	neighbors := make([]*Node, 0, 8)

	// Orthogonal probes. s0..s3 record which succeeded, clockwise from up;
	// the diagonal gates below are derived from them.
	var s0, s1, s2, s3 bool
	if g.WalkableAt(x, y-1) {
		neighbors = append(neighbors, &g.nodes[y-1][x])
		s0 = true
	}
	if g.WalkableAt(x+1, y) {
		neighbors = append(neighbors, &g.nodes[y][x+1])
		s1 = true
	}
	if g.WalkableAt(x, y+1) {
		neighbors = append(neighbors, &g.nodes[y+1][x])
		s2 = true
	}
	if g.WalkableAt(x-1, y) {
		neighbors = append(neighbors, &g.nodes[y][x-1])
		s3 = true
	}

	if dm == Never {
		return neighbors
	}

	// d0..d3 gate the diagonals, clockwise from up-left.
	var d0, d1, d2, d3 bool
	switch dm {
	case IfAtMostOneObstacle:
		d0 = s3 || s0
		d1 = s0 || s1
		d2 = s1 || s2
		d3 = s2 || s3
	case OnlyWhenNoObstacles:
		d0 = s3 && s0
		d1 = s0 && s1
		d2 = s1 && s2
		d3 = s2 && s3
	case Always:
		d0, d1, d2, d3 = true, true, true, true
	}

	if d0 && g.WalkableAt(x-1, y-1) {
		neighbors = append(neighbors, &g.nodes[y-1][x-1])
	}
	if d1 && g.WalkableAt(x+1, y-1) {
		neighbors = append(neighbors, &g.nodes[y-1][x+1])
	}
	if d2 && g.WalkableAt(x+1, y+1) {
		neighbors = append(neighbors, &g.nodes[y+1][x+1])
	}
	if d3 && g.WalkableAt(x-1, y+1) {
		neighbors = append(neighbors, &g.nodes[y+1][x-1])
	}

	return neighbors
}
