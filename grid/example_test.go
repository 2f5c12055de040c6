// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors under diagonal policies
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors demonstrates how the diagonal policy gates corner
// cutting. Scenario:
//
//   - Matrix values: 0 = walkable, 1 = obstacle
//   - The cell above the center is blocked, so both upper diagonals cut
//     across an obstacle
//   - IfAtMostOneObstacle still admits them; OnlyWhenNoObstacles does not
func ExampleGrid_Neighbors() {
	g, _ := grid.NewFromMatrix([][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	center := g.NodeAt(1, 1)

	for _, dm := range []grid.DiagonalMovement{grid.Never, grid.IfAtMostOneObstacle, grid.OnlyWhenNoObstacles} {
		fmt.Printf("%s:", dm)
		for _, n := range g.Neighbors(center, dm) {
			fmt.Printf(" (%d,%d)", n.X, n.Y)
		}
		fmt.Println()
	}

	// Output:
	// Never: (2,1) (1,2) (0,1)
	// IfAtMostOneObstacle: (2,1) (1,2) (0,1) (0,0) (2,0) (2,2) (0,2)
	// OnlyWhenNoObstacles: (2,1) (1,2) (0,1) (2,2) (0,2)
}
