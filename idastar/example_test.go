// File: idastar/example_test.go
package idastar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/idastar"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath across an open grid
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath demonstrates the canonical diagonal sweep: on an
// obstacle-free 5×5 grid with corner cutting allowed, the optimal route
// from (0,0) to (4,4) is the pure diagonal of cost 4√2.
func ExampleFindPath() {
	g, _ := grid.New(5, 5)

	res, err := idastar.FindPath(g, 0, 0, 4, 4,
		idastar.WithDiagonalMovement(grid.IfAtMostOneObstacle))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, p := range res.Path {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("(%d,%d)", p[0], p[1])
	}
	fmt.Printf("\ncost: %.3f sweeps: %d\n", res.Cost, res.Sweeps)

	// Output:
	// (0,0) (1,1) (2,2) (3,3) (4,4)
	// cost: 5.657 sweeps: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: distinguishing exhaustion from a found path
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath_unreachable shows the exhaustion outcome: a wall fully
// separating start and goal yields ErrNoPath and an empty path.
func ExampleFindPath_unreachable() {
	g, _ := grid.NewFromMatrix([][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	})

	_, err := idastar.FindPath(g, 0, 0, 4, 4)
	fmt.Println(errors.Is(err, idastar.ErrNoPath))

	// Output:
	// true
}
