package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkNeighbors measures neighbor enumeration on a randomly blocked
// 1000×1000 grid under IfAtMostOneObstacle.
// Complexity per call: O(1) — at most eight probes.
func BenchmarkNeighbors(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	matrix := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			if rng.Intn(5) == 0 {
				row[x] = 1
			}
		}
		matrix[y] = row
	}
	g, err := grid.NewFromMatrix(matrix)
	if err != nil {
		b.Fatalf("setup NewFromMatrix failed: %v", err)
	}
	node := g.NodeAt(n/2, n/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(node, grid.IfAtMostOneObstacle)
	}
}

// BenchmarkClone measures deep-copy cost on a 1000×1000 grid.
func BenchmarkClone(b *testing.B) {
	g, err := grid.New(1000, 1000)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
