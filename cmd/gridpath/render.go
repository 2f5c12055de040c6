package main

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// renderMaze draws the maze with the route overlaid: walls red, the route
// green, endpoints highlighted. The path may be empty (failed search).
func renderMaze(m *maze, path [][2]int) string {
	onRoute := make(map[[2]int]bool, len(path))
	for _, p := range path {
		onRoute[p] = true
	}

	var sb strings.Builder
	for y := 0; y < m.grid.Height; y++ {
		for x := 0; x < m.grid.Width; x++ {
			cell := [2]int{x, y}
			switch {
			case cell == m.start:
				sb.WriteString(fmt.Sprint(aurora.Bold(aurora.Green("S"))))
			case cell == m.goal:
				sb.WriteString(fmt.Sprint(aurora.Bold(aurora.Green("G"))))
			case !m.grid.WalkableAt(x, y):
				sb.WriteString(fmt.Sprint(aurora.Red("#")))
			case onRoute[cell]:
				sb.WriteString(fmt.Sprint(aurora.Green("*")))
			default:
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
