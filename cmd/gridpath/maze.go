package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/grid"
)

// Maze file format: one row per line. '#' is a wall; '.' and ' ' are
// floor; 'S' and 'G' mark the endpoints (floor cells). Any other symbol is
// rejected rather than silently parsed as floor. Rows are padded to the
// longest line with walls, so ragged files stay loadable.
var (
	errNoStart   = errors.New("maze: no 'S' start marker")
	errNoGoal    = errors.New("maze: no 'G' goal marker")
	errEmpty     = errors.New("maze: no rows")
	errBadSymbol = errors.New("maze: unsupported symbol")
)

// maze couples the parsed grid with its marked endpoints.
type maze struct {
	grid  *grid.Grid
	start [2]int
	goal  [2]int
}

// parseMaze reads the text format above from r.
func parseMaze(r io.Reader) (*maze, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	if len(lines) == 0 {
		return nil, errEmpty
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width == 0 {
		return nil, errEmpty
	}

	matrix := make([][]int, len(lines))
	m := &maze{start: [2]int{-1, -1}, goal: [2]int{-1, -1}}
	for y, line := range lines {
		row := make([]int, width)
		for x := 0; x < width; x++ {
			if x >= len(line) {
				row[x] = 1 // pad ragged rows with walls
				continue
			}
			switch line[x] {
			case '#':
				row[x] = 1
			case 'S':
				m.start = [2]int{x, y}
			case 'G':
				m.goal = [2]int{x, y}
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", errBadSymbol, line[x], x, y)
			}
		}
		matrix[y] = row
	}
	if m.start == [2]int{-1, -1} {
		return nil, errNoStart
	}
	if m.goal == [2]int{-1, -1} {
		return nil, errNoGoal
	}

	g, err := grid.NewFromMatrix(matrix)
	if err != nil {
		return nil, err
	}
	m.grid = g

	return m, nil
}
