package solver

import "fmt"

// Cell identifies a single board position. Cells are plain values and
// are freely copied; two cells are equal iff their coordinates match.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Valid reports whether c lies within a height x width board.
func (c Cell) Valid(height, width int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// Neighbors returns every in-bounds cell within one row and one
// column of c, the cell itself excluded.
func (c Cell) Neighbors(height, width int) []Cell {
	neighbors := make([]Cell, 0, 8)
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{row, col}
			if n == c || !n.Valid(height, width) {
				continue
			}
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
