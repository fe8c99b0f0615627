package board

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/eprossi/knowledge-minesweeper/internal/solver"
)

// Board is the ground truth of one game: where the mines actually
// are. The agent never sees it; the caller mediates every probe.
type Board struct {
	height, width int
	mines         map[solver.Cell]struct{}
	flagged       map[solver.Cell]struct{}
}

// New places mineCount mines uniformly on a height x width grid
// using the provided random source.
func New(height, width, mineCount int, r *rand.Rand) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", height, width)
	}
	if mineCount < 0 || mineCount > height*width {
		return nil, fmt.Errorf(
			"cannot place %d mines on a %dx%d board", mineCount, height, width,
		)
	}
	b := &Board{
		height:  height,
		width:   width,
		mines:   make(map[solver.Cell]struct{}, mineCount),
		flagged: make(map[solver.Cell]struct{}, mineCount),
	}
	for len(b.mines) < mineCount {
		c := solver.Cell{Row: r.IntN(height), Col: r.IntN(width)}
		b.mines[c] = struct{}{}
	}
	return b, nil
}

func (b *Board) Height() int    { return b.height }
func (b *Board) Width() int     { return b.width }
func (b *Board) MineCount() int { return len(b.mines) }

// SafeCellCount is the number of probes needed to clear the board.
func (b *Board) SafeCellCount() int {
	return b.height*b.width - len(b.mines)
}

func (b *Board) IsMine(c solver.Cell) bool {
	_, ok := b.mines[c]
	return ok
}

// NearbyMines counts the mines among the up-to-8 neighbors of c, the
// cell itself excluded.
func (b *Board) NearbyMines(c solver.Cell) int {
	count := 0
	for _, n := range c.Neighbors(b.height, b.width) {
		if b.IsMine(n) {
			count++
		}
	}
	return count
}

// Flag marks c as a found mine.
func (b *Board) Flag(c solver.Cell) {
	b.flagged[c] = struct{}{}
}

// Won reports whether the flagged set matches the mines exactly.
func (b *Board) Won() bool {
	if len(b.flagged) != len(b.mines) {
		return false
	}
	for c := range b.mines {
		if _, ok := b.flagged[c]; !ok {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			if b.IsMine(solver.Cell{Row: row, Col: col}) {
				sb.WriteString("* ")
			} else {
				sb.WriteString("- ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
