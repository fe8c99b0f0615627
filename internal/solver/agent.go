package solver

import (
	"fmt"
	"math/rand/v2"
)

// Agent plays a single game of minesweeper by deduction. It never
// touches the board itself: the caller probes a cell, feeds the
// resulting mine count through Observe, and asks for the next move.
// One agent serves one game and one sequential caller.
type Agent struct {
	height, width int
	rnd           *rand.Rand
	knowledge     *Knowledge
	movesMade     map[Cell]struct{}
}

// NewAgent creates an agent for a height x width board. The random
// source only drives RandomMove; deduction is fully deterministic.
func NewAgent(height, width int, r *rand.Rand) *Agent {
	return &Agent{
		height:    height,
		width:     width,
		rnd:       r,
		knowledge: NewKnowledge(),
		movesMade: make(map[Cell]struct{}),
	}
}

func (a *Agent) Height() int { return a.height }
func (a *Agent) Width() int  { return a.width }

// Knowledge exposes the agent's knowledge base for inspection.
func (a *Agent) Knowledge() *Knowledge { return a.knowledge }

// Played reports whether cell has already been probed.
func (a *Agent) Played(c Cell) bool {
	_, ok := a.movesMade[c]
	return ok
}

// Observe records that probing cell revealed count mines among its
// neighbors. The probed cell is safe by construction. A sentence over
// the still-unknown neighbors is added and knowledge propagates to a
// fixed point before Observe returns.
func (a *Agent) Observe(cell Cell, count int) error {
	if !cell.Valid(a.height, a.width) {
		return fmt.Errorf("observe %s on %dx%d board: %w",
			cell, a.height, a.width, ErrOutOfBounds)
	}
	if count < 0 {
		return fmt.Errorf("observe %s: negative mine count %d", cell, count)
	}

	a.movesMade[cell] = struct{}{}
	a.knowledge.MarkSafe(cell)

	cells := make([]Cell, 0, 8)
	for _, n := range cell.Neighbors(a.height, a.width) {
		switch {
		case a.knowledge.Safe(n):
			// already resolved, nothing to say about it
		case a.knowledge.Mine(n):
			// this mine is accounted for, don't count it twice
			count--
		default:
			cells = append(cells, n)
		}
	}
	a.knowledge.Add(NewSentence(cells, count))

	if err := a.knowledge.Propagate(); err != nil {
		return fmt.Errorf("observe %s: %w", cell, err)
	}
	return nil
}

// SafeMove returns a cell proven safe that has not been probed yet.
// Which one is unspecified. ok is false when deduction has nothing
// certain to offer; that is a normal outcome, not a fault.
func (a *Agent) SafeMove() (move Cell, ok bool) {
	for c := range a.knowledge.safes {
		if _, made := a.movesMade[c]; !made {
			return c, true
		}
	}
	return Cell{}, false
}

// RandomMove picks uniformly among cells that are neither probed nor
// proven mines. ok is false once that set is empty: every cell left
// on the board is a known mine.
func (a *Agent) RandomMove() (move Cell, ok bool) {
	candidates := make([]Cell, 0, a.height*a.width)
	for row := range a.height {
		for col := range a.width {
			c := Cell{row, col}
			if _, made := a.movesMade[c]; made {
				continue
			}
			if a.knowledge.Mine(c) {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[a.rnd.IntN(len(candidates))], true
}
