package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgent(height, width int) *Agent {
	return NewAgent(height, width, rand.New(rand.NewPCG(1, 2)))
}

func TestObserveOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
	}{
		{"negative row", Cell{-1, 0}},
		{"negative col", Cell{0, -1}},
		{"row too large", Cell{3, 0}},
		{"col too large", Cell{0, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := newTestAgent(3, 3)
			err := a.Observe(test.cell, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}

func TestObserveNegativeCount(t *testing.T) {
	a := newTestAgent(3, 3)
	require.Error(t, a.Observe(Cell{0, 0}, -1))
}

// On a 1x3 row, observing the corner with count 1 leaves a sentence
// over its single in-bounds neighbor, which resolves immediately.
func TestSingleNeighborResolvesImmediately(t *testing.T) {
	a := newTestAgent(1, 3)
	require.NoError(t, a.Observe(Cell{0, 0}, 1))

	assert.True(t, a.Knowledge().Mine(Cell{0, 1}))
	assert.True(t, a.Knowledge().Safe(Cell{0, 0}))
	assert.Empty(t, a.Knowledge().Sentences())
}

func TestObserveDiscountsKnownMines(t *testing.T) {
	a := newTestAgent(1, 3)
	require.NoError(t, a.Observe(Cell{0, 0}, 1)) // proves (0,1) is a mine

	// (0,2) borders the known mine only; its count of 1 is fully
	// explained, so nothing new may be inferred about anyone else
	require.NoError(t, a.Observe(Cell{0, 2}, 1))
	assert.Empty(t, a.Knowledge().Sentences())
	assert.Len(t, a.Knowledge().Mines(), 1)
}

func TestSafeMoveNoneAvailable(t *testing.T) {
	a := newTestAgent(3, 3)
	_, ok := a.SafeMove()
	assert.False(t, ok)
}

func TestSafeMoveSkipsPlayedCells(t *testing.T) {
	a := newTestAgent(1, 2)
	require.NoError(t, a.Observe(Cell{0, 0}, 0)) // proves (0,1) safe

	move, ok := a.SafeMove()
	require.True(t, ok)
	assert.Equal(t, Cell{0, 1}, move)

	require.NoError(t, a.Observe(move, 0))
	_, ok = a.SafeMove()
	assert.False(t, ok)
}

func TestRandomMoveAvoidsKnownMines(t *testing.T) {
	a := newTestAgent(1, 3)
	require.NoError(t, a.Observe(Cell{0, 0}, 1)) // (0,1) proven mine

	for range 50 {
		move, ok := a.RandomMove()
		require.True(t, ok)
		assert.Equal(t, Cell{0, 2}, move)
	}
}

func TestRandomMoveExhaustion(t *testing.T) {
	a := newTestAgent(1, 2)
	require.NoError(t, a.Observe(Cell{0, 0}, 1)) // (0,1) proven mine

	_, ok := a.RandomMove()
	assert.False(t, ok, "moves made and known mines cover the board")
}

func TestObserveMonotoneAndDisjoint(t *testing.T) {
	a := newTestAgent(2, 2)

	var prevSafes, prevMines int
	observations := []struct {
		cell  Cell
		count int
	}{
		{Cell{0, 0}, 1},
		{Cell{0, 1}, 1},
		{Cell{1, 0}, 1},
	}
	for _, obs := range observations {
		require.NoError(t, a.Observe(obs.cell, obs.count))

		safes, mines := a.Knowledge().Safes(), a.Knowledge().Mines()
		for c := range safes {
			_, both := mines[c]
			require.False(t, both, "%s is proven both safe and mine", c)
		}
		require.GreaterOrEqual(t, len(safes), prevSafes)
		require.GreaterOrEqual(t, len(mines), prevMines)
		prevSafes, prevMines = len(safes), len(mines)
	}

	// three cells each touching the single mine pin it down
	assert.True(t, a.Knowledge().Mine(Cell{1, 1}))
}
