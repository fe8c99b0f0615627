package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eprossi/knowledge-minesweeper/internal/solver"
)

func TestNewPlacesExactMineCount(t *testing.T) {
	tests := []struct {
		name                     string
		height, width, mineCount int
	}{
		{"8x8(8)", 8, 8, 8},
		{"9x9(10)", 9, 9, 10},
		{"1x3(1)", 1, 3, 1},
		{"2x2(0)", 2, 2, 0},
		{"3x3(9)", 3, 3, 9},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			b, err := New(test.height, test.width, test.mineCount, r)
			require.NoError(t, err)

			found := 0
			for row := range test.height {
				for col := range test.width {
					if b.IsMine(solver.Cell{Row: row, Col: col}) {
						found++
					}
				}
			}
			assert.Equal(t, test.mineCount, found)
			assert.Equal(t, test.mineCount, b.MineCount())
			assert.Equal(t, test.height*test.width-test.mineCount, b.SafeCellCount())
		})
	}
}

func TestNewRejectsBadParams(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	_, err := New(0, 5, 1, r)
	assert.Error(t, err)

	_, err = New(5, -1, 1, r)
	assert.Error(t, err)

	_, err = New(2, 2, 5, r)
	assert.Error(t, err)

	_, err = New(2, 2, -1, r)
	assert.Error(t, err)
}

func TestNewIsDeterministicPerSeed(t *testing.T) {
	a, err := New(9, 9, 10, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := New(9, 9, 10, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
}

func TestNearbyMines(t *testing.T) {
	// place every mine deterministically by brute-force comparison
	r := rand.New(rand.NewPCG(3, 4))
	b, err := New(6, 7, 12, r)
	require.NoError(t, err)

	for row := range b.Height() {
		for col := range b.Width() {
			c := solver.Cell{Row: row, Col: col}
			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					n := solver.Cell{Row: row + dr, Col: col + dc}
					if n != c && n.Valid(b.Height(), b.Width()) && b.IsMine(n) {
						want++
					}
				}
			}
			assert.Equal(t, want, b.NearbyMines(c), "cell %s", c)
		}
	}
}

func TestWon(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	b, err := New(4, 4, 3, r)
	require.NoError(t, err)

	assert.False(t, b.Won())

	// flagging a safe cell must not count toward the win
	for row := range b.Height() {
		for col := range b.Width() {
			c := solver.Cell{Row: row, Col: col}
			if !b.IsMine(c) {
				b.Flag(c)
				assert.False(t, b.Won())
				break
			}
		}
		break
	}

	b2, err := New(4, 4, 3, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	for row := range b2.Height() {
		for col := range b2.Width() {
			c := solver.Cell{Row: row, Col: col}
			if b2.IsMine(c) {
				b2.Flag(c)
			}
		}
	}
	assert.True(t, b2.Won())
}
