package solver_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eprossi/knowledge-minesweeper/internal/board"
	"github.com/eprossi/knowledge-minesweeper/internal/solver"
)

// Plays full games on randomly generated boards and checks every
// certainty the engine produces against the ground truth: a proven
// safe cell is never a mine, a proven mine always is one.
func TestDeductionSoundness(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()

	tests := []struct {
		name                     string
		height, width, mineCount int
		games                    int
	}{
		{"4x4(3)", 4, 4, 3, 50},
		{"8x8(8)", 8, 8, 8, 30},
		{"9x9(10)", 9, 9, 10, 20},
		{"5x12(14)", 5, 12, 14, 20},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			for seed := range test.games {
				r := rand.New(rand.NewPCG(uint64(seed), 42))
				b, err := board.New(test.height, test.width, test.mineCount, r)
				require.NoError(t, err)
				playAndVerify(t, b, r)
			}
		})
	}
}

func playAndVerify(t *testing.T, b *board.Board, r *rand.Rand) {
	t.Helper()

	agent := solver.NewAgent(b.Height(), b.Width(), r)
	for {
		move, certain := agent.SafeMove()
		if !certain {
			var ok bool
			if move, ok = agent.RandomMove(); !ok {
				break
			}
		}
		if b.IsMine(move) {
			require.False(t, certain,
				"agent proposed %s as certainly safe but it is a mine", move)
			return // lost on a guess, which is fair
		}
		require.NoError(t, agent.Observe(move, b.NearbyMines(move)))

		for c := range agent.Knowledge().Mines() {
			require.True(t, b.IsMine(c),
				"agent proved %s is a mine but it is not", c)
		}
		for c := range agent.Knowledge().Safes() {
			require.False(t, b.IsMine(c),
				"agent proved %s safe but it is a mine", c)
		}
	}
}
