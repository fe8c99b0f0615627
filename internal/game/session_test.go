package game

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"beginner", Params{9, 9, 10}, false},
		{"no mines", Params{2, 2, 0}, false},
		{"all mines", Params{2, 2, 4}, false},
		{"zero height", Params{0, 9, 1}, true},
		{"negative width", Params{9, -1, 1}, true},
		{"too many mines", Params{2, 2, 5}, true},
		{"negative mines", Params{2, 2, -1}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlayMinelessBoardAlwaysWins(t *testing.T) {
	s, err := NewSession(Params{4, 4, 0}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	out, err := s.Play(context.Background())
	require.NoError(t, err)

	assert.True(t, out.Won)
	assert.Equal(t, 16, out.Moves)
	// only the opening probe is uninformed
	assert.Equal(t, 1, out.Guessed)
	assert.Equal(t, 15, out.Deduced)
}

func TestPlayCountsAddUp(t *testing.T) {
	for seed := range uint64(20) {
		s, err := NewSession(Params{8, 8, 8}, rand.New(rand.NewPCG(seed, 0)))
		require.NoError(t, err)

		out, err := s.Play(context.Background())
		require.NoError(t, err)

		assert.Equal(t, out.Moves, out.Deduced+out.Guessed)
		if out.Won {
			assert.Equal(t, 8*8-8, out.Moves)
		}
	}
}

func TestPlayEmitsEveryMove(t *testing.T) {
	s, err := NewSession(Params{6, 6, 5}, rand.New(rand.NewPCG(11, 0)))
	require.NoError(t, err)

	var moves []Move
	s.OnMove = func(m Move) { moves = append(moves, m) }

	out, err := s.Play(context.Background())
	require.NoError(t, err)

	require.Len(t, moves, out.Moves)
	seen := make(map[[2]int]bool)
	for _, m := range moves {
		key := [2]int{m.Row, m.Col}
		assert.False(t, seen[key], "cell (%d,%d) probed twice", m.Row, m.Col)
		seen[key] = true
	}
	if last := moves[len(moves)-1]; last.Mine {
		assert.False(t, out.Won)
	}
}

func TestPlayRespectsContext(t *testing.T) {
	s, err := NewSession(Params{9, 9, 10}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Play(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulate(t *testing.T) {
	stats, err := Simulate(context.Background(), Params{8, 8, 6}, 16, 4, 99)
	require.NoError(t, err)

	assert.Equal(t, 16, stats.Games)
	assert.Equal(t, stats.Moves, stats.Deduced+stats.Guessed)
	assert.GreaterOrEqual(t, stats.Wins, 0)
	assert.LessOrEqual(t, stats.Wins, stats.Games)
	assert.InDelta(t, float64(stats.Wins)/16, stats.WinRate(), 1e-9)
}

func TestSimulateIsReproducible(t *testing.T) {
	params := Params{8, 8, 8}
	a, err := Simulate(context.Background(), params, 10, 2, 7)
	require.NoError(t, err)
	b, err := Simulate(context.Background(), params, 10, 8, 7)
	require.NoError(t, err)

	assert.Equal(t, a.Wins, b.Wins)
	assert.Equal(t, a.Moves, b.Moves)
	assert.Equal(t, a.Guessed, b.Guessed)
}

func TestSimulateRejectsBadParams(t *testing.T) {
	_, err := Simulate(context.Background(), Params{0, 0, 0}, 1, 1, 0)
	assert.Error(t, err)
}
