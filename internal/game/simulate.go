package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Stats aggregates the outcomes of a batch of games.
type Stats struct {
	Games    int           `json:"games"`
	Wins     int           `json:"wins"`
	Moves    int           `json:"moves"`
	Deduced  int           `json:"deduced"`
	Guessed  int           `json:"guessed"`
	Duration time.Duration `json:"-"`
}

func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func (s *Stats) add(out Outcome) {
	s.Games++
	if out.Won {
		s.Wins++
	}
	s.Moves += out.Moves
	s.Deduced += out.Deduced
	s.Guessed += out.Guessed
	s.Duration += out.Duration
}

// Simulate plays games independent sessions over at most workers
// goroutines. Every session gets its own agent, board and random
// source seeded from (seed, game index), so a batch is reproducible
// regardless of scheduling.
func Simulate(
	ctx context.Context, params Params, games, workers int, seed uint64,
) (Stats, error) {
	if err := params.Validate(); err != nil {
		return Stats{}, err
	}

	var (
		mu    sync.Mutex
		stats Stats
	)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range games {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(seed, uint64(i)))
			session, err := NewSession(params, r)
			if err != nil {
				return err
			}
			out, err := session.Play(ctx)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			stats.add(out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}
