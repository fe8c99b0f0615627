package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/eprossi/knowledge-minesweeper/internal/board"
	"github.com/eprossi/knowledge-minesweeper/internal/solver"
)

var Log = logrus.New()

type Params struct {
	Height    int
	Width     int
	MineCount int
}

func (p Params) Validate() error {
	if p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("invalid board size %dx%d", p.Height, p.Width)
	}
	if p.MineCount < 0 || p.MineCount > p.Height*p.Width {
		return fmt.Errorf("invalid mine count %d for %dx%d board",
			p.MineCount, p.Height, p.Width)
	}
	return nil
}

// Move is one probe of the board as seen by an observer.
type Move struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Guess bool `json:"guess"`
	Count int  `json:"count"`
	Mine  bool `json:"mine"`
}

// Outcome summarizes one finished game.
type Outcome struct {
	Won      bool          `json:"won"`
	Moves    int           `json:"moves"`
	Deduced  int           `json:"deduced"`
	Guessed  int           `json:"guessed"`
	Flagged  int           `json:"flagged"`
	Duration time.Duration `json:"-"`
}

// Session runs one agent against one board until the game ends. The
// agent only ever learns what Observe tells it; the session is the
// mediating game loop.
type Session struct {
	board  *board.Board
	agent  *solver.Agent
	queued deque.Deque[solver.Cell]

	// OnMove, when set, is called synchronously for every probe.
	OnMove func(Move)
}

func NewSession(params Params, r *rand.Rand) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b, err := board.New(params.Height, params.Width, params.MineCount, r)
	if err != nil {
		return nil, err
	}
	return &Session{
		board: b,
		agent: solver.NewAgent(params.Height, params.Width, r),
	}, nil
}

// nextMove drains queued certain moves first, then asks the agent
// for a fresh certainty, then falls back to an uninformed guess.
func (s *Session) nextMove() (move solver.Cell, guess, ok bool) {
	for s.queued.Len() > 0 {
		c := s.queued.PopFront()
		if !s.agent.Played(c) {
			return c, false, true
		}
	}
	if c, ok := s.agent.SafeMove(); ok {
		return c, false, true
	}
	if c, ok := s.agent.RandomMove(); ok {
		return c, true, true
	}
	return solver.Cell{}, false, false
}

func (s *Session) enqueueSafes() {
	for c := range s.agent.Knowledge().Safes() {
		if !s.agent.Played(c) {
			s.queued.PushBack(c)
		}
	}
}

// Play runs the game to completion: probe, observe, repeat. The game
// is won when every safe cell has been probed or when every cell
// left unprobed is a proven mine; it is lost the moment a probe hits
// a mine.
func (s *Session) Play(ctx context.Context) (Outcome, error) {
	start := time.Now()
	var out Outcome
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		move, guess, ok := s.nextMove()
		if !ok {
			break
		}
		out.Moves++
		if guess {
			out.Guessed++
		} else {
			out.Deduced++
		}
		if s.board.IsMine(move) {
			Log.Debugf("probed mine at %s after %d move(s)", move, out.Moves)
			s.emit(move, guess, 0, true)
			out.Duration = time.Since(start)
			return out, nil
		}
		count := s.board.NearbyMines(move)
		s.emit(move, guess, count, false)
		if err := s.agent.Observe(move, count); err != nil {
			return out, fmt.Errorf("play: %w", err)
		}
		s.enqueueSafes()
		if out.Moves == s.board.SafeCellCount() {
			break
		}
	}
	for c := range s.agent.Knowledge().Mines() {
		s.board.Flag(c)
		out.Flagged++
	}
	out.Won = out.Moves == s.board.SafeCellCount()
	out.Duration = time.Since(start)
	Log.Debugf("game over: won=%t moves=%d deduced=%d guessed=%d",
		out.Won, out.Moves, out.Deduced, out.Guessed)
	return out, nil
}

func (s *Session) emit(c solver.Cell, guess bool, count int, mine bool) {
	if s.OnMove != nil {
		s.OnMove(Move{Row: c.Row, Col: c.Col, Guess: guess, Count: count, Mine: mine})
	}
}
