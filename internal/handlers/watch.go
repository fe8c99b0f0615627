package handlers

import (
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/eprossi/knowledge-minesweeper/internal/game"
	"github.com/eprossi/knowledge-minesweeper/internal/repository"
)

type watchEvent struct {
	Type    string        `json:"type"`
	Move    *game.Move    `json:"move,omitempty"`
	Outcome *game.Outcome `json:"outcome,omitempty"`
}

// Watch streams a live solver game over a websocket: one frame per
// probe, a final frame with the outcome. The finished match is
// recorded like any other.
func (h *MatchHandler) Watch(w http.ResponseWriter, r *http.Request) {
	params, seed, ok := h.parseParams(w, r.URL.Query())
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	session, err := game.NewSession(params, rand.New(rand.NewPCG(seed, 0)))
	if err != nil {
		h.logger.Error("unable to create session", "error", err)
		return
	}

	var writeErr error
	session.OnMove = func(m game.Move) {
		if writeErr != nil {
			return
		}
		writeErr = c.WriteJSON(watchEvent{Type: "move", Move: &m})
	}

	outcome, err := session.Play(r.Context())
	if err != nil {
		h.logger.Error("unable to play match", "error", err)
		return
	}
	if writeErr != nil {
		if !websocket.IsCloseError(writeErr, websocket.CloseNormalClosure) {
			h.logger.Warn("watch stream interrupted", slog.Any("error", writeErr))
		}
		return
	}

	if _, err := h.repo.CreateMatch(r.Context(), repository.CreateMatchParams{
		PlayerId: playerId(r),
		Params:   params,
		Outcome:  outcome,
		Seed:     seed,
	}); err != nil {
		h.logger.Error("unable to store match", "error", err)
	}

	if err := c.WriteJSON(watchEvent{Type: "outcome", Outcome: &outcome}); err != nil {
		h.logger.Warn("unable to send outcome", slog.Any("error", err))
	}
}
