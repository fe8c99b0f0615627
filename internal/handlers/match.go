package handlers

import (
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eprossi/knowledge-minesweeper/internal/config"
	"github.com/eprossi/knowledge-minesweeper/internal/game"
	"github.com/eprossi/knowledge-minesweeper/internal/middleware"
	"github.com/eprossi/knowledge-minesweeper/internal/repository"
)

type MatchHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	dec    *schema.Decoder
}

func NewMatchHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
) *MatchHandler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return &MatchHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		dec:    dec,
	}
}

type MatchParams struct {
	Height    int     `schema:"height,required"`
	Width     int     `schema:"width,required"`
	MineCount int     `schema:"mine_count,required"`
	Seed      *uint64 `schema:"seed"`
}

func (h *MatchHandler) parseParams(
	w http.ResponseWriter, query url.Values,
) (game.Params, uint64, bool) {
	var dto MatchParams
	if err := h.dec.Decode(&dto, query); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return game.Params{}, 0, false
	}
	params := game.Params{
		Height:    dto.Height,
		Width:     dto.Width,
		MineCount: dto.MineCount,
	}
	if err := params.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return game.Params{}, 0, false
	}
	seed := new(maphash.Hash).Sum64()
	if dto.Seed != nil {
		seed = *dto.Seed
	}
	return params, seed, true
}

func playerId(r *http.Request) *int64 {
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if !ok {
		return nil
	}
	return &claims.PlayerId
}

type MatchDTO struct {
	MatchId int64        `json:"match_id"`
	Height  int          `json:"height"`
	Width   int          `json:"width"`
	Mines   int          `json:"mine_count"`
	Seed    uint64       `json:"seed"`
	Outcome game.Outcome `json:"outcome"`
}

// NewMatch runs one full solver game with the requested parameters,
// records it, and returns the outcome.
func (h *MatchHandler) NewMatch(w http.ResponseWriter, r *http.Request) {
	params, seed, ok := h.parseParams(w, r.URL.Query())
	if !ok {
		return
	}

	session, err := game.NewSession(params, rand.New(rand.NewPCG(seed, 0)))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create session", "error", err)
		return
	}
	outcome, err := session.Play(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to play match", "error", err)
		return
	}

	match, err := h.repo.CreateMatch(r.Context(), repository.CreateMatchParams{
		PlayerId: playerId(r),
		Params:   params,
		Outcome:  outcome,
		Seed:     seed,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to store match", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, MatchDTO{
		MatchId: match.MatchId,
		Height:  match.Height,
		Width:   match.Width,
		Mines:   match.MineCount,
		Seed:    seed,
		Outcome: outcome,
	})
}

type RecordsParams struct {
	Username  *string `schema:"username"`
	Height    *int    `schema:"height"`
	Width     *int    `schema:"width"`
	MineCount *int    `schema:"mine_count"`
}

func (h *MatchHandler) Records(w http.ResponseWriter, r *http.Request) {
	var dto RecordsParams
	if err := h.dec.Decode(&dto, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	filter := repository.RecordFilter{Username: dto.Username}
	if dto.Height != nil && dto.Width != nil && dto.MineCount != nil {
		filter.Params = &game.Params{
			Height:    *dto.Height,
			Width:     *dto.Width,
			MineCount: *dto.MineCount,
		}
	}

	records, err := h.repo.GetRecords(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch records", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, records)
}
