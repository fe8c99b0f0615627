package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/eprossi/knowledge-minesweeper/internal/config"
	"github.com/eprossi/knowledge-minesweeper/internal/middleware"
	"github.com/eprossi/knowledge-minesweeper/internal/repository"
)

type Auth struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
}

func NewAuth(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	jwt *config.JWT,
) *Auth {
	return &Auth{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
	}
}

type PlayerInfo struct {
	PlayerId int64  `json:"player_id"`
	Username string `json:"username"`
}

type Status struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *PlayerInfo `json:"player,omitempty"`
}

var (
	ErrBadAuthBody        = fmt.Errorf("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = fmt.Errorf("password too long")
	ErrUsernameTaken      = fmt.Errorf("username taken")
	ErrUsernameUnknown    = fmt.Errorf("username unknown")
)

func (a Auth) Status(w http.ResponseWriter, r *http.Request) {
	var status *Status
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if ok {
		status = &Status{
			LoggedIn: true,
			Player:   &PlayerInfo{claims.PlayerId, claims.Username},
		}
		token, err := a.jwt.Sign(claims)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			a.logger.Error("unable to tokenize checked claims", "error", err)
			return
		}
		a.cookies.Refresh(w, token)
	} else {
		status = &Status{LoggedIn: false, Player: nil}
		a.cookies.Clear(w)
	}
	sendJSONOrLog(w, a.logger, status)
}

func parseCredentials(w http.ResponseWriter, r *http.Request) (username, password string, ok bool) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return "", "", false
	}
	username = r.FormValue("username")
	password = r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return "", "", false
	}
	return username, password, true
}

func (a Auth) Register(w http.ResponseWriter, r *http.Request) {
	username, password, ok := parseCredentials(w, r)
	if !ok {
		sendJSONOrLog(w, a.logger, wrapError(ErrBadAuthBody))
		return
	}

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadPasswordTooLong))
		return
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to hash password", "error", err)
		return
	}

	player, err := a.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, a.logger, wrapError(ErrUsernameTaken))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to insert player", "error", err)
		return
	}

	token, err := a.jwt.Sign(
		config.NewPlayerClaims(player.PlayerId, player.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to create a jwt token", "error", err)
		return
	}
	a.cookies.Refresh(w, token)
}

func (a Auth) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := parseCredentials(w, r)
	if !ok {
		sendJSONOrLog(w, a.logger, wrapError(ErrBadAuthBody))
		return
	}

	player, err := a.repo.FetchPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		sendJSONOrLog(w, a.logger, wrapError(ErrUsernameUnknown))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to fetch player", "error", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		player.PasswordHash, []byte(password),
	); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	token, err := a.jwt.Sign(
		config.NewPlayerClaims(player.PlayerId, player.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to create a jwt token", "error", err)
		return
	}
	a.cookies.Refresh(w, token)
}

func (a Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.Clear(w)
}
