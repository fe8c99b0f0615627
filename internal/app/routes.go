package app

import (
	"github.com/eprossi/knowledge-minesweeper/internal/handlers"
)

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)
	match := handlers.NewMatchHandler(a.logger, a.db, a.ws)

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
	a.router.HandleFunc("GET /status", auth.Status)

	a.router.HandleFunc("POST /match", match.NewMatch)
	a.router.HandleFunc("GET /records", match.Records)
	a.router.HandleFunc("/match/watch", match.Watch)
}
