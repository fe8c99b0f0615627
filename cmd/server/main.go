package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/eprossi/knowledge-minesweeper/internal/app"
	"github.com/eprossi/knowledge-minesweeper/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	if err := app.New(logger, migrations).Start(ctx); err != nil {
		logger.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}
