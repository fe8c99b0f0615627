package main

import (
	"context"
	"flag"
	"hash/maphash"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/eprossi/knowledge-minesweeper/internal/game"
	"github.com/eprossi/knowledge-minesweeper/internal/solver"
)

var log = logrus.New()

var (
	height  = flag.Int("height", 9, "board height")
	width   = flag.Int("width", 9, "board width")
	mines   = flag.Int("mines", 10, "number of mines")
	games   = flag.Int("games", 100, "number of games to play")
	workers = flag.Int("workers", runtime.NumCPU(), "concurrent games")
	seed    = flag.Uint64("seed", 0, "base random seed (0 picks one)")
	verbose = flag.Bool("v", false, "enable debug logging")
	logFile = flag.String("log-file", "", "also write logs to a rotating file")
)

func setupLogging() {
	level := logrus.InfoLevel
	if *verbose {
		level = logrus.DebugLevel
	}
	for _, l := range []*logrus.Logger{log, solver.Log, game.Log} {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		if *logFile != "" {
			hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
				Filename:   *logFile,
				MaxSize:    10, // MB
				MaxBackups: 3,
				MaxAge:     28, // days
				Level:      level,
				Formatter:  &logrus.JSONFormatter{},
			})
			if err != nil {
				log.Fatal("unable to set up file logging: ", err)
			}
			l.AddHook(hook)
		}
	}
}

func main() {
	flag.Parse()
	setupLogging()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if *seed == 0 {
		*seed = new(maphash.Hash).Sum64()
	}

	params := game.Params{
		Height:    *height,
		Width:     *width,
		MineCount: *mines,
	}
	log.Infof("playing %d game(s) of %dx%d with %d mine(s), seed %d",
		*games, *height, *width, *mines, *seed)

	started := time.Now()
	stats, err := game.Simulate(ctx, params, *games, *workers, *seed)
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("won %d of %d (%.1f%%) in %s",
		stats.Wins, stats.Games, stats.WinRate()*100,
		time.Since(started).Round(time.Millisecond))
	if stats.Moves > 0 {
		log.Infof("moves: %d total, %d deduced, %d guessed (%.1f%% certain)",
			stats.Moves, stats.Deduced, stats.Guessed,
			float64(stats.Deduced)/float64(stats.Moves)*100)
	}
}
