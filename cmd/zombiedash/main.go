package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/ugaemi/zombiedash/internal/audio"
	"github.com/ugaemi/zombiedash/internal/config"
	"github.com/ugaemi/zombiedash/internal/game"
	"github.com/ugaemi/zombiedash/internal/record"
	"github.com/ugaemi/zombiedash/internal/session"
	"github.com/ugaemi/zombiedash/internal/store"
	"github.com/ugaemi/zombiedash/internal/terminal"
)

const localCode = "LOCAL"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "zombiedash:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scores, err := store.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	if scores != nil {
		defer scores.Close()
	}

	var sink game.EventSink = game.NopSink{}
	if cfg.AudioEnabled {
		a, err := audio.New(logger)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer a.Close()
			sink = a
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	opts := session.NewOptions(cfg)
	opts.Store = scores
	opts.Sink = sink
	opts.Logger = logger

	renderer := terminal.NewRenderer(screen)
	s := session.New(localCode, cfg.PlayerName, opts)
	s.OnFrame = renderer.Draw

	if st := s.Start(); st != game.StatusContinue {
		return fmt.Errorf("cannot start: first level in %s failed to load", cfg.LevelDir)
	}
	renderer.Draw(s.Frame())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quitCh := make(chan bool, 1)
	go func() {
		quit := terminal.ReadKeys(screen, s.Enqueue, logger)
		if quit {
			cancel()
		}
		quitCh <- quit
	}()

	s.Run(ctx)
	screen.PostEvent(tcell.NewEventInterrupt(nil))
	if <-quitCh {
		return nil
	}

	renderer.DrawGameOver(s.Record(), topScores(scores, logger))
	terminal.WaitKey(screen)
	return nil
}

// topScores loads the leaderboard, or nil when runs are not persisted.
func topScores(scores store.ScoreStore, logger *slog.Logger) []*record.Record {
	if scores == nil {
		return nil
	}
	top, err := scores.Top(context.Background(), store.DefaultTopLimit)
	if err != nil {
		logger.Error("failed to load high scores", "error", err)
		return nil
	}
	return top
}

// setupLogger writes to LOG_FILE when set. Otherwise logs are discarded so
// they do not draw over the screen.
func setupLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{}
	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	var h slog.Handler
	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
