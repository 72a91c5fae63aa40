package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/reversi/internal/config"
	"github.com/rocketscienceinc/reversi/internal/repository"
	"github.com/rocketscienceinc/reversi/internal/repository/storage"
	"github.com/rocketscienceinc/reversi/internal/transport/console"
	"github.com/rocketscienceinc/reversi/internal/usecase"
)

// RunApp - runs one console game reading moves from in and rendering to out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close game storage", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, gameRepo)
	session := console.NewSession(logger, gameManager, in, out, console.Options{
		BlackMark: conf.Display.BlackMark,
		WhiteMark: conf.Display.WhiteMark,
		Hints:     !conf.Display.HideHints,
	})

	// the session blocks on input, so it runs aside from the signal wait
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game session", "storage", conf.Storage)
		_, sessionErr := session.Play(ctx)
		sessionErrCh <- sessionErr
	}()

	select {
	case err = <-sessionErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("game session error: %w", err)
		}

		log.Info("Game session ended")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL), redisStorage.Close, nil
}

// NewLogger - builds the JSON logger for the configured level. Logs go to w, which
// should not be the stream the board is rendered to.
func NewLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
