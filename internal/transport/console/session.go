package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/internal/usecase"
)

var errQuit = errors.New("player quit")

type uGame interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	LegalMoves(ctx context.Context, id string) ([]entity.Position, error)
	Place(ctx context.Context, id string, pos entity.Position) (*entity.Game, error)
	SkipTurn(ctx context.Context, id string) (*entity.Game, error)
}

// Session drives one game from the console: it renders every state change,
// passes automatically for a side without moves and re-prompts on rejected input.
type Session struct {
	logger   *slog.Logger
	uGame    uGame
	reader   *Reader
	renderer *Renderer
	out      io.Writer
}

func NewSession(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer, options Options) *Session {
	return &Session{
		logger:   logger.With("component", "console"),
		uGame:    uGame,
		reader:   NewReader(in),
		renderer: NewRenderer(out, options),
		out:      out,
	}
}

// Play - runs a new game until it finishes, the input ends or the player quits.
// It returns the last known game state.
func (that *Session) Play(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "Play")

	game, err := that.uGame.NewGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	log = log.With("game_id", game.ID)

	for {
		if err = ctx.Err(); err != nil {
			return game, err
		}

		var legal []entity.Position
		if !game.IsFinished() {
			legal, err = that.uGame.LegalMoves(ctx, game.ID)
			if err != nil {
				return game, fmt.Errorf("failed to get legal moves: %w", err)
			}
		}

		if err = that.renderer.Render(game, legal); err != nil {
			return game, err
		}

		if game.IsFinished() {
			return game, nil
		}

		var next *entity.Game
		if len(legal) == 0 {
			that.printf("%s has no legal move and passes\n", game.Turn)
			next, err = that.uGame.SkipTurn(ctx, game.ID)
		} else {
			next, err = that.playTurn(ctx, game)
		}

		switch {
		case errors.Is(err, errQuit):
			log.Info("player quit")
			return game, nil
		case errors.Is(err, io.EOF):
			log.Info("input closed")
			return game, nil
		case errors.Is(err, apperror.ErrGameFinished):
			game = next
		case err != nil:
			return game, err
		default:
			game = next
		}
	}
}

// playTurn prompts until the side to move makes an accepted move.
func (that *Session) playTurn(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	for {
		that.printf("%s to move (x y, pass, quit): ", game.Turn)

		cmd, err := that.reader.Next()
		if errors.Is(err, ErrMalformedInput) {
			that.printf("%v\n", err)
			continue
		}

		if err != nil {
			return nil, err
		}

		var next *entity.Game
		switch cmd.Kind {
		case CommandQuit:
			return nil, errQuit
		case CommandPass:
			next, err = that.uGame.SkipTurn(ctx, game.ID)
		default:
			next, err = that.uGame.Place(ctx, game.ID, cmd.Position)
		}

		if usecase.IsRejection(err) {
			that.printf("move rejected: %v\n", errors.Unwrap(err))
			continue
		}

		return next, err
	}
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
