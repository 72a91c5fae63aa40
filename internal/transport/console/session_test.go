package console

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/internal/repository"
	"github.com/rocketscienceinc/reversi/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// presetGame starts every session from a prepared position instead of the opening.
type presetGame struct {
	*usecase.GameManager
	repo  repository.GameRepository
	start *entity.Game
}

func (that *presetGame) NewGame(ctx context.Context) (*entity.Game, error) {
	if err := that.repo.CreateOrUpdate(ctx, that.start); err != nil {
		return nil, err
	}

	return that.start.Clone(), nil
}

func newManager() *usecase.GameManager {
	return usecase.NewGameManager(slog.New(slog.NewJSONHandler(io.Discard, nil)), repository.NewMemoryGameRepository())
}

func newSession(uGame uGame, input string, out io.Writer) *Session {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewSession(logger, uGame, strings.NewReader(input), out, Options{})
}

func TestSession_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays moves and stops at end of input", func(t *testing.T) {
		// Given: a session fed with one Black and one White move
		var out strings.Builder
		session := newSession(newManager(), "2 3\nc3\n", &out)

		// When: the session runs
		game, err := session.Play(ctx)

		// Then: both moves are applied
		require.NoError(t, err)
		assert.Equal(t, entity.Black, game.Board.At(entity.Position{X: 2, Y: 3}))
		assert.Equal(t, entity.White, game.Board.At(entity.Position{X: 2, Y: 2}))
		assert.Equal(t, 3, game.Black)
		assert.Equal(t, 3, game.White)
		assert.Equal(t, entity.Black, game.Turn)
		assert.Contains(t, out.String(), "black: 4  white: 1\n")
	})

	t.Run("Re-prompts on rejected and malformed input", func(t *testing.T) {
		// Given: a session whose first inputs are invalid
		var out strings.Builder
		session := newSession(newManager(), "3 3\n0 0\n9 9\nnonsense here\npass\n2 3\nquit\n", &out)

		// When: the session runs
		game, err := session.Play(ctx)

		// Then: each invalid input is reported and the valid move is applied
		require.NoError(t, err)
		text := out.String()
		assert.Contains(t, text, "move rejected: invalid move: cell is already occupied: (3, 3)\n")
		assert.Contains(t, text, "move rejected: invalid move: move flips no discs: (0, 0)\n")
		assert.Contains(t, text, "move rejected: invalid move: position is out of range: (9, 9)\n")
		assert.Contains(t, text, "malformed input")
		assert.Contains(t, text, "move rejected: cannot pass while a legal move exists\n")
		assert.Equal(t, 4, game.Black)
		assert.Equal(t, 1, game.White)
		assert.Equal(t, entity.White, game.Turn)
	})

	t.Run("Reports an overflowing coordinate as out of range", func(t *testing.T) {
		// Given: a session whose first input does not fit an int
		var out strings.Builder
		session := newSession(newManager(), "99999999999999999999 0\nquit\n", &out)

		// When: the session runs
		game, err := session.Play(ctx)

		// Then: the engine rejects it as out of range and the board is untouched
		require.NoError(t, err)
		assert.Contains(t, out.String(), "move rejected: invalid move: position is out of range")
		assert.NotContains(t, out.String(), "malformed input")
		assert.Equal(t, 2, game.Black)
		assert.Equal(t, 2, game.White)
	})

	t.Run("Passes automatically and ends after two passes", func(t *testing.T) {
		// Given: a position where neither side can move
		start := &entity.Game{ID: "stuck", Turn: entity.Black, Status: entity.StatusOngoing}
		start.Board.Set(entity.Position{X: 0, Y: 0}, entity.Black)
		start.Board.Set(entity.Position{X: 7, Y: 7}, entity.White)
		start.Board.Set(entity.Position{X: 7, Y: 0}, entity.White)
		start.Vacant = start.Board.Vacant()
		start.Black, start.White = 1, 2

		repo := repository.NewMemoryGameRepository()
		uGame := &presetGame{
			GameManager: usecase.NewGameManager(slog.New(slog.NewJSONHandler(io.Discard, nil)), repo),
			repo:        repo,
			start:       start,
		}

		var out strings.Builder
		session := newSession(uGame, "", &out)

		// When: the session runs without any input
		game, err := session.Play(ctx)

		// Then: both sides pass and White wins
		require.NoError(t, err)
		text := out.String()
		assert.Contains(t, text, "black has no legal move and passes\n")
		assert.Contains(t, text, "white has no legal move and passes\n")
		assert.Contains(t, text, "game over: white wins 2-1\n")
		assert.True(t, game.IsFinished())

		_, err = repo.GetByID(ctx, "stuck")
		require.ErrorIs(t, err, repository.ErrGameNotFound)
	})

	t.Run("Final move ends the session", func(t *testing.T) {
		// Given: a board one move from full
		start := &entity.Game{ID: "last", Turn: entity.White, Status: entity.StatusOngoing}
		for y := 0; y < entity.BoardSize; y++ {
			for x := 0; x < entity.BoardSize; x++ {
				start.Board.Set(entity.Position{X: x, Y: y}, entity.White)
			}
		}
		start.Board.Set(entity.Position{X: 1, Y: 0}, entity.Black)
		start.Board.Set(entity.Position{X: 0, Y: 0}, entity.None)
		start.Vacant = start.Board.Vacant()
		start.Black, start.White = 1, 62

		repo := repository.NewMemoryGameRepository()
		uGame := &presetGame{
			GameManager: usecase.NewGameManager(slog.New(slog.NewJSONHandler(io.Discard, nil)), repo),
			repo:        repo,
			start:       start,
		}

		var out strings.Builder
		session := newSession(uGame, "a1\n", &out)

		// When: White fills the corner
		game, err := session.Play(ctx)

		// Then: the board is full and White wins 64-0
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, 64, game.White)
		assert.Contains(t, out.String(), "game over: white wins 64-0\n")
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		// Given: a cancelled context
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		var out strings.Builder
		session := newSession(newManager(), "2 3\n", &out)

		// When: the session runs
		game, err := session.Play(cancelled)

		// Then: the context error is returned before any move
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 2, game.Black)
	})
}
