package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/internal/reversi"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager loads a game, applies one engine operation and writes the result back.
// Finished games are removed from the repository.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	newGame := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", newGame.ID)

	return newGame, nil
}

func (that *GameManager) LegalMoves(ctx context.Context, id string) ([]entity.Position, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return reversi.LegalMoves(game), nil
}

// Place - plays a disc for the side to move. A rejected move returns the unchanged
// game together with the rejection. Reaching the end returns the final game and ErrGameFinished.
func (that *GameManager) Place(ctx context.Context, id string, pos entity.Position) (*entity.Game, error) {
	log := that.logger.With("method", "Place", "game_id", id)

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mover := game.Turn

	flips, err := reversi.Place(game, pos)
	if err != nil {
		log.Debug("move rejected", "position", pos.String(), "error", err)

		return game, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("disc placed",
		"color", mover.String(),
		"position", pos.String(),
		"flipped", len(flips),
		"black", game.Black,
		"white", game.White,
	)

	return that.saveOrFinish(ctx, game)
}

// SkipTurn - passes for the side to move when it has no legal move.
func (that *GameManager) SkipTurn(ctx context.Context, id string) (*entity.Game, error) {
	log := that.logger.With("method", "SkipTurn", "game_id", id)

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mover := game.Turn

	if err = reversi.SkipTurn(game); err != nil {
		return game, fmt.Errorf("failed skip turn: %w", err)
	}

	log.Info("turn skipped", "color", mover.String(), "passes", game.Passes)

	return that.saveOrFinish(ctx, game)
}

func (that *GameManager) saveOrFinish(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	if game.IsFinished() {
		that.cleanupGame(ctx, game)

		return game, apperror.ErrGameFinished
	}

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "game_id", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	log.Info("game finished",
		"winner", game.Winner.String(),
		"draw", game.IsDraw(),
		"black", game.Black,
		"white", game.White,
	)
}

// IsRejection reports whether err is one of the recoverable move rejections.
func IsRejection(err error) bool {
	return errors.Is(err, apperror.ErrOutOfRange) ||
		errors.Is(err, apperror.ErrAlreadyOccupied) ||
		errors.Is(err, apperror.ErrNoFlips) ||
		errors.Is(err, apperror.ErrSkipNotAllowed)
}
