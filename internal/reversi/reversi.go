package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

// passLimit consecutive passes end the game.
const passLimit = 2

var directions = []entity.Position{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// LegalMoves - returns every vacant position where the player to move would flip at least one disc.
func LegalMoves(gameInstance *entity.Game) []entity.Position {
	if gameInstance.ConfirmOngoingState() != nil {
		return nil
	}

	var moves []entity.Position
	for _, pos := range gameInstance.Vacant.Positions() {
		if hasFlips(&gameInstance.Board, pos, gameInstance.Turn) {
			moves = append(moves, pos)
		}
	}

	return moves
}

// Place - puts a disc of the player to move at pos and flips the bounded runs.
// It returns the flipped positions. A rejected move leaves the game untouched.
func Place(gameInstance *entity.Game, pos entity.Position) ([]entity.Position, error) {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	flips, err := validateMove(gameInstance, pos)
	if err != nil {
		return nil, fmt.Errorf("invalid move: %w", err)
	}

	mover := gameInstance.Turn

	gameInstance.Board.Set(pos, mover)
	gameInstance.Vacant.Remove(pos)
	for _, flip := range flips {
		gameInstance.Board.Set(flip, mover)
	}

	addDiscs(gameInstance, mover, 1+len(flips))
	addDiscs(gameInstance, mover.Opposite(), -len(flips))

	gameInstance.Passes = 0
	gameInstance.Turn = mover.Opposite()

	if gameInstance.IsFull() {
		gameInstance.Finish()
	}

	return flips, nil
}

// SkipTurn - passes the turn when the player to move has no legal move.
func SkipTurn(gameInstance *entity.Game) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if len(LegalMoves(gameInstance)) > 0 {
		return apperror.ErrSkipNotAllowed
	}

	gameInstance.Turn = gameInstance.Turn.Opposite()
	gameInstance.Passes++

	if gameInstance.Passes >= passLimit {
		gameInstance.Finish()
	}

	return nil
}

// Flips - returns the discs that a disc of the given color placed at pos would flip.
func Flips(board *entity.Board, pos entity.Position, mover entity.Color) []entity.Position {
	var flips []entity.Position
	for _, dir := range directions {
		flips = append(flips, scan(board, pos, dir, mover)...)
	}

	return flips
}

// validateMove - checks if the move is valid and returns its flips.
func validateMove(gameInstance *entity.Game, pos entity.Position) ([]entity.Position, error) {
	if !pos.InBounds() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	if !gameInstance.Vacant.Has(pos) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrAlreadyOccupied, pos)
	}

	flips := Flips(&gameInstance.Board, pos, gameInstance.Turn)
	if len(flips) == 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNoFlips, pos)
	}

	return flips, nil
}

// scan walks from origin along dir and returns the opponent run closed by a disc of mover.
func scan(board *entity.Board, origin, dir entity.Position, mover entity.Color) []entity.Position {
	opponent := mover.Opposite()

	var run []entity.Position
	for pos := step(origin, dir); pos.InBounds(); pos = step(pos, dir) {
		switch board.At(pos) {
		case opponent:
			run = append(run, pos)
		case mover:
			return run
		default:
			return nil
		}
	}

	return nil
}

func hasFlips(board *entity.Board, pos entity.Position, mover entity.Color) bool {
	for _, dir := range directions {
		if len(scan(board, pos, dir, mover)) > 0 {
			return true
		}
	}

	return false
}

func step(pos, dir entity.Position) entity.Position {
	return entity.Position{X: pos.X + dir.X, Y: pos.Y + dir.Y}
}

func addDiscs(gameInstance *entity.Game, color entity.Color, delta int) {
	switch color {
	case entity.Black:
		gameInstance.Black += delta
	case entity.White:
		gameInstance.White += delta
	}
}
