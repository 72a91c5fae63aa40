package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the whole state of one Reversi game. Vacant always equals the empty cells of Board.
type Game struct {
	ID     string      `json:"id"`
	Board  Board       `json:"board"`
	Turn   Color       `json:"turn"`
	Vacant PositionSet `json:"vacant"`
	Black  int         `json:"black"`
	White  int         `json:"white"`
	Passes int         `json:"passes"`
	Status string      `json:"status"`
	Winner Color       `json:"winner"`
}

// NewGame - creates a game in the standard opening with Black to move.
func NewGame(id string) *Game {
	game := &Game{
		ID:     id,
		Turn:   Black,
		Status: StatusOngoing,
	}

	mid := BoardSize / 2
	game.Board.Set(Position{X: mid - 1, Y: mid - 1}, White)
	game.Board.Set(Position{X: mid, Y: mid}, White)
	game.Board.Set(Position{X: mid, Y: mid - 1}, Black)
	game.Board.Set(Position{X: mid - 1, Y: mid}, Black)

	game.Vacant = game.Board.Vacant()
	game.Black = 2
	game.White = 2

	return game
}

func (that *Game) Count(c Color) int {
	switch c {
	case Black:
		return that.Black
	case White:
		return that.White
	default:
		return that.Vacant.Len()
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFull() bool {
	return that.Vacant.Len() == 0
}

// IsDraw reports a finished game with equal disc counts.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == None
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// DetermineWinner - compares disc counts, None means a draw.
func (that *Game) DetermineWinner() Color {
	switch {
	case that.Black > that.White:
		return Black
	case that.White > that.Black:
		return White
	default:
		return None
	}
}

// Finish moves the game into its terminal state.
func (that *Game) Finish() {
	that.Status = StatusFinished
	that.Winner = that.DetermineWinner()
}

// Clone returns an independent copy of the game.
func (that *Game) Clone() *Game {
	clone := *that
	return &clone
}
