package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrOutOfRange      = errors.New("position is out of range")
	ErrAlreadyOccupied = errors.New("cell is already occupied")
	ErrNoFlips         = errors.New("move flips no discs")
	ErrSkipNotAllowed  = errors.New("cannot pass while a legal move exists")
)
