package entity

import (
	"fmt"
	"math/bits"
)

const BoardSize = 8

type Color uint8

const (
	None Color = iota
	Black
	White
)

// Opposite - returns the other player's color. None stays None.
func (c Color) Opposite() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Position is a board coordinate, X is the column and Y is the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// PositionSet is a set of in-bounds positions, one bit per cell in row-major order.
type PositionSet uint64

func (s PositionSet) Has(p Position) bool {
	if !p.InBounds() {
		return false
	}

	return s&bit(p) != 0
}

func (s *PositionSet) Add(p Position) {
	if p.InBounds() {
		*s |= bit(p)
	}
}

func (s *PositionSet) Remove(p Position) {
	if p.InBounds() {
		*s &^= bit(p)
	}
}

func (s PositionSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Positions - returns the members in row-major order.
func (s PositionSet) Positions() []Position {
	positions := make([]Position, 0, s.Len())

	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		idx := bits.TrailingZeros64(rest)
		positions = append(positions, Position{X: idx % BoardSize, Y: idx / BoardSize})
	}

	return positions
}

func bit(p Position) PositionSet {
	return PositionSet(1) << (p.Y*BoardSize + p.X)
}

// Board is indexed as [row][col]; the zero Color marks an empty cell.
type Board [BoardSize][BoardSize]Color

func (that *Board) At(p Position) Color {
	return that[p.Y][p.X]
}

func (that *Board) Set(p Position, c Color) {
	that[p.Y][p.X] = c
}

func (that *Board) Count(c Color) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == c {
				count++
			}
		}
	}

	return count
}

// Vacant - builds the set of empty cells.
func (that *Board) Vacant() PositionSet {
	var set PositionSet
	for y, row := range that {
		for x, cell := range row {
			if cell == None {
				set.Add(Position{X: x, Y: y})
			}
		}
	}

	return set
}
