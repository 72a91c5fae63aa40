package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/reversi/internal/entity"
)

const hintMark = "*"

type Options struct {
	BlackMark string
	WhiteMark string
	Hints     bool
}

type Renderer struct {
	out     io.Writer
	options Options
}

func NewRenderer(out io.Writer, options Options) *Renderer {
	if options.BlackMark == "" {
		options.BlackMark = "b"
	}

	if options.WhiteMark == "" {
		options.WhiteMark = "w"
	}

	return &Renderer{out: out, options: options}
}

// Render - writes the board, disc counts, the side to move and, once finished, the result.
// Legal moves are marked when hints are enabled.
func (that *Renderer) Render(game *entity.Game, legal []entity.Position) error {
	var hints entity.PositionSet
	if that.options.Hints {
		for _, pos := range legal {
			hints.Add(pos)
		}
	}

	var sb strings.Builder

	sb.WriteString("  ")
	for x := 0; x < entity.BoardSize; x++ {
		fmt.Fprintf(&sb, "  %d ", x)
	}
	sb.WriteString("\n")

	rule := "  " + strings.Repeat("-", 4*entity.BoardSize+1) + "\n"
	for y := 0; y < entity.BoardSize; y++ {
		sb.WriteString(rule)
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < entity.BoardSize; x++ {
			pos := entity.Position{X: x, Y: y}
			fmt.Fprintf(&sb, "| %s ", that.cell(game.Board.At(pos), hints.Has(pos)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)

	fmt.Fprintf(&sb, "%s: %d  %s: %d\n", entity.Black, game.Black, entity.White, game.White)

	if game.IsFinished() {
		if game.IsDraw() {
			fmt.Fprintf(&sb, "game over: draw %d-%d\n", game.Black, game.White)
		} else {
			fmt.Fprintf(&sb, "game over: %s wins %d-%d\n", game.Winner, game.Count(game.Winner), game.Count(game.Winner.Opposite()))
		}
	} else {
		fmt.Fprintf(&sb, "turn: %s\n", game.Turn)
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *Renderer) cell(color entity.Color, hint bool) string {
	switch color {
	case entity.Black:
		return that.options.BlackMark
	case entity.White:
		return that.options.WhiteMark
	}

	if hint {
		return hintMark
	}

	return " "
}
