package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/reversi/internal/entity"
)

var ErrMalformedInput = errors.New("malformed input")

type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandPass
	CommandQuit
)

type Command struct {
	Kind     CommandKind
	Position entity.Position
}

// Reader turns input lines into commands. A move is either "x y" (0-indexed column
// and row) or algebraic notation such as "d3".
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(in io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(in)}
}

// Next - reads the next non-blank line. It returns io.EOF when the input is exhausted.
func (that *Reader) Next() (Command, error) {
	for that.scanner.Scan() {
		line := strings.TrimSpace(that.scanner.Text())
		if line == "" {
			continue
		}

		return ParseCommand(line)
	}

	if err := that.scanner.Err(); err != nil {
		return Command{}, fmt.Errorf("failed to read input: %w", err)
	}

	return Command{}, io.EOF
}

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(strings.ReplaceAll(line, ",", " ")))

	switch len(fields) {
	case 1:
		switch fields[0] {
		case "pass", "p":
			return Command{Kind: CommandPass}, nil
		case "quit", "q", "exit":
			return Command{Kind: CommandQuit}, nil
		}

		pos, err := parseAlgebraic(fields[0])
		if err != nil {
			return Command{}, err
		}

		return Command{Kind: CommandMove, Position: pos}, nil
	case 2:
		x, errX := parseCoordinate(fields[0])
		y, errY := parseCoordinate(fields[1])
		if errX != nil || errY != nil {
			return Command{}, fmt.Errorf("%w: %q is not a pair of integers", ErrMalformedInput, line)
		}

		return Command{Kind: CommandMove, Position: entity.Position{X: x, Y: y}}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrMalformedInput, line)
	}
}

// parseAlgebraic reads "<column letter><row number>", rows counted from 1.
// Letters past h and large rows are kept so the engine reports them as out of range.
func parseAlgebraic(token string) (entity.Position, error) {
	if len(token) < 2 || token[0] < 'a' || token[0] > 'z' {
		return entity.Position{}, fmt.Errorf("%w: %q", ErrMalformedInput, token)
	}

	row, err := parseCoordinate(token[1:])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: %q", ErrMalformedInput, token)
	}

	if row > math.MinInt {
		row--
	}

	return entity.Position{X: int(token[0] - 'a'), Y: row}, nil
}

// parseCoordinate reads a decimal integer. Values that overflow int are clamped to
// its bounds, so they still reach the engine as out of range rather than malformed.
func parseCoordinate(token string) (int, error) {
	value, err := strconv.Atoi(token)
	if errors.Is(err, strconv.ErrRange) {
		return value, nil
	}

	return value, err
}
