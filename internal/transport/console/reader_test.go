package console

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{name: "Integer pair", line: "2 3", want: Command{Kind: CommandMove, Position: entity.Position{X: 2, Y: 3}}},
		{name: "Comma separated pair", line: "4,5", want: Command{Kind: CommandMove, Position: entity.Position{X: 4, Y: 5}}},
		{name: "Out of range pair is kept", line: "9 -1", want: Command{Kind: CommandMove, Position: entity.Position{X: 9, Y: -1}}},
		{name: "Algebraic", line: "d3", want: Command{Kind: CommandMove, Position: entity.Position{X: 3, Y: 2}}},
		{name: "Algebraic upper case", line: "H8", want: Command{Kind: CommandMove, Position: entity.Position{X: 7, Y: 7}}},
		{name: "Algebraic off board", line: "z9", want: Command{Kind: CommandMove, Position: entity.Position{X: 25, Y: 8}}},
		{name: "Overflowing pair is clamped", line: "99999999999999999999 0", want: Command{Kind: CommandMove, Position: entity.Position{X: math.MaxInt, Y: 0}}},
		{name: "Negative overflow is clamped", line: "0 -99999999999999999999", want: Command{Kind: CommandMove, Position: entity.Position{X: 0, Y: math.MinInt}}},
		{name: "Algebraic overflowing row", line: "a99999999999999999999", want: Command{Kind: CommandMove, Position: entity.Position{X: 0, Y: math.MaxInt - 1}}},
		{name: "Pass", line: "pass", want: Command{Kind: CommandPass}},
		{name: "Quit", line: "q", want: Command{Kind: CommandQuit}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := ParseCommand(tc.line)

			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd)
		})
	}

	malformed := []string{"hello world", "1", "3 x", "1 2 3", "?5", "d"}
	for _, line := range malformed {
		t.Run("Malformed "+line, func(t *testing.T) {
			_, err := ParseCommand(line)

			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestReader_Next(t *testing.T) {
	// Given: input with blank lines between commands
	reader := NewReader(strings.NewReader("\n  2 3 \n\nquit\n"))

	// When: commands are read until the end
	first, err := reader.Next()
	require.NoError(t, err)

	second, err := reader.Next()
	require.NoError(t, err)

	_, err = reader.Next()

	// Then: blank lines are skipped and EOF is reported last
	assert.Equal(t, Command{Kind: CommandMove, Position: entity.Position{X: 2, Y: 3}}, first)
	assert.Equal(t, CommandQuit, second.Kind)
	require.ErrorIs(t, err, io.EOF)
}
