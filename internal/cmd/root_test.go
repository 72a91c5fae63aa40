package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/reversi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	t.Run("Runs a game from the given streams", func(t *testing.T) {
		// Given: the root command wired to in-memory streams
		var out, logs strings.Builder
		root := Root()
		root.SetIn(strings.NewReader("2 3\nquit\n"))
		root.SetOut(&out)
		root.SetErr(&logs)
		root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--log-level", "debug"})

		// When: it is executed
		err := root.Execute()

		// Then: the game is rendered and debug logs are written to the error stream
		require.NoError(t, err)
		assert.Contains(t, out.String(), "black: 4  white: 1\n")
		assert.Contains(t, logs.String(), `"msg":"disc placed"`)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		// Given: a log level flag with an unsupported value
		var out strings.Builder
		root := Root()
		root.SetIn(strings.NewReader("2 3\n"))
		root.SetOut(&out)
		root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--log-level", "loud"})

		// When: it is executed
		err := root.Execute()

		// Then: the config error is returned before a game starts
		require.ErrorIs(t, err, config.ErrUnknownLogLevel)
		assert.Empty(t, out.String())
	})

	t.Run("Rejects positional arguments", func(t *testing.T) {
		root := Root()
		root.SetArgs([]string{"extra"})

		require.Error(t, root.Execute())
	})
}
