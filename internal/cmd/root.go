package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/reversi/internal"
	"github.com/rocketscienceinc/reversi/internal/config"
)

const defaultConfigPath = "./config.yml"

// Root - builds the reversi command. Running it starts a two-player game on the console.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "reversi",
		Short: "Play Reversi for two players on the console",
		Long: heredoc.Doc(`reversi starts a game of Reversi (Othello) on an 8x8 board
			for two players sharing one terminal. Black moves first.

			Enter a move as a column and a row counted from 0, such as
			"2 3", or in algebraic notation such as "c4". A side with no
			legal move passes automatically; the game ends when the board
			is full or both sides pass in a row. Type "quit" to leave.

			Settings are read from the config file when it exists and
			from REVERSI_* environment variables otherwise.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if cmd.Flag("log-level").Changed {
				if conf.LogLevel, err = cmd.Flags().GetString("log-level"); err != nil {
					return err
				}

				if err = conf.Validate(); err != nil {
					return err
				}
			}

			logger := app.NewLogger(conf, cmd.ErrOrStderr())

			if err = app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	root.Flags().StringP("config", "c", defaultConfigPath, "Path to the YAML config file")
	root.Flags().StringP("log-level", "l", "info", "Log level: debug, info, warn or error")

	return root
}
