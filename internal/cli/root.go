package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "botarena",
		Short: "CLI tool for the bot arena API",
		Long: `botarena is a CLI tool for the bot arena JSON API.

Create a fighter, spend the points earned by winning, and fight the
training bot one round at a time.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LoadPlayer(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: BOTARENA_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Player, "player", cfg.Player, "Player (telegram) id (env: BOTARENA_PLAYER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerFile, "player-file", cfg.PlayerFile, "File remembering the player id (env: BOTARENA_PLAYER_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newFightCmd())
	rootCmd.AddCommand(newAllocateCmd())
	rootCmd.AddCommand(newSpendCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		os.Exit(1)
	}
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
