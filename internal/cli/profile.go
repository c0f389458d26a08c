package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile management commands",
	}

	cmd.AddCommand(newProfileCreateCmd())
	cmd.AddCommand(newProfileGetCmd())

	return cmd
}

// registerStats adds the four attribute flags shared by create, allocate and spend
func registerStats(cmd *cobra.Command, s *Stats) {
	cmd.Flags().IntVar(&s.HP, "hp", 0, "Points for HP")
	cmd.Flags().IntVar(&s.Power, "power", 0, "Points for power")
	cmd.Flags().IntVar(&s.Agility, "agility", 0, "Points for agility")
	cmd.Flags().IntVar(&s.Protection, "protection", 0, "Points for protection")
}

func newProfileCreateCmd() *cobra.Command {
	var nickname, race string
	var stats Stats

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a fighter profile",
		Long:  "Create a fighter profile, distributing exactly 5 starting points across hp, power, agility and protection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			result, err := client.CreateProfile(cmd.Context(), id, nickname, race, stats)
			if err != nil {
				return err
			}

			if err := cfg.SavePlayer(result.Profile.ID); err != nil {
				return fmt.Errorf("failed to save player id: %w", err)
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&nickname, "nickname", "", "Fighter nickname (required)")
	cmd.Flags().StringVar(&race, "race", "", "Race: human, elf, dwarf, orc (required)")
	registerStats(cmd, &stats)
	_ = cmd.MarkFlagRequired("nickname")
	_ = cmd.MarkFlagRequired("race")

	return cmd
}

func newProfileGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a profile (defaults to the current player)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := cfg.Player
			if len(args) == 1 {
				id = args[0]
			}
			if id == "" {
				return fmt.Errorf("no player id: pass an id, --player or set BOTARENA_PLAYER")
			}

			result, err := client.LookupProfile(cmd.Context(), id)
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newAllocateCmd() *cobra.Command {
	var stats Stats

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Spend every unspent point at once",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			result, err := client.Allocate(cmd.Context(), id, stats)
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	registerStats(cmd, &stats)
	return cmd
}

func newSpendCmd() *cobra.Command {
	var stats Stats

	cmd := &cobra.Command{
		Use:   "spend",
		Short: "Spend some of the unspent points",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			result, err := client.Spend(cmd.Context(), id, stats)
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	registerStats(cmd, &stats)
	return cmd
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every profile (server must enable reset)",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Reset(cmd.Context())
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
