package cli

import (
	"github.com/spf13/cobra"
)

func newFightCmd() *cobra.Command {
	var hit, defend string

	cmd := &cobra.Command{
		Use:   "fight",
		Short: "Fight one round against the training bot",
		Long:  "Fight one round against the training bot. Body parts: head, chest, stomach, legs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			result, err := client.Fight(cmd.Context(), id, hit, defend)
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&hit, "hit", "", "Body part to strike (required)")
	cmd.Flags().StringVar(&defend, "defend", "", "Body part to guard (required)")
	_ = cmd.MarkFlagRequired("hit")
	_ = cmd.MarkFlagRequired("defend")

	return cmd
}
