package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDeliverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deliver",
		Short: "Replace compiled placeholders with pre-built artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			return c.app.Deliver(cmd.Context(), configPath)
		},
	}
}
