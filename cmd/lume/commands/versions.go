package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List published engine releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Versions(cmd.Context())
		},
	}
}
