package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [-- generator args...]",
		Short: "Generate the project with its pinned engine version",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			release, _ := cmd.Flags().GetBool("release")
			return c.app.Build(cmd.Context(), release, args)
		},
	}
	cmd.Flags().BoolP("release", "r", false, "Build the generator with release optimizations")
	return cmd
}
