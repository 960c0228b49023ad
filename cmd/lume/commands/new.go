package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new Lume project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("engine-version")
			return c.app.NewProject(cmd.Context(), args[0], version)
		},
	}
	cmd.Flags().StringP("engine-version", "e", "", "Pin a specific engine version (defaults to the latest release)")
	return cmd
}
