package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newEnsureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure",
		Short: "Install missing modules, bootstrapping pip if necessary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Ensure(cmd.Context())
		},
	}
}
