// Package commands implements the CLI commands for the pydep provisioning tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pydep/internal/app"
	"go.trai.ch/pydep/internal/build"
)

// CLI represents the command line interface for pydep.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pydep",
		Short:         "Ensures Python modules are installed on this host",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		// Invoking pydep without a subcommand runs the full sequence,
		// matching the zero-argument provisioning invocation.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Ensure(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", app.DefaultConfigPath, "Path to configuration file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		a.SetConfigPath(configPath)
		return nil
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newEnsureCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
