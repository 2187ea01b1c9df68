// Package commands implements the CLI commands for the kconf tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kconf/internal/app"
)

// CLI represents the command line interface for kconf.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kconf",
		Short:         "Inspect Linux kernel build configurations",
		Long:          "kconf reads the .config of a kernel build directory and answers option and architecture queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newEnabledCmd())
	rootCmd.AddCommand(c.newArchCmd())
	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newFingerprintCmd())
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

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
