package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kconf/internal/app"
)

func (c *CLI) newReportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report <kernel-dir>",
		Short: "Print a full summary of the kernel configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.WriteReport(cmd.OutOrStdout(), args[0], app.Format(format))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(app.FormatYAML), "Output format (yaml or json)")

	return cmd
}
