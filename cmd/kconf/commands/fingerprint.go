package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <kernel-dir>",
		Short: "Print a stable hash of the kernel configuration",
		Long:  "Print a stable 64-bit hash of the resolved option mapping, suitable as a build cache key.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(c.app.Fingerprint(args[0]))
			return nil
		},
	}
}
