package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newArchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arch <kernel-dir>",
		Short: "Infer the target CPU architecture of a configured kernel tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arch, err := c.app.Arch(args[0])
			if err != nil {
				return err
			}
			cmd.Println(arch)
			return nil
		},
	}
}
