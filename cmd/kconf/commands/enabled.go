package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) newEnabledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enabled <kernel-dir> <option>",
		Short: "Report whether a config option is built in (set to \"y\")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(strconv.FormatBool(c.app.Enabled(args[0], args[1])))
			return nil
		},
	}
}
