package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <kernel-dir> <option>",
		Short: "Print the value of a config option",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := c.app.Value(args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}
