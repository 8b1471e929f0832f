package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wichananm65/pergola-planner/internal/sizespec"
)

func (c *cli) parseSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-size <size>",
		Short: "Parse a plan size string such as \"14x14 ft\"",
		Example: `  planner parse-size "14x14 ft"
  planner parse-size "12 by 16"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := sizespec.Parse(args[0])
			if !ok {
				return fmt.Errorf("unrecognized size %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "width=%g depth=%g area=%g\n", d.Width, d.Depth, d.Area())
			return nil
		},
	}
}
