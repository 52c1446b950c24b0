package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/astview/compile"
)

func newPhasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "List the compilation phases a tree can be inspected at",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range compile.Phases() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", int(p), p)
			}
			return nil
		},
	}
}
