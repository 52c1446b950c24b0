package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/astview/compile"
	"github.com/dhamidi/astview/ui"
)

func newLSPCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity := 0
			if debug {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)

			driver := compile.NewDriver(compile.TreeFrontend{}, compile.DefaultOptions())
			server := ui.NewLSPServer(driver, "0.1.0")
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging")

	return cmd
}
