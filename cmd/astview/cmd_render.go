package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/astview/compile"
)

func newRenderCmd() *cobra.Command {
	var phaseName string
	var showScript bool
	var showScriptClass bool
	var output string

	cmd := &cobra.Command{
		Use:   "render [tree.json]",
		Short: "Unparse a serialized syntax tree back into source text",
		Long: `Unparse a syntax tree back into readable source text.

The tree is read in the JSON interchange format emitted by a front-end
compiler stopped at a chosen phase. If no file is given, the tree is read
from stdin.

The output is always text: when the producing compiler reported a failure,
the text contains a diagnostic block instead of source.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error

			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			phase, err := compile.ParsePhase(phaseName)
			if err != nil {
				return err
			}

			opts := compile.DefaultOptions()
			opts.ShowScriptFreeForm = showScript
			opts.ShowScriptClass = showScriptClass

			driver := compile.NewDriver(compile.TreeFrontend{}, opts)
			result := driver.Render(source, phase)

			if output != "" {
				return os.WriteFile(output, []byte(result.Text), 0644)
			}
			_, err = io.WriteString(os.Stdout, result.Text)
			return err
		},
	}

	cmd.Flags().StringVarP(&phaseName, "phase", "p", compile.PhaseConversion.String(), "compilation phase the tree was produced at")
	cmd.Flags().BoolVar(&showScript, "script", true, "include top-level script statements")
	cmd.Flags().BoolVar(&showScriptClass, "script-class", true, "include the synthetic script-holder class")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}
