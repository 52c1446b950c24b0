package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "astview",
		Short: "Inspect what a compiler sees, phase by phase",
	}

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newPhasesCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
