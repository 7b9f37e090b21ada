package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rapctl",
		Short:        "Room-and-pillar design calculations from YAML design files",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(formulasCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(importCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
