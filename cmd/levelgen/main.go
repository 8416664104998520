// Package main provides the levelgen binary that generates ring levels and
// writes them as YAML layouts.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "levelgen",
		Short:        "Procedural ring level generator",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "path to configuration file")

	root.AddCommand(generateCmd())
	root.AddCommand(configCmd())
	return root
}
