// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "configpdf",
	Short: "configpdf — turn markdown price lists into spec-sheet PDFs",
	Long: `configpdf parses a pipe-delimited markdown price list into product
configurations and renders one specification sheet per product.

Usage:
  configpdf generate <input> [flags]
  configpdf templated [flags]
  configpdf template [path]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
