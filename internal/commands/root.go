// Package commands wires the CLI surface: scanning an image, saving a
// plan, searching and exporting the catalog, and serving the HTTP API.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdrscan",
		Short: "Read photographed MDR pricing tables and deduplicate plans",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newSaveCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
