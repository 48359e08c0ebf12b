package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/catalog"
)

func newExportCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan catalog as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := initDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.Close()

			entries, err := d.Service.ExportEntries(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}
			return catalog.ExportCSV(out, entries)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write CSV to this file instead of stdout")
	return cmd
}
