package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/scan"
)

func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <image>",
		Short: "OCR a pricing-table photo and show the reconstructed plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := initDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.Close()

			result, err := scanImage(cmd, d, args[0])
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}
}

// scanImage runs the shared check-read-scan sequence. The engine check runs
// first so a broken Tesseract install fails before any extraction starts.
func scanImage(cmd *cobra.Command, d *deps, path string) (*scan.Result, error) {
	if err := d.Engine.Check(); err != nil {
		return nil, fmt.Errorf("%w; install tesseract-ocr or point TESSDATA_PREFIX at its trained data", err)
	}
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return d.Service.ScanImage(cmd.Context(), image)
}

func printResult(cmd *cobra.Command, result *scan.Result) {
	out := cmd.OutOrStdout()

	if result.SurchargeRate != nil {
		fmt.Fprintf(out, "Anticipation surcharge: %s%%\n", result.SurchargeRate.String())
	}

	if result.Table.Empty() {
		fmt.Fprintln(out, "No valid table found in the image. Adjust the photo and try again.")
		return
	}

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "CHANNEL")
	for _, b := range result.Table.Brands {
		fmt.Fprintf(w, "\t%s", b)
	}
	fmt.Fprintln(w, "\tTERM")
	for _, row := range result.Table.Rows {
		fmt.Fprint(w, row.ChannelText)
		for _, rate := range row.Rates {
			if rate == nil {
				fmt.Fprint(w, "\t-")
			} else {
				fmt.Fprintf(w, "\t%s", rate.String())
			}
		}
		fmt.Fprintf(w, "\t%s\n", row.SettlementTerm)
	}
	w.Flush()

	fmt.Fprintf(out, "\nNormalized records: %d\n", len(result.Evaluation.Records))
	fmt.Fprintf(out, "Fingerprint: %s\n", result.Evaluation.Fingerprint)
	if len(result.Evaluation.Matches) > 0 {
		fmt.Fprintf(out, "Matches existing plans: %v\n", result.Evaluation.Matches)
	} else {
		fmt.Fprintln(out, "No existing plan matches; save it with 'mdrscan save'.")
	}
}
