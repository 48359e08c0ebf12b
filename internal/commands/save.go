package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSaveCommand() *cobra.Command {
	var planName string

	cmd := &cobra.Command{
		Use:   "save <image>",
		Short: "Scan a pricing-table photo and save it as a new plan",
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
			if result.Table.Empty() {
				return fmt.Errorf("no valid table found in the image; nothing to save")
			}
			if len(result.Evaluation.Matches) > 0 {
				return fmt.Errorf("plan already exists in the catalog as %v; nothing to save", result.Evaluation.Matches)
			}

			fp, err := d.Service.SavePlan(cmd.Context(), result.Evaluation.Records, planName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved plan %q (%d records, fingerprint %s)\n",
				planName, len(result.Evaluation.Records), fp)
			return nil
		},
	}

	cmd.Flags().StringVar(&planName, "plan", "", "name for the new plan (e.g. PADRAO_2_89_DPLUS30)")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}
