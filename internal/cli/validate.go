package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/dataset"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var data, jsonPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a dataset",
		Long: `Validate a dataset file against the episode schema.

Every schema violation is listed, not only the first.

Examples:
  ggchart validate --data episodes.yaml
  ggchart validate --data export.json --json-path shows.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(data, jsonPath)
			if err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "✗ Dataset is invalid")
				var verr *dataset.ValidationError
				if errors.As(err, &verr) {
					for _, p := range verr.Problems {
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", p)
					}
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s episodes valid\n", humanize.Comma(int64(len(ds.Episodes))))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  average completion %.1f%%\n", ds.AverageCompletionRate*100)
			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Dataset file (YAML or JSON)")
	cmd.Flags().StringVar(&jsonPath, "json-path", "", "gjson path selecting the dataset inside a JSON file")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
