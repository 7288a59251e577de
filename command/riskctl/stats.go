package main

import (
	"github.com/spf13/cobra"

	"github.com/bitmark-inc/diabetaku-api/analysis"
	"github.com/bitmark-inc/diabetaku-api/store"
)

func newStatsCmd() *cobra.Command {
	var (
		datasetFile string
		full        bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics of the reference dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := store.NewCSVSource(datasetFile).Load(cmd.Context())
			if err != nil {
				return err
			}

			report, err := analysis.Analyze(ds)
			if err != nil {
				return err
			}

			if full {
				return printJSON(cmd.OutOrStdout(), report)
			}
			return printJSON(cmd.OutOrStdout(), report.Summary)
		},
	}

	cmd.Flags().StringVar(&datasetFile, "dataset", "", "Reference dataset (csv)")
	cmd.Flags().BoolVar(&full, "full", false, "Include distributions and correlations")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}
