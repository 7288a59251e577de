package main

import (
	"github.com/spf13/cobra"

	"github.com/bitmark-inc/diabetaku-api/classifier"
)

func newInspectModelCmd() *cobra.Command {
	var modelFile string

	cmd := &cobra.Command{
		Use:   "inspect-model",
		Short: "Show the name, kind and capability of a classifier artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := classifier.LoadFile(modelFile)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"name":       m.Name(),
				"kind":       m.Kind(),
				"capability": m.Capability(),
			})
		},
	}

	cmd.Flags().StringVar(&modelFile, "model", "", "Classifier artifact (json)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}
