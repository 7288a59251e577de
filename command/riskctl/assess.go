package main

import (
	"github.com/spf13/cobra"

	"github.com/bitmark-inc/diabetaku-api/schema"
	"github.com/bitmark-inc/diabetaku-api/score"
	"github.com/bitmark-inc/diabetaku-api/store"
	"github.com/bitmark-inc/diabetaku-api/utils"
)

func newAssessCmd() *cobra.Command {
	var (
		modelFile, datasetFile, lang string
		f                            schema.FeatureVector
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess the risk of one set of health inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := score.Bootstrap(cmd.Context(), store.NewCSVSource(datasetFile), score.FileModel(modelFile, ""))
			if err != nil {
				return err
			}

			outcome, err := engine.Assess(f, utils.NewLocalizer(lang))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), outcome)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&modelFile, "model", "", "Classifier artifact (json)")
	flags.StringVar(&datasetFile, "dataset", "", "Reference dataset (csv)")
	flags.StringVar(&lang, "lang", "en", "Language of the explanation")

	flags.IntVar(&f.Gender, "gender", 0, "0 female, 1 male")
	flags.IntVar(&f.Age, "age", 0, "Age in years (1-100)")
	flags.IntVar(&f.Hypertension, "hypertension", 0, "1 with a history of hypertension")
	flags.IntVar(&f.HeartDisease, "heart-disease", 0, "1 with a history of heart disease")
	flags.IntVar(&f.SmokingHistory, "smoking-history", 0, "-1 no info, 0 never, 1 former, 2 current, 3 not current, 4 ever")
	flags.Float64Var(&f.BMI, "bmi", 0, "Body mass index (10-50)")
	flags.Float64Var(&f.HbA1cLevel, "hba1c", 0, "HbA1c level in % (3-15)")
	flags.IntVar(&f.BloodGlucoseLevel, "glucose", 0, "Blood glucose in mg/dL (50-300)")

	for _, name := range []string{
		"model", "dataset",
		"gender", "age", "hypertension", "heart-disease",
		"smoking-history", "bmi", "hba1c", "glucose",
	} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
