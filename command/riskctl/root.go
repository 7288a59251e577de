package main

import (
	"encoding/json"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bitmark-inc/diabetaku-api/consts"
	"github.com/bitmark-inc/diabetaku-api/risk"
	"github.com/bitmark-inc/diabetaku-api/utils"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "riskctl",
		Short:         "Score diabetes risk from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
				logrus.SetLevel(logrus.WarnLevel)
			}
			dir, _ := cmd.Flags().GetString("i18n-dir")
			defaults := append(risk.Messages(), consts.Messages()...)
			return utils.InitI18NBundle(dir, defaults...)
		},
	}

	root.PersistentFlags().Bool("verbose", false, "Log loading progress")
	root.PersistentFlags().String("i18n-dir", "", "Directory holding en.yaml and id.yaml")

	root.AddCommand(newAssessCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newInspectModelCmd())
	return root
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
