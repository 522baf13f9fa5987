package cmd

import (
	"github.com/f3rmion/homograf/internal/dataset"
	"github.com/f3rmion/homograf/internal/heteronym"
	"github.com/f3rmion/homograf/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print sense and pronunciation counts per word",
	Long: `Print the grouped table the figures are drawn from: one line per
(language, word) with its number of senses, number of distinct IPA
transcriptions and the transcriptions themselves.

Examples:
  homograf stats
  homograf stats --data data/heteronyms_sv.csv --include-single-sense`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	records, err := dataset.Load(opts.DataPath)
	if err != nil {
		return describeLoadError(err)
	}

	groups := heteronym.FilterGroups(heteronym.GroupWords(records), opts.IncludeSingleSense)
	report.Groups(cmd.OutOrStdout(), groups)
	return nil
}
