package cmd

import (
	"fmt"
	"log/slog"

	"github.com/f3rmion/homograf/internal/dataset"
	"github.com/f3rmion/homograf/internal/heteronym"
	"github.com/f3rmion/homograf/internal/report"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset without rendering anything",
	Long: `Load the dataset and report how many rows, words and heteronyms it
holds. Exits non-zero when a file is missing, malformed or lacks a
required field.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	records, err := dataset.Load(opts.DataPath)
	if err != nil {
		return describeLoadError(err)
	}

	for _, r := range heteronym.DuplicateSenses(records) {
		slog.Warn("Duplicate sense_id, counted once",
			"language", r.Language,
			"word", r.Word,
			"sense_id", r.SenseID,
			"at", fmt.Sprintf("%s:%d", r.SourceFile, r.Line))
	}

	report.Summary(cmd.OutOrStdout(), len(records), heteronym.GroupWords(records))
	return nil
}
