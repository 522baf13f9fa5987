// Package cmd contains all CLI commands for the homograf tool.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/f3rmion/homograf/internal/config"
	"github.com/f3rmion/homograf/internal/dataset"
	"github.com/f3rmion/homograf/internal/figure"
	"github.com/f3rmion/homograf/internal/logging"
	"github.com/f3rmion/homograf/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// opts holds the options resolved for the running command.
var opts config.Options

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "homograf",
	Short: "Render charts from the Swedish heteronym dataset",
	Long: `homograf reads a table of heteronyms (words with one spelling and
several pronunciations) and renders descriptive charts from it.

Input is a CSV file, or a directory of heteronyms_*.csv files, with the
columns:
  language, word, sense_id      (required)
  pos, meaning, ipa, notes      (optional)

Running 'homograf' without arguments reads ./data and writes PNG figures
to ./figures. Words with a single sense are left out unless
--include-single-sense is given.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: resolveOptions,
	RunE:              runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "options file (default is ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringP("data", "d", "", "dataset CSV file or directory (default \"data\")")
	rootCmd.PersistentFlags().Bool("include-single-sense", false, "also chart words with a single sense")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.Flags().StringP("out", "o", "", "figures directory (default \"figures\")")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("include_single_sense", rootCmd.PersistentFlags().Lookup("include-single-sense"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("out_dir", rootCmd.Flags().Lookup("out"))
}

// resolveOptions loads the options file and applies flag overrides before
// any command runs.
func resolveOptions(cmd *cobra.Command, args []string) error {
	resolved, err := loadOptions(viper.GetViper())
	if err != nil {
		return err
	}
	opts = resolved

	logging.Init(os.Stderr, opts.LogLevel)
	slog.Debug("Resolved options",
		"data", opts.DataPath,
		"out_dir", opts.OutDir,
		"include_single_sense", opts.IncludeSingleSense)

	return nil
}

// loadOptions merges defaults, the options file and explicitly set flags,
// in increasing order of precedence.
func loadOptions(v *viper.Viper) (config.Options, error) {
	resolved := config.Default()

	path := v.GetString("config")
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return resolved, err
		}
		resolved = loaded
	}

	if v.IsSet("data") {
		resolved.DataPath = v.GetString("data")
	}
	if v.IsSet("out_dir") {
		resolved.OutDir = v.GetString("out_dir")
	}
	if v.IsSet("include_single_sense") {
		resolved.IncludeSingleSense = v.GetBool("include_single_sense")
	}
	if v.GetBool("verbose") {
		resolved.LogLevel = "debug"
	}

	if err := resolved.Validate(); err != nil {
		return resolved, fmt.Errorf("invalid options: %w", err)
	}
	return resolved, nil
}

// runGenerate loads the dataset and writes every figure.
func runGenerate(cmd *cobra.Command, args []string) error {
	records, err := dataset.Load(opts.DataPath)
	if err != nil {
		return describeLoadError(err)
	}

	res, err := figure.NewGenerator(opts).Generate(records, opts.OutDir)
	if err != nil {
		return fmt.Errorf("generating figures: %w", err)
	}

	report.Written(cmd.OutOrStdout(), res.Written)
	return nil
}

// describeLoadError adds a hint to loader errors a user can act on.
func describeLoadError(err error) error {
	if errors.Is(err, dataset.ErrFileNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading dataset: %w (set --data to a CSV file or a directory of %s files)", err, dataset.FilePattern)
	}
	return fmt.Errorf("loading dataset: %w", err)
}
