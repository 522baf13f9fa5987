package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/homograf/internal/config"
	"github.com/f3rmion/homograf/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default options file",
	Long: `Write the built-in options to ` + config.DefaultFile + ` (or the path given
with --config) so they can be edited:

  data                  dataset CSV file or directory
  out_dir               figures directory
  include_single_sense  also chart words with a single sense
  top_words             bars per language panel, 0 = all
  max_cards             words on the card figure
  dpi                   resolution of the figures
  log_level             debug, info, warn or error`,
	Args: cobra.NoArgs,
	// The existing file may be the broken one being replaced, so it is not
	// loaded first.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(os.Stderr, "info")
		return nil
	},
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing options file")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := viper.GetString("config")
	if path == "" {
		path = config.DefaultFile
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("options file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
