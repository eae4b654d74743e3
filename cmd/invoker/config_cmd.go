package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invoker/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML.

Without --resolved the embedded defaults are printed, which is a good
starting point for a custom config file. With --resolved the output is the
configuration the game would actually run with: the user config or --config
file merged over the defaults, with --difficulty applied, and validated.

Examples:
  invoker config > ~/.invoker/configs/invoker.yaml
  invoker config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the merged and validated configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := config.DefaultInvokerConfig()

	if flagResolved {
		logger, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}
		if cfg, err = loadRawConfig(logger); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Print(string(out))
	return err
}
