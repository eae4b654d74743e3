// invoker is a terminal rhythm minigame: colored pieces fall down tracks and
// are collected at a line to fill the quadrants of a ledger of circles.
//
// Usage:
//
//	invoker play             - Play in this terminal
//	invoker serve            - Start SSH server for remote sessions
//	invoker sim              - Run a headless autoplayed simulation
//	invoker config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible runs
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log-level <level>    - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/invoker/internal/config"
	"github.com/vovakirdan/invoker/internal/invoker"
	"github.com/vovakirdan/invoker/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invoker",
	Short: "Invoker - collect falling pieces to fill the circles",
	Long: `Invoker is a terminal rhythm minigame.

Pieces of four colors fall down parallel tracks. Press a track's key while a
piece crosses the collection line to collect it. Each color fills its own
quadrant of the first circle that still has it open; completing a circle
scores and raises the difficulty. Collecting a color no circle has room for
lowers the difficulty.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote sessions
  sim      - Headless simulation with an autoplayer
  config   - Print the effective configuration

Examples:
  invoker play
  invoker play --difficulty hard --sound
  invoker serve --ssh :2222
  invoker sim --ticks 36000 --seed 7
  invoker config --resolved`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level, "invoker"), nil
}

// loadRawConfig loads the configuration and applies the difficulty preset.
func loadRawConfig(logger *log.Logger) (config.InvokerConfig, error) {
	raw, err := config.Load(flagConfig)
	if err != nil {
		return config.InvokerConfig{}, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			logger.Warn("unknown difficulty preset, keeping config", "preset", flagDifficulty)
		} else {
			config.ApplyPreset(&raw, preset)
		}
	}
	return raw, nil
}

// loadGameConfig returns the validated simulation config.
func loadGameConfig(logger *log.Logger) (invoker.Config, error) {
	raw, err := loadRawConfig(logger)
	if err != nil {
		return invoker.Config{}, err
	}
	return invoker.NewConfig(raw)
}
