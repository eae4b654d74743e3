package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invoker/internal/audio"
	"github.com/vovakirdan/invoker/internal/core"
	"github.com/vovakirdan/invoker/internal/logging"
	"github.com/vovakirdan/invoker/internal/platform/tui"
)

var (
	flagSound   bool
	flagVolume  float64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a session in the current terminal. The run starts paused.

Controls:
  A S D F G  - Collect on tracks 1-5 (configurable; P, R and Q are reserved)
  Esc/P      - Pause / resume
  Enter      - End the run (while paused)
  R          - New run (after the run ended)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at the lowest difficulty, wider hit window
  normal - Start at 35% difficulty
  hard   - Start at 70% difficulty, narrower hit window
  fixed  - Difficulty never moves from the config's initial level

Logs are written to ~/.invoker/invoker.log while playing.

Examples:
  invoker play
  invoker play --difficulty easy
  invoker play --sound --volume 0.5
  invoker play --config ./my-invoker.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0-1)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.invoker/invoker.log)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
		Sound:   flagSound,
	}.ResolveSeed()

	var sink audio.Sink = audio.NopSink{}
	if rt.Sound {
		player := audio.NewPlayer(flagVolume)
		if initErr := player.Init(); initErr != nil {
			logger.Warn("sound disabled", "error", initErr)
		} else {
			defer player.Close()
			sink = player
		}
	}

	logger.Info("session started", "seed", rt.Seed, "fps", rt.FPS, "size", fmt.Sprintf("%dx%d", width, height))

	return tui.Run(cfg, rt, tui.WithSink(sink), tui.WithLogger(logger))
}
