package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/invoker/internal/audio"
	"github.com/vovakirdan/invoker/internal/invoker"
	"github.com/vovakirdan/invoker/internal/platform/tui"
)

var (
	flagTicks    int
	flagDt       float64
	flagAccuracy float64
	flagGreedy   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation with an autoplayer",
	Long: `Run the simulation without a terminal UI. A scripted player presses a
track's key whenever a piece is inside the hit window, missing with
probability 1-accuracy. Unless --greedy is set it skips pieces that would
over-collect.

The same seed and flags always produce the same report, including the
final state hash.

Examples:
  invoker sim
  invoker sim --ticks 36000 --seed 7
  invoker sim --accuracy 0.7 --greedy --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagDt, "dt", 1000.0/60.0, "Milliseconds per tick")
	simCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.9, "Probability the autoplayer presses an in-window piece")
	simCmd.Flags().BoolVar(&flagGreedy, "greedy", false, "Press even when the press over-collects")
}

// simOptions controls a headless run.
type simOptions struct {
	Ticks    int
	DtMs     float64
	Seed     int64
	Accuracy float64
	Greedy   bool
}

// simReport summarizes a headless run.
type simReport struct {
	Ticks      int
	Elapsed    float64
	Score      int
	Difficulty float64
	Stats      tui.Stats
	Spawned    uint64
	Collected  int
	Culled     uint64
	OnField    int
	Chimes     int
	Snapshot   uint64
}

// simulate runs the autoplayer against a fresh state. It never touches a
// terminal or the audio device.
func simulate(cfg invoker.Config, opts simOptions, logger *log.Logger) simReport {
	st := invoker.Resume(invoker.InitialState(cfg, opts.Seed))
	player := invoker.NewAutoplayer(opts.Seed, opts.Accuracy, opts.Greedy)
	cues := &audio.Recorder{}

	var stats tui.Stats
	collected := 0

	for tick := range opts.Ticks {
		st = invoker.Step(st, cfg, opts.DtMs)

		for _, code := range player.Keys(st, cfg) {
			st = invoker.Collect(st, cfg, code)
			if st.Events.Empty() {
				continue
			}
			collected++
			stats.Record(st.Events)
			cues.Play(audio.CuesFor(st.Events))

			if ids := st.Events.Completed(); len(ids) > 0 {
				logger.Debug("circle completed", "tick", tick, "circle", ids[0], "score", st.Score)
			}
		}
	}

	spawned := st.NextPieceID - 1
	return simReport{
		Ticks:      opts.Ticks,
		Elapsed:    st.Time,
		Score:      st.Score,
		Difficulty: st.Difficulty.Value,
		Stats:      stats,
		Spawned:    spawned,
		Collected:  collected,
		Culled:     spawned - uint64(collected) - uint64(len(st.Pieces)),
		OnField:    len(st.Pieces),
		Chimes:     cues.Count(audio.CueChime),
		Snapshot:   st.Snapshot(),
	}
}

var (
	reportTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF79C6"))
	reportLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Width(18)
	reportValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2"))
	reportBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(0, 1)
)

// render formats the report for a terminal.
func (r simReport) render() string {
	rows := [][2]string{
		{"ticks", fmt.Sprintf("%d (%.1fs)", r.Ticks, r.Elapsed)},
		{"score", fmt.Sprintf("%d", r.Score)},
		{"completions", fmt.Sprintf("%d", r.Stats.Completions)},
		{"captures", fmt.Sprintf("%d", r.Stats.Captures)},
		{"over-collections", fmt.Sprintf("%d", r.Stats.OverCollections)},
		{"glitches", fmt.Sprintf("%d", r.Stats.Glitches)},
		{"spawned", fmt.Sprintf("%d", r.Spawned)},
		{"collected", fmt.Sprintf("%d", r.Collected)},
		{"culled", fmt.Sprintf("%d", r.Culled)},
		{"on field", fmt.Sprintf("%d", r.OnField)},
		{"difficulty", fmt.Sprintf("%.3f", r.Difficulty)},
		{"snapshot", fmt.Sprintf("%016x", r.Snapshot)},
	}

	var b strings.Builder
	b.WriteString(reportTitle.Render("INVOKER SIMULATION"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(reportLabel.Render(row[0]))
		b.WriteString(reportValue.Render(row[1]))
	}
	return reportBox.Render(b.String())
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	if flagTicks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", flagTicks)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := simOptions{
		Ticks:    flagTicks,
		DtMs:     flagDt,
		Seed:     seed,
		Accuracy: flagAccuracy,
		Greedy:   flagGreedy,
	}
	logger.Info("simulating", "seed", seed, "ticks", opts.Ticks, "dt", opts.DtMs)

	report := simulate(cfg, opts, logger)
	return printReport(os.Stdout, report)
}

func printReport(w io.Writer, r simReport) error {
	_, err := fmt.Fprintln(w, r.render())
	return err
}
