package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invoker/internal/invoker"
)

const (
	hudHeight  = 2 // Lines used by the HUD above the playfield
	meterWidth = 20
)

// HUD renders the score line and the difficulty meter.
type HUD struct {
	theme Theme
	meter progress.Model
}

// NewHUD creates a HUD with a gradient difficulty meter.
func NewHUD(theme Theme) HUD {
	return HUD{
		theme: theme,
		meter: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(meterWidth),
			progress.WithoutPercentage(),
		),
	}
}

// SetWidth adapts the meter to the terminal width.
func (h *HUD) SetWidth(width int) {
	h.meter.Width = max(8, min(meterWidth, width/4))
}

// View renders the HUD for the state.
func (h HUD) View(st invoker.State, cfg invoker.Config, stats Stats) string {
	sep := h.theme.HUDSeparator.Render(" │ ")
	d := st.Difficulty.Value

	span := cfg.Difficulty.Max - cfg.Difficulty.Min
	fill := 0.0
	if span > 0 {
		fill = (d - cfg.Difficulty.Min) / span
	}

	top := strings.Join([]string{
		h.theme.HUDTitle.Render("INVOKER"),
		h.pair("score", fmt.Sprintf("%d", st.Score)),
		h.pair("circles", fmt.Sprintf("%d", stats.Completions)),
		h.pair("time", fmt.Sprintf("%.0fs", st.Time)),
	}, sep)

	status := h.pair("rate", fmt.Sprintf("%.2f/s", invoker.SpawnRate(d, cfg))) + sep +
		h.pair("speed", fmt.Sprintf("%.0f", invoker.FallSpeed(d, cfg)))
	if stats.OverCollections > 0 {
		status += sep + h.theme.HUDAlert.Render(fmt.Sprintf("over ×%d", stats.OverCollections))
	}

	bottom := lipgloss.JoinHorizontal(lipgloss.Center,
		h.theme.HUDLabel.Render("difficulty "),
		h.meter.ViewAs(fill),
		h.theme.HUDValue.Render(fmt.Sprintf(" %.2f", d)),
		sep,
		status,
	)
	return top + "\n" + bottom
}

func (h HUD) pair(label, value string) string {
	return h.theme.HUDLabel.Render(label+" ") + h.theme.HUDValue.Render(value)
}

// Stats counts notable events over a run.
type Stats struct {
	Captures        int
	Completions     int
	OverCollections int
	Glitches        int
}

// Record adds the events of one transition.
func (s *Stats) Record(events invoker.Events) {
	if _, ok := events.Captured(); ok {
		s.Captures++
	}
	s.Completions += len(events.Completed())
	if events.OverCollection() {
		s.OverCollections++
	}
	if events.Glitch() {
		s.Glitches++
	}
}
