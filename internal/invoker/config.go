package invoker

import (
	"fmt"

	"github.com/vovakirdan/invoker/internal/config"
)

// Config is the validated, typed form of config.InvokerConfig consumed by
// every transition. Build it with NewConfig; a zero Config is not usable.
type Config struct {
	Tracks          int
	Keybindings     []string
	ScreenHeight    float64
	CollectionLineY float64
	HitWindow       float64
	CullMargin      float64
	Circles         int
	CompletionAward int
	Colors          []Color

	GlitchColor Color
	HasGlitch   bool // False when no glitch color is configured

	StartPaused        bool
	CollectWhilePaused bool

	Difficulty config.DifficultyConfig
	Spawn      config.SpawnConfig

	trackByKey map[string]int
}

// NewConfig validates raw configuration and converts it for the simulation.
func NewConfig(raw config.InvokerConfig) (Config, error) {
	if err := raw.Validate(); err != nil {
		return Config{}, fmt.Errorf("invoker: invalid config: %w", err)
	}

	colors := make([]Color, 0, len(raw.Colors))
	for _, name := range raw.Colors {
		c, _ := ParseColor(name) // Validate rejected unknown names
		colors = append(colors, c)
	}

	cfg := Config{
		Tracks:             raw.Tracks,
		Keybindings:        append([]string(nil), raw.Keybindings...),
		ScreenHeight:       raw.ScreenHeight,
		CollectionLineY:    raw.CollectionLineY,
		HitWindow:          raw.HitWindow,
		CullMargin:         raw.CullMargin,
		Circles:            raw.Circles,
		CompletionAward:    raw.CompletionAward,
		Colors:             colors,
		StartPaused:        raw.StartPaused,
		CollectWhilePaused: raw.CollectWhilePaused,
		Difficulty:         raw.Difficulty,
		Spawn:              raw.Spawn,
		trackByKey:         make(map[string]int, len(raw.Keybindings)),
	}

	if raw.GlitchColor != "" {
		cfg.GlitchColor, cfg.HasGlitch = ParseColor(raw.GlitchColor)
	}

	for i, key := range raw.Keybindings {
		cfg.trackByKey[key] = i
	}

	return cfg, nil
}

// DefaultConfig returns the simulation config built from config defaults.
func DefaultConfig() Config {
	cfg, err := NewConfig(config.DefaultInvokerConfig())
	if err != nil {
		panic(fmt.Sprintf("invoker: default config is invalid: %v", err))
	}
	return cfg
}

// TrackForKey resolves a key code through the keybinding table.
func (c Config) TrackForKey(code string) (int, bool) {
	track, ok := c.trackByKey[code]
	return track, ok
}

// KeyForTrack returns the key code bound to a track, or "" if out of range.
func (c Config) KeyForTrack(track int) string {
	if track < 0 || track >= len(c.Keybindings) {
		return ""
	}
	return c.Keybindings[track]
}

// IsGlitch reports whether collecting a piece of this color raises the glitch event.
func (c Config) IsGlitch(color Color) bool {
	return c.HasGlitch && color == c.GlitchColor
}
