// Package config provides YAML-based configuration loading, difficulty
// presets and validation for the Invoker minigame.
package config

// InvokerConfig contains all tunable parameters of the Invoker simulation.
// Positions, the hit window and fall speeds share the same units (pixels of
// a virtual playfield ScreenHeight tall).
type InvokerConfig struct {
	Tracks          int      `yaml:"tracks"`
	Keybindings     []string `yaml:"keybindings"` // One key code per track, e.g. "KeyA"
	ScreenHeight    float64  `yaml:"screen_height"`
	CollectionLineY float64  `yaml:"collection_line_y"`
	HitWindow       float64  `yaml:"hit_window"`
	CullMargin      float64  `yaml:"cull_margin"` // Pieces are dropped past ScreenHeight+CullMargin
	Circles         int      `yaml:"circles"`
	CompletionAward int      `yaml:"completion_award"`
	Colors          []string `yaml:"colors"`
	GlitchColor     string   `yaml:"glitch_color"`

	StartPaused        bool `yaml:"start_paused"`
	CollectWhilePaused bool `yaml:"collect_while_paused"`

	Difficulty DifficultyConfig `yaml:"difficulty"`
	Spawn      SpawnConfig      `yaml:"spawn"`
}

// DifficultyConfig defines the bounds and transitions of the difficulty scalar.
type DifficultyConfig struct {
	Min                 float64 `yaml:"min"`
	Max                 float64 `yaml:"max"`
	Initial             float64 `yaml:"initial"`
	DriftPerSecond      float64 `yaml:"drift_per_second"`
	CompletionDelta     float64 `yaml:"completion_delta"`
	OverCollectionBase  float64 `yaml:"over_collection_base"`
	OverCollectionScale float64 `yaml:"over_collection_scale"`
}

// SpawnConfig defines spawn rate and fall speed bounds.
// Rates are pieces per second, speeds are units per second.
type SpawnConfig struct {
	BaseRate      float64 `yaml:"base_rate"`
	MaxRate       float64 `yaml:"max_rate"`
	BaseFallSpeed float64 `yaml:"base_fall_speed"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	JitterMin     float64 `yaml:"jitter_min"`
	JitterMax     float64 `yaml:"jitter_max"`
}
