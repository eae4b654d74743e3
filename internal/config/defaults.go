package config

import (
	_ "embed"
)

//go:embed defaults/invoker.yaml
var defaultInvokerYAML []byte

// DefaultInvokerConfig returns the default Invoker configuration.
func DefaultInvokerConfig() InvokerConfig {
	return InvokerConfig{
		Tracks:             5,
		Keybindings:        []string{"KeyA", "KeyS", "KeyD", "KeyF", "KeyG"},
		ScreenHeight:       720,
		CollectionLineY:    640,
		HitWindow:          28,
		CullMargin:         50,
		Circles:            3,
		CompletionAward:    10,
		Colors:             []string{"red", "green", "yellow", "blue"},
		GlitchColor:        "blue",
		StartPaused:        true,
		CollectWhilePaused: false,
		Difficulty: DifficultyConfig{
			Min:                 0.0,
			Max:                 1.0,
			Initial:             0.35,
			DriftPerSecond:      0.015,
			CompletionDelta:     0.05,
			OverCollectionBase:  0.03,
			OverCollectionScale: 0.12,
		},
		Spawn: SpawnConfig{
			BaseRate:      1.2,
			MaxRate:       5.0,
			BaseFallSpeed: 120,
			MaxFallSpeed:  420,
			JitterMin:     0.85,
			JitterMax:     1.15,
		},
	}
}
