package core

import "time"

// RuntimeConfig contains the host-side settings of a play session.
// The simulation itself is configured separately; these only describe the
// terminal and the tick loop that drives it.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Render/tick frequency (default 60)
	Seed    int64 // RNG seed for deterministic gameplay, 0 picks one from the clock
	Sound   bool  // Whether audio cues are played
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns cfg with a clock-derived seed when none was given.
func (cfg RuntimeConfig) ResolveSeed() RuntimeConfig {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// TickInterval returns the time between ticks, clamping FPS to [1, 240].
func (cfg RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(Clamp(cfg.FPS, 1, 240))
}
