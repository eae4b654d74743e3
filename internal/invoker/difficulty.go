package invoker

import "math"

// Difficulty curves. Both map [0,1] onto [0,1], strictly increasing and
// convex, so speed and spawn rate grow super-linearly with difficulty.
func fallCurve(d float64) float64  { return math.Pow(d, 1.6) }
func spawnCurve(d float64) float64 { return math.Pow(d, 1.4) }

// FallSpeed returns the nominal fall speed (units/second) at difficulty d.
func FallSpeed(d float64, cfg Config) float64 {
	s := cfg.Spawn
	return s.BaseFallSpeed + (s.MaxFallSpeed-s.BaseFallSpeed)*fallCurve(d)
}

// SpawnRate returns pieces per second at difficulty d.
func SpawnRate(d float64, cfg Config) float64 {
	s := cfg.Spawn
	return s.BaseRate + (s.MaxRate-s.BaseRate)*spawnCurve(d)
}

// Drift relaxes difficulty over dtSeconds of play.
func Drift(d, dtSeconds float64, cfg Config) float64 {
	return clampDifficulty(d-cfg.Difficulty.DriftPerSecond*dtSeconds, cfg)
}

// Increase applies the circle-completion reward with diminishing returns.
func Increase(d float64, cfg Config) float64 {
	return clampDifficulty(d+cfg.Difficulty.CompletionDelta*(1-d*0.25), cfg)
}

// Decrease applies the over-collection penalty, which grows with d.
func Decrease(d float64, cfg Config) float64 {
	drop := cfg.Difficulty.OverCollectionBase + cfg.Difficulty.OverCollectionScale*d
	return clampDifficulty(d-drop, cfg)
}

func clampDifficulty(d float64, cfg Config) float64 {
	return math.Max(cfg.Difficulty.Min, math.Min(cfg.Difficulty.Max, d))
}
