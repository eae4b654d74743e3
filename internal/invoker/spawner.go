package invoker

import (
	"math/rand/v2"
	"slices"
)

// Spawn advances the spawn accumulator by dtSeconds worth of the current
// spawn rate and emits one piece for every whole unit accumulated. The
// fractional remainder is carried to the next call, so the long-run spawn
// count does not depend on how time is sliced into ticks.
func Spawn(s State, cfg Config, dtSeconds float64) State {
	next := s
	acc := s.Difficulty.SpawnAccumulator + dtSeconds*SpawnRate(s.Difficulty.Value, cfg)

	if acc < 1 {
		next.Difficulty.SpawnAccumulator = acc
		return next
	}

	pcg := s.RNG
	rng := rand.New(&pcg)
	speed := FallSpeed(s.Difficulty.Value, cfg)
	jitterSpan := cfg.Spawn.JitterMax - cfg.Spawn.JitterMin

	pieces := slices.Clip(slices.Clone(s.Pieces))
	for acc >= 1 {
		acc--
		pieces = append(pieces, Piece{
			ID:        next.NextPieceID,
			Track:     rng.IntN(cfg.Tracks),
			Color:     cfg.Colors[rng.IntN(len(cfg.Colors))],
			Speed:     speed * (cfg.Spawn.JitterMin + rng.Float64()*jitterSpan),
			SpawnTime: s.Time,
		})
		next.NextPieceID++
	}

	next.Pieces = pieces
	next.Difficulty.SpawnAccumulator = acc
	next.RNG = pcg
	return next
}
