package invoker

import "math"

// Step advances the simulation by dtMs milliseconds of wall time.
//
// Events are cleared first. A paused state is returned otherwise unchanged.
// A running state advances time, spawns, moves and culls pieces, then
// applies difficulty drift, in that order. Negative dt is treated as zero.
func Step(s State, cfg Config, dtMs float64) State {
	next := s
	next.Events = nil
	if s.Paused {
		return next
	}

	dt := math.Max(0, dtMs) / 1000
	next.Time += dt
	next = Spawn(next, cfg, dt)
	next = Advance(next, cfg, dt)
	next.Difficulty.Value = Drift(next.Difficulty.Value, dt, cfg)
	return next
}

// Collect handles a discrete key press.
//
// Events are cleared first. Unmapped keys, empty tracks and presses where
// the nearest piece is outside the hit window leave the state unchanged.
// While paused the press is ignored unless cfg.CollectWhilePaused is set.
func Collect(s State, cfg Config, keyCode string) State {
	next := s
	next.Events = nil
	if s.Paused && !cfg.CollectWhilePaused {
		return next
	}

	track, ok := cfg.TrackForKey(keyCode)
	if !ok {
		return next
	}

	idx, ok := FindCandidate(s.Pieces, track, cfg.CollectionLineY)
	if !ok {
		return next
	}
	if math.Abs(s.Pieces[idx].Y-cfg.CollectionLineY) > cfg.HitWindow {
		return next
	}

	p, pieces := take(s.Pieces, idx)
	next.Pieces = pieces
	return Resolve(next, cfg, p)
}
