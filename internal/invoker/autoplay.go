package invoker

import (
	"math"
	"math/rand/v2"
)

// Autoplayer is a scripted player used by the headless simulator.
// It is not part of the simulation state and keeps its own random source,
// so its misses never disturb the piece sequence of the run.
type Autoplayer struct {
	Accuracy float64 // Probability of pressing when a piece is in the window
	Greedy   bool    // Press even when the press would over-collect

	rng *rand.Rand
}

// NewAutoplayer creates an autoplayer with a deterministic miss pattern.
func NewAutoplayer(seed int64, accuracy float64, greedy bool) *Autoplayer {
	return &Autoplayer{
		Accuracy: math.Max(0, math.Min(1, accuracy)),
		Greedy:   greedy,
		rng:      rand.New(rand.NewPCG(uint64(seed), seedStream^1)),
	}
}

// Keys returns the key codes to press for the current state, in track order.
func (a *Autoplayer) Keys(s State, cfg Config) []string {
	var keys []string
	ledger := s
	for track := range cfg.Tracks {
		idx, ok := FindCandidate(s.Pieces, track, cfg.CollectionLineY)
		if !ok {
			continue
		}
		p := s.Pieces[idx]
		if math.Abs(p.Y-cfg.CollectionLineY) > cfg.HitWindow {
			continue
		}
		if !a.Greedy {
			if _, open := ledger.OpenSlot(p.Color); !open {
				continue
			}
		}
		if a.rng.Float64() >= a.Accuracy {
			continue
		}
		keys = append(keys, cfg.KeyForTrack(track))
		// Later tracks see the ledger as it will be after this press.
		ledger = Resolve(ledger, cfg, p)
	}
	return keys
}
