// Package invoker implements the deterministic simulation core of the Invoker
// minigame: colored pieces fall down parallel tracks, the player collects
// them at a fixed line, and collected pieces fill the quadrants of a small
// ledger of circles.
//
// Every operation is a pure transition: it takes a State value and returns a
// new one without modifying the input, so snapshots can be kept, compared and
// replayed. Randomness comes from a PCG generator whose state travels inside
// State, which makes a run reproducible from its seed and inputs.
package invoker

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"
)

// Piece is a falling unit.
type Piece struct {
	ID        uint64
	Track     int
	Color     Color
	Y         float64 // Vertical position, 0 at spawn, grows downward
	Speed     float64 // Units per second, fixed at spawn
	SpawnTime float64 // State.Time when spawned, in seconds
}

// Circle is a collection target with four quadrant slots.
type Circle struct {
	ID     int
	Filled [QuadrantCount]bool
}

// Has reports whether quadrant q is filled.
func (c Circle) Has(q Quadrant) bool {
	return c.Filled[q]
}

// Complete reports whether all four quadrants are filled.
func (c Circle) Complete() bool {
	for _, f := range c.Filled {
		if !f {
			return false
		}
	}
	return true
}

// FilledCount returns the number of filled quadrants.
func (c Circle) FilledCount() int {
	n := 0
	for _, f := range c.Filled {
		if f {
			n++
		}
	}
	return n
}

// Difficulty holds the difficulty scalar and the spawn-timing accumulator.
type Difficulty struct {
	Value            float64
	SpawnAccumulator float64
}

// State is the aggregate root of the simulation.
type State struct {
	Time       float64 // Seconds of unpaused play
	Pieces     []Piece
	Difficulty Difficulty
	Circles    []Circle
	Score      int
	Paused     bool
	Events     Events // Cleared at the start of every Step and Collect

	NextPieceID  uint64
	NextCircleID int

	RNG rand.PCG
}

// seedStream is the fixed PCG stream selector; the seed picks the sequence.
const seedStream = 0x9e3779b97f4a7c15

// InitialState creates a fresh simulation with cfg.Circles empty circles.
func InitialState(cfg Config, seed int64) State {
	s := State{
		Difficulty:   Difficulty{Value: clampDifficulty(cfg.Difficulty.Initial, cfg)},
		Circles:      make([]Circle, 0, cfg.Circles),
		Paused:       cfg.StartPaused,
		NextPieceID:  1,
		NextCircleID: 1,
		RNG:          *rand.NewPCG(uint64(seed), seedStream),
	}
	for range cfg.Circles {
		s.Circles = append(s.Circles, Circle{ID: s.NextCircleID})
		s.NextCircleID++
	}
	return s
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Pieces = slices.Clone(s.Pieces)
	c.Circles = slices.Clone(s.Circles)
	c.Events = slices.Clone(s.Events)
	return c
}

// Pause returns the state with the paused flag set.
func Pause(s State) State {
	s.Paused = true
	return s
}

// Resume returns the state with the paused flag cleared.
func Resume(s State) State {
	s.Paused = false
	return s
}

// TogglePause flips the paused flag.
func TogglePause(s State) State {
	s.Paused = !s.Paused
	return s
}

// OpenSlot returns the index of the first circle whose quadrant for color is
// still empty, or false if every circle already has it (an over-collection).
func (s State) OpenSlot(color Color) (int, bool) {
	q := QuadrantFor(color)
	for i, c := range s.Circles {
		if !c.Has(q) {
			return i, true
		}
	}
	return -1, false
}

// PiecesOnTrack counts live pieces on a track.
func (s State) PiecesOnTrack(track int) int {
	n := 0
	for _, p := range s.Pieces {
		if p.Track == track {
			n++
		}
	}
	return n
}

// Snapshot returns a hash of the observable state, used to compare runs.
func (s State) Snapshot() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%.9f;S:%d;P:%v;", s.Time, s.Score, s.Paused)
	fmt.Fprintf(h, "D:%.9f:%.9f;", s.Difficulty.Value, s.Difficulty.SpawnAccumulator)

	fmt.Fprintf(h, "PC:")
	for _, p := range s.Pieces {
		fmt.Fprintf(h, "%d:%d:%d:%.6f:%.6f,", p.ID, p.Track, p.Color, p.Y, p.Speed)
	}

	fmt.Fprintf(h, ";C:")
	for _, c := range s.Circles {
		fmt.Fprintf(h, "%d:%v,", c.ID, c.Filled)
	}

	fmt.Fprintf(h, ";N:%d:%d", s.NextPieceID, s.NextCircleID)

	return h.Sum64()
}
