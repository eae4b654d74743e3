package invoker

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/invoker/internal/config"
)

const eps = 1e-9

func newTestConfig(t *testing.T, mutate ...func(*config.InvokerConfig)) Config {
	t.Helper()
	raw := config.DefaultInvokerConfig()
	for _, m := range mutate {
		m(&raw)
	}
	cfg, err := NewConfig(raw)
	require.NoError(t, err)
	return cfg
}

func noSpawn(raw *config.InvokerConfig) {
	raw.Spawn.BaseRate = 0
	raw.Spawn.MaxRate = 0
}

func noDrift(raw *config.InvokerConfig) {
	raw.Difficulty.DriftPerSecond = 0
}

func singleCircle(raw *config.InvokerConfig) {
	raw.Circles = 1
}

// running returns an unpaused initial state.
func running(cfg Config) State {
	return Resume(InitialState(cfg, 1))
}

// placePiece appends a motionless piece using the state's id counter.
func placePiece(s State, track int, color Color, y float64) State {
	next := s.Clone()
	next.Pieces = append(next.Pieces, Piece{
		ID:    next.NextPieceID,
		Track: track,
		Color: color,
		Y:     y,
	})
	next.NextPieceID++
	return next
}

func filledCount(circles []Circle) int {
	n := 0
	for _, c := range circles {
		n += c.FilledCount()
	}
	return n
}
