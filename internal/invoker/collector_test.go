package invoker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCandidate(t *testing.T) {
	pieces := []Piece{
		{ID: 1, Track: 0, Y: 500},
		{ID: 2, Track: 1, Y: 640},
		{ID: 3, Track: 0, Y: 630},
		{ID: 4, Track: 0, Y: 700},
	}

	tests := []struct {
		name   string
		track  int
		wantID uint64
		wantOK bool
	}{
		{"nearest on track", 0, 3, true},
		{"other track ignored", 1, 2, true},
		{"empty track", 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := FindCandidate(pieces, tt.track, 640)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantID, pieces[idx].ID)
			}
		})
	}
}

func TestFindCandidateTieBreak(t *testing.T) {
	above := Piece{ID: 1, Track: 0, Y: 630}
	below := Piece{ID: 2, Track: 0, Y: 650}

	for range 50 {
		idx, ok := FindCandidate([]Piece{above, below}, 0, 640)
		require.True(t, ok)
		assert.Equal(t, 0, idx)

		idx, ok = FindCandidate([]Piece{below, above}, 0, 640)
		require.True(t, ok)
		assert.Equal(t, 0, idx, "first in list wins regardless of side")
	}
}

func TestCollectTieBreakRemovesFirst(t *testing.T) {
	cfg := newTestConfig(t, noSpawn)
	s := running(cfg)
	s = placePiece(s, 0, ColorRed, 630)
	s = placePiece(s, 0, ColorGreen, 650)

	next := Collect(s, cfg, "KeyA")

	require.Len(t, next.Pieces, 1)
	assert.Equal(t, uint64(2), next.Pieces[0].ID)
	assert.True(t, next.Circles[0].Has(UpperLeft))
}

func TestCollectNoOps(t *testing.T) {
	cfg := newTestConfig(t, noSpawn)
	base := placePiece(running(cfg), 0, ColorRed, 640-cfg.HitWindow-1)

	tests := []struct {
		name string
		key  string
	}{
		{"unmapped key", "KeyZ"},
		{"empty track", "KeyS"},
		{"outside hit window", "KeyA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Collect(base, cfg, tt.key)
			assert.Equal(t, base.Pieces, next.Pieces)
			assert.Equal(t, base.Circles, next.Circles)
			assert.Equal(t, base.Difficulty, next.Difficulty)
			assert.True(t, next.Events.Empty())
		})
	}
}

func TestCollectHitWindowEdge(t *testing.T) {
	cfg := newTestConfig(t, noSpawn)

	for _, y := range []float64{640 - cfg.HitWindow, 640 + cfg.HitWindow} {
		s := placePiece(running(cfg), 2, ColorYellow, y)
		next := Collect(s, cfg, "KeyD")
		assert.Empty(t, next.Pieces, "piece at y=%v is inside the window", y)
		assert.True(t, next.Circles[0].Has(LowerLeft))
	}
}
