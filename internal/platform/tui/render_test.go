package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/invoker/internal/core"
	"github.com/vovakirdan/invoker/internal/invoker"
)

func findRune(s *core.Screen, r rune) (int, int, bool) {
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == r {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestRendererDrawsPieces(t *testing.T) {
	cfg := testGameConfig(t)
	st := invoker.InitialState(cfg, 1)
	st.Pieces = []invoker.Piece{{ID: 1, Track: 0, Color: invoker.ColorGreen, Y: 0}}

	s := core.NewScreen(60, 20)
	r := NewRenderer()
	r.Draw(s, st, cfg, Effects{})

	x, y, ok := findRune(s, pieceGlyph)
	if !ok {
		t.Fatal("piece not drawn")
	}
	if y != 1 {
		t.Errorf("piece at top should be on the first field row, got %d", y)
	}
	if s.GetCell(x, y).Color != core.ColorGreen {
		t.Error("piece should use its color")
	}
	if !strings.Contains(s.String(), "LEDGER") {
		t.Error("wide screen should show the ledger panel")
	}
	if r.Trails() != 1 {
		t.Errorf("Trails() = %d, expected 1", r.Trails())
	}
}

func TestRendererTrailsFollowPieces(t *testing.T) {
	cfg := testGameConfig(t)
	st := invoker.InitialState(cfg, 1)
	s := core.NewScreen(60, 20)
	r := NewRenderer()

	st.Pieces = []invoker.Piece{{ID: 7, Track: 2, Y: 100}}
	r.Draw(s, st, cfg, Effects{})
	st.Pieces = []invoker.Piece{{ID: 7, Track: 2, Y: 300}}
	r.Draw(s, st, cfg, Effects{})

	_, py, _ := findRune(s, pieceGlyph)
	_, ty, ok := findRune(s, trailGlyph)
	if !ok || ty >= py {
		t.Errorf("expected a trail above the piece, trail row %d piece row %d", ty, py)
	}

	// A piece below the visible field is not drawn and its trail is dropped.
	st.Pieces = []invoker.Piece{{ID: 7, Track: 2, Y: cfg.ScreenHeight + 10}}
	r.Draw(s, st, cfg, Effects{})
	if _, _, ok := findRune(s, pieceGlyph); ok {
		t.Error("piece in the cull margin should not be drawn")
	}
	if r.Trails() != 0 {
		t.Errorf("Trails() = %d after piece left", r.Trails())
	}
}

func TestRendererLedger(t *testing.T) {
	cfg := testGameConfig(t)
	st := invoker.InitialState(cfg, 1)
	st.Circles[0].Filled[invoker.UpperLeft] = true

	s := core.NewScreen(60, 20)
	NewRenderer().Draw(s, st, cfg, Effects{})

	x, _, ok := findRune(s, filledQuadrant)
	if !ok {
		t.Fatal("filled quadrant not drawn")
	}
	if s.GetCell(x, 2).Color != core.ColorRed {
		t.Error("upper-left quadrant should be red")
	}
	if !strings.Contains(s.String(), "#1") || !strings.Contains(s.String(), "#3") {
		t.Error("ledger should label every circle")
	}
}

func TestRendererEffects(t *testing.T) {
	cfg := testGameConfig(t)
	st := invoker.InitialState(cfg, 1)
	s := core.NewScreen(60, 20)
	r := NewRenderer()

	r.Draw(s, st, cfg, Effects{Paused: true})
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	r.Draw(s, st, cfg, Effects{Flash: true})
	if !s.GetCell(0, 0).Inverse {
		t.Error("flash should invert the frame")
	}

	r.Draw(s, st, cfg, Effects{Shake: true})
	if s.GetCell(0, 0).Color != core.ColorRed {
		t.Error("shake should color the frame red")
	}
}

func TestRendererTinyScreen(t *testing.T) {
	cfg := testGameConfig(t)
	s := core.NewScreen(4, 2)
	NewRenderer().Draw(s, invoker.InitialState(cfg, 1), cfg, Effects{})
	// Must not panic; the message is clipped.
	if s.Get(0, 0) != 't' {
		t.Errorf("expected clipped warning, got %q", s.Row(0))
	}
}

func TestRenderScreenStyles(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.Set(0, 0, 'a', core.ColorRed)
	s.Set(1, 0, 'b', core.ColorRed)
	s.Set(2, 0, 'c', core.ColorBlue)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "c") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
