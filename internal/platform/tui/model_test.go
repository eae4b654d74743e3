package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invoker/internal/audio"
	"github.com/vovakirdan/invoker/internal/config"
	"github.com/vovakirdan/invoker/internal/core"
	"github.com/vovakirdan/invoker/internal/invoker"
)

func testGameConfig(t *testing.T) invoker.Config {
	t.Helper()
	raw := config.DefaultInvokerConfig()
	raw.Spawn.BaseRate = 0
	raw.Spawn.MaxRate = 0
	cfg, err := invoker.NewConfig(raw)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	return cfg
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func newTestModel(t *testing.T, sink audio.Sink) Model {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 42
	return NewModel(testGameConfig(t), rt, WithSink(sink))
}

func withPiece(m Model, track int, color invoker.Color, y float64) Model {
	st := m.state.Clone()
	st.Pieces = append(st.Pieces, invoker.Piece{ID: st.NextPieceID, Track: track, Color: color, Y: y})
	st.NextPieceID++
	m.state = st
	return m
}

func TestModelStartsPaused(t *testing.T) {
	m := newTestModel(t, audio.NopSink{})
	if !m.State().Paused {
		t.Fatal("new session should start paused")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().Paused {
		t.Error("esc should resume")
	}

	m = update(t, m, runeKey('p'))
	if !m.State().Paused {
		t.Error("p should pause")
	}
}

func TestModelCollectFeedsSink(t *testing.T) {
	rec := &audio.Recorder{}
	m := newTestModel(t, rec)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = withPiece(m, 0, invoker.ColorBlue, m.cfg.CollectionLineY)

	m = update(t, m, runeKey('a'))

	if len(m.State().Pieces) != 0 {
		t.Fatalf("piece should be collected, %d left", len(m.State().Pieces))
	}
	if !m.State().Circles[0].Has(invoker.LowerRight) {
		t.Error("blue quadrant should be filled")
	}
	if rec.Count(audio.CueTick) != 1 || rec.Count(audio.CueGlitch) != 1 {
		t.Errorf("expected tick and glitch cues, got tick=%d glitch=%d", rec.Count(audio.CueTick), rec.Count(audio.CueGlitch))
	}
	if m.flash != flashTicks {
		t.Errorf("glitch should start a flash, flash=%d", m.flash)
	}
	if m.stats.Captures != 1 {
		t.Errorf("Captures = %d", m.stats.Captures)
	}
}

func TestModelUnboundKeyIsIgnored(t *testing.T) {
	m := newTestModel(t, audio.NopSink{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = withPiece(m, 0, invoker.ColorRed, m.cfg.CollectionLineY)

	m = update(t, m, runeKey('z'))

	if len(m.State().Pieces) != 1 {
		t.Error("unbound key must not collect")
	}
}

func TestModelTickUsesElapsedTime(t *testing.T) {
	m := newTestModel(t, audio.NopSink{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = withPiece(m, 1, invoker.ColorRed, 0)
	st := m.state
	st.Pieces[0].Speed = 100
	m.state = st

	m = update(t, m, TickMsg(m.lastTick.Add(500*time.Millisecond)))

	got := m.State()
	if got.Time < 0.499 || got.Time > 0.501 {
		t.Errorf("Time = %v, expected 0.5", got.Time)
	}
	if y := got.Pieces[0].Y; y < 49.9 || y > 50.1 {
		t.Errorf("piece Y = %v, expected 50", y)
	}
}

func TestModelEndAndRestart(t *testing.T) {
	m := newTestModel(t, audio.NopSink{})

	// Enter only ends a paused run.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Ended() {
		t.Fatal("enter while running should not end the run")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Ended() {
		t.Fatal("enter while paused should end the run")
	}
	if !strings.Contains(m.View(), "RUN OVER") {
		t.Error("ended view should show the run-over overlay")
	}

	before := m.State()
	m = update(t, m, TickMsg(m.lastTick.Add(time.Second)))
	if m.State().Time != before.Time {
		t.Error("ticks must not advance an ended run")
	}

	m = update(t, m, runeKey('r'))
	if m.Ended() {
		t.Fatal("r should start a new run")
	}
	if !m.State().Paused || m.State().Score != 0 {
		t.Error("new run should start fresh and paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, audio.NopSink{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, audio.NopSink{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30-hudHeight-footerRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "INVOKER") || !strings.Contains(view, "LEDGER") {
		t.Error("view should contain HUD title and ledger panel")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, audio.NopSink{})
	m = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
}
