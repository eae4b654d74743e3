package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invoker/internal/audio"
	"github.com/vovakirdan/invoker/internal/core"
	"github.com/vovakirdan/invoker/internal/invoker"
	"github.com/vovakirdan/invoker/internal/logging"
)

const (
	flashTicks = 6 // Frames the glitch inversion lasts
	shakeTicks = 8 // Frames the over-collection alarm lasts
	footerRows = 1
)

// Option customizes a Model.
type Option func(*Model)

// WithSink routes sound cues to sink.
func WithSink(sink audio.Sink) Option {
	return func(m *Model) { m.sink = sink }
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model is the Bubble Tea model for one Invoker session.
// The simulation state is an immutable value; every key press and tick
// replaces it with the result of a transition. Bubble Tea delivers messages
// one at a time, which serializes Step and Collect.
type Model struct {
	cfg     invoker.Config
	runtime core.RuntimeConfig
	state   invoker.State

	screen   *core.Screen
	renderer *Renderer
	hud      HUD
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model

	sink   audio.Sink
	logger *log.Logger

	stats    Stats
	runs     int
	lastTick time.Time
	flash    int
	shake    int
	ended    bool
	quitting bool
}

// NewModel creates a session model.
func NewModel(cfg invoker.Config, rt core.RuntimeConfig, opts ...Option) Model {
	rt = rt.ResolveSeed()
	keys := NewKeyMap(cfg.Keybindings)

	m := Model{
		cfg:      cfg,
		runtime:  rt,
		state:    invoker.InitialState(cfg, rt.Seed),
		screen:   core.NewScreen(rt.ScreenW, fieldHeight(rt.ScreenH)),
		renderer: NewRenderer(),
		hud:      NewHUD(DefaultTheme()),
		keys:     keys,
		mapper:   NewKeyMapper(keys),
		help:     help.New(),
		sink:     audio.NopSink{},
		logger:   logging.Discard(),
		lastTick: time.Now(),
	}
	m.hud.SetWidth(rt.ScreenW)
	m.help.Width = rt.ScreenW

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func fieldHeight(termH int) int {
	return max(0, termH-hudHeight-footerRows)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, fieldHeight(msg.Height))
		m.hud.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kp := m.mapper.MapKey(msg)

	switch kp.Action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session quit", "score", m.state.Score, "time", m.state.Time)
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionPause:
		if !m.ended {
			m.state = invoker.TogglePause(m.state)
			m.logger.Debug("pause toggled", "paused", m.state.Paused)
		}

	case core.ActionConfirm:
		if m.state.Paused && !m.ended {
			m.ended = true
			m.logger.Info("run ended", "score", m.state.Score, "circles", m.stats.Completions,
				"over", m.stats.OverCollections, "difficulty", m.state.Difficulty.Value)
		}

	case core.ActionRestart:
		if m.ended {
			m.restart()
		}

	case core.ActionCollect:
		if !m.ended {
			m.apply(invoker.Collect(m.state, m.cfg, kp.Code))
		}
	}

	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastTick)
	m.lastTick = now

	if !m.ended {
		m.apply(invoker.Step(m.state, m.cfg, float64(dt)/float64(time.Millisecond)))
	}

	m.flash = max(0, m.flash-1)
	m.shake = max(0, m.shake-1)
	return m, tickCmd(m.runtime.TickInterval())
}

// apply installs the result of a transition and reacts to its events.
func (m *Model) apply(next invoker.State) {
	m.state = next
	events := next.Events
	if events.Empty() {
		return
	}

	m.stats.Record(events)
	m.sink.Play(audio.CuesFor(events))

	if events.Glitch() {
		m.flash = flashTicks
	}
	if events.OverCollection() {
		m.shake = shakeTicks
		m.logger.Debug("over-collection", "difficulty", next.Difficulty.Value)
	}
	for _, id := range events.Completed() {
		m.logger.Debug("circle completed", "circle", id, "score", next.Score)
	}
}

func (m *Model) restart() {
	m.runs++
	seed := m.runtime.Seed + int64(m.runs)
	m.state = invoker.InitialState(m.cfg, seed)
	m.stats = Stats{}
	m.renderer.Reset()
	m.flash, m.shake = 0, 0
	m.ended = false
	m.logger.Info("run started", "seed", seed)
}

// State returns the current simulation state.
func (m Model) State() invoker.State {
	return m.state
}

// Ended reports whether the run is over.
func (m Model) Ended() bool {
	return m.ended
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.state, m.cfg, Effects{
		Flash:  m.flash > 0,
		Shake:  m.shake > 0,
		Paused: m.state.Paused,
		Ended:  m.ended,
		Score:  m.state.Score,
	})

	return m.hud.View(m.state, m.cfg, m.stats) + "\n" +
		RenderScreen(m.screen) + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg invoker.Config, rt core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(NewModel(cfg, rt, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
