package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invoker/internal/core"
)

// KeyMap defines the key bindings of a play session.
type KeyMap struct {
	Tracks  key.Binding
	Pause   key.Binding
	End     key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tracks, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tracks, k.Pause, k.End},
		{k.Restart, k.Help, k.Quit},
	}
}

// NewKeyMap builds the bindings for the configured track key codes.
// Validated configs only carry codes TerminalKeyFor maps and none of
// config.ReservedKeyCodes, so no track key is shadowed by a control.
func NewKeyMap(trackCodes []string) KeyMap {
	keys := make([]string, 0, len(trackCodes))
	for _, code := range trackCodes {
		if k, ok := TerminalKeyFor(code); ok {
			keys = append(keys, k)
		}
	}

	return KeyMap{
		Tracks: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, " "), "collect"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		End: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "end run (paused)"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new run"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyCodeFor translates a terminal key name to a platform key code:
// letters become "KeyA".."KeyZ", digits "Digit0".."Digit9", space "Space".
func KeyCodeFor(k string) (string, bool) {
	if k == " " || k == "space" {
		return "Space", true
	}
	if len(k) != 1 {
		return "", false
	}
	c := k[0]
	switch {
	case c >= 'a' && c <= 'z':
		return "Key" + strings.ToUpper(k), true
	case c >= 'A' && c <= 'Z':
		return "Key" + k, true
	case c >= '0' && c <= '9':
		return "Digit" + k, true
	}
	return "", false
}

// TerminalKeyFor is the inverse of KeyCodeFor.
func TerminalKeyFor(code string) (string, bool) {
	switch {
	case code == "Space":
		return " ", true
	case strings.HasPrefix(code, "Key") && len(code) == 4:
		return strings.ToLower(code[3:]), true
	case strings.HasPrefix(code, "Digit") && len(code) == 6:
		return code[5:], true
	}
	return "", false
}

// KeyMapper translates Bubble Tea key messages to session actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey decodes a key message. Control bindings take precedence over track
// keys; any other printable key is forwarded as a collect with its key code,
// and the simulation ignores codes it has no track for.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.KeyPress {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.KeyPress{Action: core.ActionQuit}
	case key.Matches(msg, km.keys.Pause):
		return core.KeyPress{Action: core.ActionPause}
	case key.Matches(msg, km.keys.End):
		return core.KeyPress{Action: core.ActionConfirm}
	case key.Matches(msg, km.keys.Restart):
		return core.KeyPress{Action: core.ActionRestart}
	case key.Matches(msg, km.keys.Help):
		return core.KeyPress{Action: core.ActionHelp}
	}

	if code, ok := KeyCodeFor(msg.String()); ok {
		return core.KeyPress{Action: core.ActionCollect, Code: code}
	}
	return core.KeyPress{Action: core.ActionNone}
}
