package core

// Action represents a semantic session action, abstracted from physical key presses.
// Track presses are not actions: they are forwarded to the simulation as key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionCollect        // A track key; the key code travels alongside
	ActionPause          // P, Escape - pause/unpause
	ActionConfirm        // Enter - end the run while paused
	ActionRestart        // R key - new run after the game ended
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCollect:
		return "Collect"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyPress is one decoded input event.
type KeyPress struct {
	Action Action
	Code   string // Platform key code such as "KeyA", set for ActionCollect
}
