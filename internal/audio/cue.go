// Package audio turns simulation events into short synthesized sound cues.
// Sound is optional: every entry point degrades to silence when no audio
// device is available.
package audio

import "github.com/vovakirdan/invoker/internal/invoker"

// CueKind identifies a sound effect.
type CueKind int

const (
	CueTick   CueKind = iota // A quadrant was filled
	CueChime                 // A circle was completed
	CueBuzz                  // Over-collection
	CueGlitch                // Glitch-color collection
)

func (k CueKind) String() string {
	switch k {
	case CueTick:
		return "tick"
	case CueChime:
		return "chime"
	case CueBuzz:
		return "buzz"
	case CueGlitch:
		return "glitch"
	default:
		return "unknown"
	}
}

// Cue is one sound to play. Color selects the pitch of a tick.
type Cue struct {
	Kind  CueKind
	Color invoker.Color
}

// CuesFor maps an event record to the cues it should trigger.
// Each cue kind appears at most once, even when several circles completed.
func CuesFor(events invoker.Events) []Cue {
	if events.Empty() {
		return nil
	}

	var cues []Cue
	if ev, ok := events.Captured(); ok {
		cues = append(cues, Cue{Kind: CueTick, Color: ev.Color})
	}
	if len(events.Completed()) > 0 {
		cues = append(cues, Cue{Kind: CueChime})
	}
	if events.OverCollection() {
		cues = append(cues, Cue{Kind: CueBuzz})
	}
	if events.Glitch() {
		cues = append(cues, Cue{Kind: CueGlitch})
	}
	return cues
}
