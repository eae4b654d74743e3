package invoker

// EventKind identifies what happened during a transition.
type EventKind int

const (
	EventNone EventKind = iota
	// EventCompleted: a circle had all four quadrants filled and was retired.
	EventCompleted
	// EventCaptured: a collected piece filled one quadrant.
	EventCaptured
	// EventGlitch: a glitch-colored piece was collected.
	EventGlitch
	// EventOverCollection: a piece was collected while no circle had its slot open.
	EventOverCollection
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCompleted:
		return "completed"
	case EventCaptured:
		return "captured"
	case EventGlitch:
		return "glitch"
	case EventOverCollection:
		return "over-collection"
	default:
		return "none"
	}
}

// Event is one entry of the per-transition event record.
// CircleID and Quadrant are set for Completed and Captured; Color for every
// kind except Completed.
type Event struct {
	Kind     EventKind
	CircleID int
	Quadrant Quadrant
	Color    Color
}

// Events is the transient event record of the last transition.
// It holds any number of Completed events and at most one of each other kind.
type Events []Event

// Completed returns the ids of circles completed during the transition.
func (e Events) Completed() []int {
	var ids []int
	for _, ev := range e {
		if ev.Kind == EventCompleted {
			ids = append(ids, ev.CircleID)
		}
	}
	return ids
}

// Captured returns the most recent capture, if any.
func (e Events) Captured() (Event, bool) {
	return e.find(EventCaptured)
}

// Glitch reports whether the glitch event fired.
func (e Events) Glitch() bool {
	_, ok := e.find(EventGlitch)
	return ok
}

// OverCollection reports whether an over-collection happened.
func (e Events) OverCollection() bool {
	_, ok := e.find(EventOverCollection)
	return ok
}

// Empty reports whether nothing happened.
func (e Events) Empty() bool {
	return len(e) == 0
}

func (e Events) find(kind EventKind) (Event, bool) {
	for i := len(e) - 1; i >= 0; i-- {
		if e[i].Kind == kind {
			return e[i], true
		}
	}
	return Event{}, false
}

// with returns a new record containing ev. Singleton kinds replace an
// existing entry of the same kind; the receiver is never modified.
func (e Events) with(ev Event) Events {
	out := make(Events, 0, len(e)+1)
	for _, existing := range e {
		if ev.Kind != EventCompleted && existing.Kind == ev.Kind {
			continue
		}
		out = append(out, existing)
	}
	return append(out, ev)
}
