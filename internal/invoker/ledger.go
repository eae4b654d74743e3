package invoker

import "slices"

// Resolve routes a collected piece into the circle ledger.
//
// The piece fills its color's quadrant on the first circle where that
// quadrant is still open. A circle that becomes complete awards
// CompletionAward, raises difficulty and is replaced by a fresh circle
// appended at the end of the ledger. When no circle has the slot open the
// collection is an over-collection: difficulty drops and score is unchanged.
// Collecting the glitch color always raises the glitch event.
//
// The piece must already be removed from s.Pieces by the caller.
func Resolve(s State, cfg Config, p Piece) State {
	next := s
	q := QuadrantFor(p.Color)

	idx, ok := s.OpenSlot(p.Color)
	if !ok {
		next.Difficulty.Value = Decrease(s.Difficulty.Value, cfg)
		next.Events = next.Events.with(Event{Kind: EventOverCollection, Color: p.Color})
		if cfg.IsGlitch(p.Color) {
			next.Events = next.Events.with(Event{Kind: EventGlitch, Color: p.Color})
		}
		return next
	}

	circles := slices.Clone(s.Circles)
	filled := circles[idx]
	filled.Filled[q] = true

	next.Events = next.Events.with(Event{
		Kind:     EventCaptured,
		CircleID: filled.ID,
		Quadrant: q,
		Color:    p.Color,
	})

	if filled.Complete() {
		next.Score += cfg.CompletionAward
		next.Difficulty.Value = Increase(s.Difficulty.Value, cfg)
		next.Events = next.Events.with(Event{Kind: EventCompleted, CircleID: filled.ID})

		circles = slices.Delete(circles, idx, idx+1)
		circles = append(circles, Circle{ID: next.NextCircleID})
		next.NextCircleID++
	} else {
		circles[idx] = filled
	}
	next.Circles = circles

	if cfg.IsGlitch(p.Color) {
		next.Events = next.Events.with(Event{Kind: EventGlitch, Color: p.Color})
	}
	return next
}
