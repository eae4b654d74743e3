package invoker

// Advance moves every live piece down by speed*dtSeconds and drops pieces
// that fell past ScreenHeight+CullMargin. Dropped pieces carry no penalty.
func Advance(s State, cfg Config, dtSeconds float64) State {
	limit := cfg.ScreenHeight + cfg.CullMargin

	pieces := make([]Piece, 0, len(s.Pieces))
	for _, p := range s.Pieces {
		p.Y += p.Speed * dtSeconds
		if p.Y > limit {
			continue
		}
		pieces = append(pieces, p)
	}

	next := s
	next.Pieces = pieces
	return next
}
