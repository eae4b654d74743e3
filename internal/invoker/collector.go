package invoker

import "math"

// FindCandidate returns the index of the piece on track nearest to lineY.
// Equidistant pieces resolve to the first one in list order. The second
// result is false when the track holds no pieces.
func FindCandidate(pieces []Piece, track int, lineY float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range pieces {
		if p.Track != track {
			continue
		}
		if d := math.Abs(p.Y - lineY); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// take removes the piece at index i from a copy of the piece list.
func take(pieces []Piece, i int) (Piece, []Piece) {
	out := make([]Piece, 0, len(pieces)-1)
	out = append(out, pieces[:i]...)
	out = append(out, pieces[i+1:]...)
	return pieces[i], out
}
