package tui

import (
	"fmt"
	"strings"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/invoker/internal/core"
	"github.com/vovakirdan/invoker/internal/invoker"
)

// Layout constants
const (
	ledgerWidth     = 12 // Width of the circle ledger panel
	minWidthLedger  = 40 // Below this the ledger panel is hidden
	circleRows      = 4  // Rows per circle in the ledger panel
	pieceGlyph      = '●'
	trailGlyph      = '·'
	separatorGlyph  = '┊'
	lineGlyph       = '─'
	filledQuadrant  = '█'
	emptyQuadrant   = '░'
	minFieldRows    = 3
	trailCacheStart = 64
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Inverse != start.Inverse {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start.Color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			if start.Inverse {
				style = style.Reverse(true)
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Effects are transient presentation flags derived from recent events.
type Effects struct {
	Flash  bool // Glitch: invert the whole frame
	Shake  bool // Over-collection: alarm-colored frame, jolted labels
	Paused bool
	Ended  bool
	Score  int
}

// trail remembers where a piece was last drawn.
type trail struct {
	row  int
	prev int // Previous distinct row
	gen  uint64
}

// Renderer draws simulation states onto a Screen.
// It keeps a per-piece trail cache keyed by piece id, so it must be used for
// one session only.
type Renderer struct {
	trails *intmap.Map[uint64, trail]
	ids    []uint64 // Pieces drawn in the last frame
	gen    uint64
}

// NewRenderer creates a renderer with an empty trail cache.
func NewRenderer() *Renderer {
	return &Renderer{
		trails: intmap.New[uint64, trail](trailCacheStart),
	}
}

// Reset forgets all trails, for a new run.
func (r *Renderer) Reset() {
	r.trails.Clear()
	r.ids = r.ids[:0]
}

// Trails returns the number of cached trails.
func (r *Renderer) Trails() int {
	return r.trails.Len()
}

// Draw renders st onto s.
func (r *Renderer) Draw(s *core.Screen, st invoker.State, cfg invoker.Config, fx Effects) {
	s.Clear()
	r.gen++

	w, h := s.Width(), s.Height()
	panel := 0
	if w >= minWidthLedger {
		panel = ledgerWidth
	}

	field := core.NewRect(0, 0, w-panel, h)
	frameColor := core.ColorGray
	if fx.Shake {
		frameColor = core.ColorRed
	}
	s.DrawBox(field, frameColor)

	inner := field.Inset(1)
	if inner.W < cfg.Tracks || inner.H < minFieldRows {
		s.DrawText(0, 0, "terminal too small", core.ColorRed)
		r.prune(nil)
		return
	}

	r.drawField(s, inner, st, cfg, fx)
	if panel > 0 {
		r.drawLedger(s, core.NewRect(w-panel, 0, panel, h), st)
	}
	r.drawOverlay(s, field, fx)

	if fx.Flash {
		s.Invert()
	}
}

func (r *Renderer) drawField(s *core.Screen, inner core.Rect, st invoker.State, cfg invoker.Config, fx Effects) {
	rows := inner.H - 1 // Bottom row holds key labels
	colW := inner.W / cfg.Tracks
	left := inner.X + (inner.W-colW*cfg.Tracks)/2

	for t := 1; t < cfg.Tracks; t++ {
		s.DrawVLine(left+t*colW, inner.Y, rows, separatorGlyph, core.ColorDim)
	}

	lineRow := inner.Y + core.ScaleToRows(cfg.CollectionLineY, cfg.ScreenHeight, rows)
	s.DrawHLine(left, lineRow, colW*cfg.Tracks, lineGlyph, core.ColorGray)

	jolt := 0
	if fx.Shake && r.gen%2 == 0 {
		jolt = 1
	}
	for t := range cfg.Tracks {
		label, ok := TerminalKeyFor(cfg.KeyForTrack(t))
		if !ok {
			continue
		}
		s.DrawText(left+t*colW+colW/2+jolt, inner.Bottom()-1, strings.ToUpper(label), core.ColorWhite)
	}

	ids := make([]uint64, 0, len(st.Pieces))
	for _, p := range st.Pieces {
		if p.Y > cfg.ScreenHeight {
			continue // Leaving through the cull margin
		}
		row := inner.Y + core.ScaleToRows(p.Y, cfg.ScreenHeight, rows)
		x := left + p.Track*colW + colW/2

		tr := r.track(p.ID, row)
		for y := tr.prev; y < row; y++ {
			s.Set(x, y, trailGlyph, core.ColorDim)
		}
		s.Set(x, row, pieceGlyph, pieceColor(p.Color))
		ids = append(ids, p.ID)
	}
	r.prune(ids)
}

// track updates the trail cache for a piece drawn at row.
func (r *Renderer) track(id uint64, row int) trail {
	tr, ok := r.trails.Get(id)
	switch {
	case !ok:
		tr = trail{row: row, prev: row}
	case tr.row != row:
		tr.prev, tr.row = tr.row, row
	}
	tr.gen = r.gen
	r.trails.Put(id, tr)
	return tr
}

// prune drops trails of pieces that were not drawn this frame.
func (r *Renderer) prune(drawn []uint64) {
	for _, id := range r.ids {
		if tr, ok := r.trails.Get(id); ok && tr.gen != r.gen {
			r.trails.Del(id)
		}
	}
	r.ids = append(r.ids[:0], drawn...)
}

func (r *Renderer) drawLedger(s *core.Screen, panel core.Rect, st invoker.State) {
	s.DrawBox(panel, core.ColorGray)
	s.DrawTextCentered(panel, panel.Y, " LEDGER ", core.ColorBrightWhite)

	captured, hasCapture := st.Events.Captured()
	x0 := panel.X + (panel.W-5)/2

	for i, c := range st.Circles {
		y := panel.Y + 1 + i*circleRows
		if y+2 >= panel.Bottom()-1 {
			break
		}

		labelColor := core.ColorGray
		if hasCapture && captured.CircleID == c.ID {
			labelColor = core.ColorBrightWhite
		}
		s.DrawText(x0, y, fmt.Sprintf("#%d", c.ID), labelColor)

		for q := range invoker.QuadrantCount {
			qx := x0 + 3*(int(q)%2)
			qy := y + 1 + int(q)/2
			glyph, color := emptyQuadrant, core.ColorDim
			if c.Has(q) {
				glyph, color = filledQuadrant, pieceColor(invoker.ColorFor(q))
			}
			s.Set(qx, qy, glyph, color)
			s.Set(qx+1, qy, glyph, color)
		}
	}
}

func (r *Renderer) drawOverlay(s *core.Screen, field core.Rect, fx Effects) {
	mid := field.Y + field.H/2
	switch {
	case fx.Ended:
		s.DrawTextCentered(field, mid-1, "RUN OVER", core.ColorYellow)
		s.DrawTextCentered(field, mid, fmt.Sprintf("score %d", fx.Score), core.ColorBrightWhite)
		s.DrawTextCentered(field, mid+1, "r new run  q quit", core.ColorGray)
	case fx.Paused:
		s.DrawTextCentered(field, mid-1, "PAUSED", core.ColorYellow)
		s.DrawTextCentered(field, mid, "esc play  enter end", core.ColorGray)
	}
}
