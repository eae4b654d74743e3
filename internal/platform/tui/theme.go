package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invoker/internal/core"
	"github.com/vovakirdan/invoker/internal/invoker"
)

// Theme contains the visual styles of the HUD and overlays.
type Theme struct {
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDAlert     lipgloss.Style

	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		HUDValue:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDAlert:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),

		OverlayTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		style := lipgloss.NewStyle().Bold(c.Bold())
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

// pieceColor maps a piece color to its screen color.
func pieceColor(c invoker.Color) core.Color {
	switch c {
	case invoker.ColorRed:
		return core.ColorRed
	case invoker.ColorGreen:
		return core.ColorGreen
	case invoker.ColorYellow:
		return core.ColorYellow
	case invoker.ColorBlue:
		return core.ColorBlue
	default:
		return core.ColorWhite
	}
}
