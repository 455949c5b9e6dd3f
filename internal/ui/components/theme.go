package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the semantic color and border set components draw with. In
// the studio the theme is usually derived from a brand's design tokens
// so previews carry the brand's palette; DefaultTheme supplies neutral
// chrome colors for everything else.
type Theme struct {
	Surface   lipgloss.Color // canvas background
	OnSurface lipgloss.Color // text on the canvas
	Subtle    lipgloss.Color // secondary text
	Accent    lipgloss.Color // call-to-action background
	OnAccent  lipgloss.Color // text on the accent color
	Danger    lipgloss.Color

	Border lipgloss.Border
}

// DefaultTheme returns the neutral chrome theme.
func DefaultTheme() Theme {
	return Theme{
		Surface:   lipgloss.Color("#1e293b"),
		OnSurface: lipgloss.Color("#f8fafc"),
		Subtle:    lipgloss.Color("#94a3b8"),
		Accent:    lipgloss.Color("#3b82f6"),
		OnAccent:  lipgloss.Color("#f8fafc"),
		Danger:    lipgloss.Color("#ef4444"),
		Border:    lipgloss.RoundedBorder(),
	}
}

// BrandTheme builds a theme from literal brand colors. Empty values
// keep the default theme's color for that slot.
func BrandTheme(surface, onSurface, accent, onAccent string) Theme {
	theme := DefaultTheme()
	if surface != "" {
		theme.Surface = lipgloss.Color(surface)
	}
	if onSurface != "" {
		theme.OnSurface = lipgloss.Color(onSurface)
		theme.Subtle = lipgloss.Color(onSurface)
	}
	if accent != "" {
		theme.Accent = lipgloss.Color(accent)
	}
	if onAccent != "" {
		theme.OnAccent = lipgloss.Color(onAccent)
	}
	return theme
}

// Style modifiers.

// Surface paints the surface background with matching foreground.
func Surface() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(theme.Surface).Foreground(theme.OnSurface)
	}
}

// Accent paints the accent background with matching foreground.
func Accent() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(theme.Accent).Foreground(theme.OnAccent)
	}
}

// OnSurface colors text for the surface without painting a background.
func OnSurface() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.OnSurface)
	}
}

// Subtle colors secondary text.
func Subtle() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Subtle).Faint(true)
	}
}

// Danger colors failure text.
func Danger() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Danger)
	}
}

// Bold embolden the content.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// Border draws the theme border around the content.
func Border() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Border)
	}
}

// Padding applies uniform padding.
func Padding(v, h int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(v, h)
	}
}

// Width fixes the rendered width.
func Width(w int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Width(w)
	}
}

// ForegroundColor colors text with a literal color value.
func ForegroundColor(color string) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		if color == "" {
			return base
		}
		return base.Foreground(lipgloss.Color(color))
	}
}
