// Package components is a small theme-aware toolkit for composing
// terminal layouts with lipgloss. Themes are passed explicitly through
// a render context; there is no global styling state.
package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// StyleFunc transforms a lipgloss style using data from a Theme. It is
// the core abstraction for theme-aware styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// RenderContext carries the theme and available width to components
// during rendering.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext returns a render context with the default theme and
// no width constraint.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using the given theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy of the context constrained to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// BaseComponent provides shared styling behavior. Embed it in
// component structs.
type BaseComponent struct {
	appliers []StyleFunc
}

// ComputeStyle folds the component's style functions over a fresh
// style using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, fn := range b.appliers {
		if fn == nil {
			continue
		}
		style = fn(style, theme)
	}
	return style
}

// AddAppliers appends style functions to the component.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = append(b.appliers, appliers...)
}

// Alignment specifies how stacked content is aligned on the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to a lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func renderChild(child Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
