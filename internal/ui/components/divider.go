package components

import "strings"

// Divider renders a horizontal separator line.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider with the default character.
func NewDivider() *Divider {
	return &Divider{char: "─"}
}

// WithWidth fixes the divider width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Width > 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = 40
	}
	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Subtle)
	return style.Render(strings.Repeat(d.char, width))
}

// Spacer renders empty lines for vertical breathing room.
type Spacer struct {
	lines int
}

// NewSpacer creates a spacer of the given height.
func NewSpacer(lines int) *Spacer {
	return &Spacer{lines: lines}
}

// View renders the spacer.
func (s *Spacer) View() string {
	if s.lines <= 1 {
		return " "
	}
	return strings.Repeat(" \n", s.lines-1) + " "
}
