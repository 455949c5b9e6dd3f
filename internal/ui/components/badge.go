package components

// Badge renders a short inline tag, such as a role or status marker.
type Badge struct {
	BaseComponent
	label string
}

// NewBadge creates a badge with the given label.
func NewBadge(label string) *Badge {
	b := &Badge{label: label}
	b.AddAppliers(Accent(), Padding(0, 1))
	return b
}

// View renders the badge with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render(b.label)
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}
