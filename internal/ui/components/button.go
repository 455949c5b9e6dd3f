package components

// Button renders a call-to-action label on the theme's accent color.
// It is visual only; interaction lives in the bubbletea layer.
type Button struct {
	BaseComponent
	label string
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	b := &Button{label: label}
	b.AddAppliers(Accent(), Bold(), Padding(0, 2))
	return b
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render(b.label)
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}
