package components

// Text is a primitive component for styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component with the given content.
func NewText(content string) *Text {
	return &Text{content: content}
}

// TitleText creates bold headline text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(OnSurface(), Bold())
}

// SubtleText creates secondary text.
func SubtleText(content string) *Text {
	return NewText(content).WithAppliers(Subtle())
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}
