package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Block renders a fixed-size region, used for image areas in previews:
// either a labelled stand-in for a real asset or a neutral placeholder
// when the slot is empty.
type Block struct {
	BaseComponent
	width  int
	height int
	label  string
}

// NewBlock creates a block of the given size.
func NewBlock(width, height int) *Block {
	return &Block{width: width, height: height}
}

// WithLabel centers a label inside the block.
func (b *Block) WithLabel(label string) *Block {
	b.label = label
	return b
}

// View renders the block with the default theme.
func (b *Block) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the block with the given theme context.
func (b *Block) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme).
		Width(b.width).
		Height(b.height).
		Align(lipgloss.Center, lipgloss.Center).
		Border(ctx.Theme.Border).
		Foreground(ctx.Theme.Subtle)
	return style.Render(b.label)
}

// WithAppliers applies theme-based style modifiers.
func (b *Block) WithAppliers(appliers ...StyleFunc) *Block {
	b.AddAppliers(appliers...)
	return b
}
