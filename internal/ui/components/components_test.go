package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextRendersContent(t *testing.T) {
	text := NewText("Your Headline")
	assert.Contains(t, text.View(), "Your Headline")
}

func TestVStackJoinsChildrenInOrder(t *testing.T) {
	stack := VStack(NewText("first"), NewText("second"))
	view := stack.View()

	lines := strings.Split(view, "\n")
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestVStackGapInsertsBlankLines(t *testing.T) {
	stack := VStack(NewText("a"), NewText("b")).WithGap(1)
	view := stack.View()
	assert.Len(t, strings.Split(view, "\n"), 3)
}

func TestStackSkipsNilAndEmptyChildren(t *testing.T) {
	stack := VStack(nil, NewText(""), NewText("only"))
	view := stack.View()
	assert.Contains(t, view, "only")
	assert.Len(t, strings.Split(view, "\n"), 1)
}

func TestHStackJoinsSideBySide(t *testing.T) {
	stack := HStack(NewText("left"), NewText("right")).WithGap(2)
	view := stack.View()

	assert.Contains(t, view, "left")
	assert.Contains(t, view, "right")
	assert.NotContains(t, view, "\n")
}

func TestButtonRendersLabel(t *testing.T) {
	button := NewButton("Get Started")
	assert.Contains(t, button.View(), "Get Started")
	assert.Equal(t, "Get Started", button.Label())
}

func TestBlockRendersAtSize(t *testing.T) {
	block := NewBlock(10, 3).WithLabel("image")
	view := block.View()

	assert.Contains(t, view, "image")
	// 3 content rows plus top and bottom border.
	assert.Len(t, strings.Split(view, "\n"), 5)
}

func TestBadgeRendersLabel(t *testing.T) {
	badge := NewBadge("admin")
	assert.Contains(t, badge.View(), "admin")
}

func TestDividerUsesContextWidth(t *testing.T) {
	divider := NewDivider()
	ctx := DefaultContext().WithWidth(12)
	view := divider.ViewWithContext(ctx)
	assert.Contains(t, view, strings.Repeat("─", 12))
}

func TestBrandThemeOverridesDefaults(t *testing.T) {
	theme := BrandTheme("#fff", "#111", "#ff5500", "")

	assert.EqualValues(t, "#fff", theme.Surface)
	assert.EqualValues(t, "#111", theme.OnSurface)
	assert.EqualValues(t, "#ff5500", theme.Accent)
	assert.Equal(t, DefaultTheme().OnAccent, theme.OnAccent)
}
