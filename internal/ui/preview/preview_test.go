package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/render"
)

func TestViewSplitShowsContent(t *testing.T) {
	layout := render.SplitLayout{
		Style:    render.Frame{HeadlineFont: design.FallbackFont, BodyFont: design.FallbackFont},
		Headline: "Ship your brand",
		Body:     "Paste a URL, get a kit.",
		CTAText:  "Start free",
		ImageURL: "https://cdn.example.com/hero.png",
	}

	view := View(layout, 80)
	assert.Contains(t, view, "Ship your brand")
	assert.Contains(t, view, "Paste a URL, get a kit.")
	assert.Contains(t, view, "Start free")
	assert.Contains(t, view, "hero.png")
}

func TestViewSplitPlaceholderBlock(t *testing.T) {
	layout := render.SplitLayout{
		Headline:         render.PlaceholderHeadline,
		CTAText:          render.PlaceholderCTA,
		ImagePlaceholder: true,
	}

	view := View(layout, 80)
	assert.Contains(t, view, render.PlaceholderHeadline)
	assert.Contains(t, view, render.PlaceholderCTA)
	assert.Contains(t, view, "image")
}

func TestViewCenteredOmitsEmptySlots(t *testing.T) {
	layout := render.CenteredLayout{
		Headline: render.PlaceholderHeadline,
		CTAText:  render.PlaceholderCTA,
	}

	view := View(layout, 60)
	assert.Contains(t, view, render.PlaceholderHeadline)
	assert.NotContains(t, view, "logo")
	assert.NotContains(t, view, "backdrop")
}

func TestViewCenteredShowsDimmedBackdrop(t *testing.T) {
	layout := render.CenteredLayout{
		Headline:           "Hello",
		CTAText:            "Go",
		BackgroundImageURL: "https://cdn.example.com/bg.png",
	}

	view := View(layout, 60)
	assert.Contains(t, view, "backdrop, dimmed")
	assert.Contains(t, view, "bg.png")
}

func TestViewUnsupportedNamesTemplateType(t *testing.T) {
	view := View(render.UnsupportedLayout{TemplateType: "social_square"}, 60)
	assert.Contains(t, view, "Unsupported template")
	assert.Contains(t, view, "social_square")
}

func TestViewDefaultsWidth(t *testing.T) {
	view := View(render.UnsupportedLayout{TemplateType: "x"}, 0)
	assert.NotEmpty(t, view)
}
