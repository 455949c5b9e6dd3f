package render

import (
	"github.com/forgeline/brandforge/internal/design"
)

// splitRenderer composes the two-region web hero: a left stack of
// logo, headline, subheadline, body and call-to-action in reading
// order, and a right region holding the primary image.
type splitRenderer struct{}

func (splitRenderer) render(t design.Template, d design.Design) Layout {
	layout := SplitLayout{
		Style:       frameFor(t, d),
		LogoURL:     d.Slot(SlotLogo),
		Headline:    orPlaceholder(d.Slot(SlotHeadline), PlaceholderHeadline),
		Subheadline: d.Slot(SlotSubheadline),
		Body:        d.Slot(SlotBody),
		CTAText:     orPlaceholder(d.Slot(SlotCTAText), PlaceholderCTA),
		ImageURL:    d.Slot(SlotImage),
	}
	// The split variant never leaves the image region empty.
	layout.ImagePlaceholder = layout.ImageURL == ""
	return layout
}

// centeredRenderer composes the single-column web hero: an optional
// dimmed background image behind a centered stack of logo, headline,
// subheadline and call-to-action.
type centeredRenderer struct{}

func (centeredRenderer) render(t design.Template, d design.Design) Layout {
	return CenteredLayout{
		Style:              frameFor(t, d),
		BackgroundImageURL: d.Slot(SlotImage),
		LogoURL:            d.Slot(SlotLogo),
		Headline:           orPlaceholder(d.Slot(SlotHeadline), PlaceholderHeadline),
		Subheadline:        d.Slot(SlotSubheadline),
		CTAText:            orPlaceholder(d.Slot(SlotCTAText), PlaceholderCTA),
	}
}
