// Package preview draws layout descriptions as terminal previews. The
// preview is a faithful sketch, not a pixel rendering: brand colors
// paint the frame, image slots appear as labelled blocks, and font
// choices are noted as captions.
package preview

import (
	"fmt"

	"github.com/forgeline/brandforge/internal/render"
	"github.com/forgeline/brandforge/internal/ui/components"
)

// DefaultWidth is used when the caller does not constrain the preview.
const DefaultWidth = 72

// View renders a layout description to a string at the given width.
func View(layout render.Layout, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	switch l := layout.(type) {
	case render.SplitLayout:
		return viewSplit(l, width)
	case render.CenteredLayout:
		return viewCentered(l, width)
	case render.UnsupportedLayout:
		return viewUnsupported(l, width)
	default:
		return viewUnsupported(render.UnsupportedLayout{TemplateType: layout.Variant()}, width)
	}
}

func themeFor(frame render.Frame) components.Theme {
	theme := components.BrandTheme(frame.Background, frame.HeadlineColor, frame.CTABackground, frame.CTAColor)
	return theme
}

func viewSplit(l render.SplitLayout, width int) string {
	ctx := components.DefaultContext().WithTheme(themeFor(l.Style)).WithWidth(width)

	left := components.VStack().WithGap(1)
	if l.LogoURL != "" {
		left.Add(components.SubtleText(assetLabel("logo", l.LogoURL)))
	}
	left.Add(components.TitleText(l.Headline).WithAppliers(components.ForegroundColor(l.Style.HeadlineColor)))
	if l.Subheadline != "" {
		left.Add(components.NewText(l.Subheadline).WithAppliers(components.ForegroundColor(l.Style.SubheadlineColor)))
	}
	if l.Body != "" {
		left.Add(components.NewText(l.Body).WithAppliers(components.ForegroundColor(l.Style.BodyColor)))
	}
	left.Add(components.NewButton(l.CTAText))

	imageWidth := width / 3
	if imageWidth < 12 {
		imageWidth = 12
	}
	image := components.NewBlock(imageWidth, 6)
	if l.ImagePlaceholder {
		image.WithLabel("image")
	} else {
		image.WithLabel(assetLabel("image", l.ImageURL))
	}

	hero := components.HStack(left, image).WithGap(4).
		WithAppliers(components.Surface(), components.Padding(1, 2))

	return components.VStack(hero, fontCaption(l.Style)).ViewWithContext(ctx)
}

func viewCentered(l render.CenteredLayout, width int) string {
	ctx := components.DefaultContext().WithTheme(themeFor(l.Style)).WithWidth(width)

	column := components.VStack().WithGap(1).WithAlign(components.AlignCenter)
	if l.BackgroundImageURL != "" {
		column.Add(components.SubtleText(assetLabel("backdrop, dimmed", l.BackgroundImageURL)))
	}
	if l.LogoURL != "" {
		column.Add(components.SubtleText(assetLabel("logo", l.LogoURL)))
	}
	column.Add(components.TitleText(l.Headline).WithAppliers(components.ForegroundColor(l.Style.HeadlineColor)))
	if l.Subheadline != "" {
		column.Add(components.NewText(l.Subheadline).WithAppliers(components.ForegroundColor(l.Style.SubheadlineColor)))
	}
	column.Add(components.NewButton(l.CTAText))

	hero := components.VStack(column).WithAlign(components.AlignCenter).
		WithAppliers(components.Surface(), components.Padding(1, 2), components.Width(width))

	return components.VStack(hero, fontCaption(l.Style)).ViewWithContext(ctx)
}

func viewUnsupported(l render.UnsupportedLayout, width int) string {
	ctx := components.DefaultContext().WithWidth(width)

	label := l.TemplateType
	if label == "" {
		label = "unknown"
	}
	box := components.VStack(
		components.TitleText("Unsupported template"),
		components.SubtleText(fmt.Sprintf("type: %s", label)),
	).WithAppliers(components.Border(), components.Padding(1, 2))

	return box.ViewWithContext(ctx)
}

func fontCaption(frame render.Frame) components.Renderable {
	return components.SubtleText(fmt.Sprintf("headline %s · body %s", frame.HeadlineFont, frame.BodyFont))
}

func assetLabel(kind, url string) string {
	return fmt.Sprintf("[%s: %s]", kind, url)
}
