// Package render maps a (Template, Design) pair to a layout
// description. Rendering is pure: deterministic in its inputs, no
// mutation, no I/O. Backends that draw layouts live elsewhere.
package render

import (
	"github.com/forgeline/brandforge/internal/design"
)

// variantKey identifies one layout strategy.
type variantKey struct {
	templateType string
	layout       string
}

// variantRenderer produces a layout description for one (type, layout)
// pair. Implementations read slot content and resolve style bindings;
// they never mutate the design.
type variantRenderer interface {
	render(t design.Template, d design.Design) Layout
}

// variants is the closed registry of known layout strategies. Pairs
// absent from this map render the unsupported-template placeholder.
var variants = map[variantKey]variantRenderer{
	{templateType: "web_hero", layout: "split"}:    splitRenderer{},
	{templateType: "web_hero", layout: "centered"}: centeredRenderer{},
}

// Render produces the layout description for a template filled with a
// design's content and tokens.
func Render(t design.Template, d design.Design) Layout {
	key := variantKey{templateType: t.Type, layout: t.Style.Layout}
	if r, ok := variants[key]; ok {
		return r.render(t, d)
	}
	return UnsupportedLayout{TemplateType: t.Type}
}

// Supported reports whether a (type, layout) pair has a layout strategy.
func Supported(templateType, layout string) bool {
	_, ok := variants[variantKey{templateType: templateType, layout: layout}]
	return ok
}

// frameFor resolves a template's style bindings against a design's
// tokens. Missing or malformed bindings degrade to fallbacks inside
// TokenSet resolution, so the frame is always fully populated.
func frameFor(t design.Template, d design.Design) Frame {
	style := t.Style
	tokens := d.Tokens
	return Frame{
		Background:       tokens.ResolveColor(style.Binding(PropBackground)),
		HeadlineColor:    tokens.ResolveColor(style.Binding(PropHeadlineColor)),
		SubheadlineColor: tokens.ResolveColor(style.Binding(PropSubheadlineColor)),
		BodyColor:        tokens.ResolveColor(style.Binding(PropBodyColor)),
		CTABackground:    tokens.ResolveColor(style.Binding(PropCTABackground)),
		CTAColor:         tokens.ResolveColor(style.Binding(PropCTAColor)),
		HeadlineFont:     tokens.ResolveFont(style.Binding(PropHeadlineFont)),
		BodyFont:         tokens.ResolveFont(style.Binding(PropBodyFont)),
	}
}

// orPlaceholder substitutes a fixed placeholder for empty slot content.
func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
