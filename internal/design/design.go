package design

import "time"

// SlotType classifies the content a template slot accepts. Slot content
// is always a plain string (text or an image URL); the type only gates
// which editing affordance applies.
type SlotType string

const (
	SlotText  SlotType = "text"
	SlotImage SlotType = "image"
	SlotLogo  SlotType = "logo"
	SlotCTA   SlotType = "cta"
)

// Editable reports whether the slot can be edited inline. Image-like
// slots are only changed through regeneration.
func (s SlotType) Editable() bool {
	return s == SlotText || s == SlotCTA
}

// SlotSpec describes a named content slot declared by a template.
type SlotSpec struct {
	Type        SlotType `yaml:"type" validate:"required,oneof=text image logo cta"`
	Description string   `yaml:"description,omitempty"`
}

// StyleSpec declares a template's layout variant and its style bindings.
// Bindings map style properties (background, headline_color, cta_bg, ...)
// to token-path strings resolved against a design's token set.
type StyleSpec struct {
	Layout   string            `yaml:"layout" validate:"required"`
	Bindings map[string]string `yaml:",inline"`
}

// Binding returns the token path bound to a style property, or the empty
// string when the template declares no binding for it. An empty path
// resolves to the documented fallback, so callers never special-case it.
func (s StyleSpec) Binding(property string) string {
	if s.Bindings == nil {
		return ""
	}
	return s.Bindings[property]
}

// Template identifies a layout kind and declares the slots and style
// bindings a design must fill. Templates are immutable once loaded from
// the catalog.
type Template struct {
	ID    string              `yaml:"id" validate:"required,template_id"`
	Name  string              `yaml:"name"`
	Type  string              `yaml:"type" validate:"required"`
	Slots map[string]SlotSpec `yaml:"slots" validate:"required,dive"`
	Style StyleSpec           `yaml:"style" validate:"required"`
}

// SlotSpecFor returns the descriptor for a slot key, if declared.
func (t Template) SlotSpecFor(key string) (SlotSpec, bool) {
	spec, ok := t.Slots[key]
	return spec, ok
}

// Design is one creative: a template reference, literal slot content,
// and the brand token set the template's style bindings resolve against.
// A design is mutable; slot values change through direct edits or
// regeneration.
type Design struct {
	ID         string    `json:"id"`
	BrandID    string    `json:"brand_id"`
	TemplateID string    `json:"template_id"`
	Slots      map[string]string `json:"slots"`
	Tokens     TokenSet  `json:"tokens"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Slot returns the literal content for a slot key, or the empty string
// when the slot is unset.
func (d Design) Slot(key string) string {
	if d.Slots == nil {
		return ""
	}
	return d.Slots[key]
}

// SetSlot overwrites a slot's content.
func (d *Design) SetSlot(key, value string) {
	if d.Slots == nil {
		d.Slots = make(map[string]string, 1)
	}
	d.Slots[key] = value
}

// Clone returns a deep copy so staged edits never leak into the
// original design.
func (d Design) Clone() Design {
	clone := d
	clone.Slots = cloneStringMap(d.Slots)
	clone.Tokens = d.Tokens.Clone()
	return clone
}
