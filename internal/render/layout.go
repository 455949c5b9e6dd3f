package render

// Slot keys understood by the built-in variants.
const (
	SlotHeadline    = "headline"
	SlotSubheadline = "subheadline"
	SlotBody        = "body"
	SlotCTAText     = "cta_text"
	SlotLogo        = "logo"
	SlotImage       = "image"
)

// Placeholder content substituted when a required slot is empty.
const (
	PlaceholderHeadline = "Your Headline"
	PlaceholderCTA      = "Get Started"
)

// Style property names a template may bind to token paths.
const (
	PropBackground       = "background"
	PropHeadlineColor    = "headline_color"
	PropSubheadlineColor = "subheadline_color"
	PropBodyColor        = "body_color"
	PropCTABackground    = "cta_bg"
	PropCTAColor         = "cta_color"
	PropHeadlineFont     = "headline_font"
	PropBodyFont         = "body_font"
)

// Layout is the closed set of layout descriptions the renderer can
// produce. Each variant is a plain value; rendering backends (terminal
// preview, HTML export) switch over the concrete types.
type Layout interface {
	// Variant names the (type, layout) pair that produced this layout.
	Variant() string
}

// Frame carries the style values resolved from a template's token-path
// bindings. Every field holds a literal value; unresolvable bindings
// already degraded to the documented fallbacks.
type Frame struct {
	Background       string
	HeadlineColor    string
	SubheadlineColor string
	BodyColor        string
	CTABackground    string
	CTAColor         string
	HeadlineFont     string
	BodyFont         string
}

// SplitLayout is a two-region web hero: a left reading-order stack and
// a right image region. Optional fields are empty when their slot is
// unset and are omitted from output; the primary image instead shows a
// neutral placeholder block.
type SplitLayout struct {
	Style Frame

	LogoURL     string
	Headline    string
	Subheadline string
	Body        string
	CTAText     string

	ImageURL         string
	ImagePlaceholder bool
}

// Variant implements Layout.
func (SplitLayout) Variant() string { return "web_hero/split" }

// CenteredLayout is a single-column, center-aligned web hero with an
// optional dimmed full-bleed background image.
type CenteredLayout struct {
	Style Frame

	BackgroundImageURL string

	LogoURL     string
	Headline    string
	Subheadline string
	CTAText     string
}

// Variant implements Layout.
func (CenteredLayout) Variant() string { return "web_hero/centered" }

// UnsupportedLayout is the designed fallback for any (type, layout)
// pair the renderer does not recognize. It is not an error path.
type UnsupportedLayout struct {
	TemplateType string
}

// Variant implements Layout.
func (UnsupportedLayout) Variant() string { return "unsupported" }
