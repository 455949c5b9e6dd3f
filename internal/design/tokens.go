package design

import "strings"

// Fallback values substituted when a token path cannot be resolved.
// Resolution never fails: a malformed path, a missing category map, or
// an absent token name all degrade to these constants.
const (
	FallbackColor = "#000000"
	FallbackFont  = "Inter, sans-serif"
)

const (
	tokenCategoryColors = "colors"
	tokenCategoryFonts  = "fonts"
)

// TokenSet holds a brand's design tokens: semantic names mapped to
// literal values, split into color and font categories.
type TokenSet struct {
	Colors map[string]string `yaml:"colors" json:"colors"`
	Fonts  map[string]string `yaml:"fonts" json:"fonts"`
}

// ResolveColor resolves a "colors.<name>" token path against the set.
// Any path that does not resolve to a literal value yields FallbackColor.
func (t TokenSet) ResolveColor(path string) string {
	if value, ok := t.lookup(path, tokenCategoryColors, t.Colors); ok {
		return value
	}
	return FallbackColor
}

// ResolveFont resolves a "fonts.<name>" token path against the set.
// Any path that does not resolve to a literal value yields FallbackFont.
func (t TokenSet) ResolveFont(path string) string {
	if value, ok := t.lookup(path, tokenCategoryFonts, t.Fonts); ok {
		return value
	}
	return FallbackFont
}

func (t TokenSet) lookup(path, category string, values map[string]string) (string, bool) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) != 2 || segments[0] != category {
		return "", false
	}
	if values == nil {
		return "", false
	}
	value, ok := values[segments[1]]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Clone returns a deep copy of the token set so callers can stage edits
// without mutating the original.
func (t TokenSet) Clone() TokenSet {
	return TokenSet{
		Colors: cloneStringMap(t.Colors),
		Fonts:  cloneStringMap(t.Fonts),
	}
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
