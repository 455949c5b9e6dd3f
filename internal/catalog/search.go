package catalog

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/forgeline/brandforge/internal/design"
)

// templateSource adapts the template list for fuzzy matching over
// id, name and layout kind.
type templateSource []design.Template

func (s templateSource) String(i int) string {
	t := s[i]
	return fmt.Sprintf("%s %s %s %s", t.ID, t.Name, t.Type, t.Style.Layout)
}

func (s templateSource) Len() int { return len(s) }

// Search returns templates matching the query, best match first. An
// empty query returns the full catalog in id order.
func (c *Catalog) Search(query string) []design.Template {
	templates := c.Templates()
	if query == "" {
		return templates
	}

	matches := fuzzy.FindFrom(query, templateSource(templates))
	result := make([]design.Template, 0, len(matches))
	for _, m := range matches {
		result = append(result, templates[m.Index])
	}
	return result
}
