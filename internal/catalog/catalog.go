// Package catalog loads and serves the set of available templates.
// Templates are YAML descriptors in a catalog directory; the catalog
// owns them and hands out immutable copies.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/logger"
	apperrors "github.com/forgeline/brandforge/pkg/errors"
)

// Catalog holds the loaded templates. Reload swaps the whole set
// atomically, so readers always see a consistent catalog.
type Catalog struct {
	mu        sync.RWMutex
	dir       string
	templates []design.Template
	byID      map[string]design.Template
	logger    *logger.Logger
}

// Load reads every template descriptor under dir and returns a catalog.
// A descriptor that fails to parse or validate aborts the load; the
// catalog is all-or-nothing.
func Load(dir string, log *logger.Logger) (*Catalog, error) {
	c := &Catalog{dir: dir, logger: log}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the catalog directory and replaces the template set.
func (c *Catalog) Reload() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("reading catalog directory: %w", err)
	}

	templates := make([]design.Template, 0, len(entries))
	byID := make(map[string]design.Template, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}

		path := filepath.Join(c.dir, entry.Name())
		tmpl, err := ParseTemplate(path)
		if err != nil {
			return err
		}

		if _, exists := byID[tmpl.ID]; exists {
			return apperrors.NewValidationError("id", fmt.Sprintf("duplicate template id %q", tmpl.ID), nil)
		}

		templates = append(templates, tmpl)
		byID[tmpl.ID] = tmpl
	}

	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })

	c.mu.Lock()
	c.templates = templates
	c.byID = byID
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.WithFields(map[string]any{"dir": c.dir, "templates": len(templates)}).Info("catalog loaded")
	}
	return nil
}

// Templates returns a copy of the loaded templates, ordered by id.
func (c *Catalog) Templates() []design.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]design.Template, len(c.templates))
	copy(result, c.templates)
	return result
}

// Get retrieves a template by id.
func (c *Catalog) Get(id string) (design.Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tmpl, ok := c.byID[id]
	return tmpl, ok
}

// Len returns the number of loaded templates.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

// ParseTemplate reads and validates a single template descriptor.
func ParseTemplate(path string) (design.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return design.Template{}, apperrors.NewParseError(path, 0, err)
	}

	var tmpl design.Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return design.Template{}, apperrors.NewParseError(path, 0, err)
	}

	if err := ValidateTemplate(&tmpl); err != nil {
		return design.Template{}, err
	}

	return tmpl, nil
}

func isTemplateFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
