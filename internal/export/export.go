// Package export turns a rendered design into shippable artifacts:
// standalone HTML documents and rasterized PNGs, versioned in a local
// git workspace.
package export

import (
	"context"
	"fmt"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/logger"
	"github.com/forgeline/brandforge/internal/render"
)

// Format selects the artifact type.
type Format string

const (
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHTML, FormatPNG:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected html or png)", s)
	}
}

// Exporter renders designs and writes the artifacts into a workspace.
type Exporter struct {
	workspace  *Workspace
	rasterizer Rasterizer
	log        *logger.Logger
}

// NewExporter wires an exporter. The rasterizer may be nil, in which
// case PNG export reports an error instead of calling out.
func NewExporter(workspace *Workspace, rasterizer Rasterizer, log *logger.Logger) *Exporter {
	return &Exporter{workspace: workspace, rasterizer: rasterizer, log: log}
}

// Export renders the design through its template and writes the
// artifact, returning the path of the committed file.
func (e *Exporter) Export(ctx context.Context, tmpl design.Template, dsg design.Design, format Format) (string, error) {
	layout := render.Render(tmpl, dsg)

	html, err := RenderHTML(layout)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.%s", dsg.ID, format)
	message := fmt.Sprintf("export %s as %s", dsg.ID, format)

	var content []byte
	switch format {
	case FormatHTML:
		content = html
	case FormatPNG:
		if e.rasterizer == nil {
			return "", fmt.Errorf("png export requires a raster service endpoint")
		}
		content, err = e.rasterizer.Rasterize(ctx, html)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}

	path, err := e.workspace.WriteAndCommit(name, content, message)
	if err != nil {
		return "", err
	}

	e.log.WithFields(map[string]interface{}{
		"design": dsg.ID,
		"format": string(format),
		"path":   path,
	}).Info("design exported")

	return path, nil
}
