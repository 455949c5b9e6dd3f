package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/render"
)

func splitTemplate() design.Template {
	return design.Template{
		ID:   "web_hero_split",
		Name: "Split hero",
		Type: "web_hero",
		Slots: map[string]design.SlotSpec{
			"headline": {Type: design.SlotText},
			"cta_text": {Type: design.SlotCTA},
			"image":    {Type: design.SlotImage},
		},
		Style: design.StyleSpec{
			Layout: "split",
			Bindings: map[string]string{
				render.PropBackground:    "colors.bg",
				render.PropHeadlineColor: "colors.primary",
			},
		},
	}
}

func TestRenderHTMLSplit(t *testing.T) {
	dsg := design.Design{
		ID:    "d-1",
		Slots: map[string]string{"headline": "Ship it", "image": "https://cdn.example/hero.png"},
		Tokens: design.TokenSet{
			Colors: map[string]string{"bg": "#fafafa", "primary": "#112233"},
		},
	}

	html, err := RenderHTML(render.Render(splitTemplate(), dsg))
	require.NoError(t, err)

	doc := string(html)
	assert.Contains(t, doc, "Ship it")
	assert.Contains(t, doc, "background:#fafafa")
	assert.Contains(t, doc, "color:#112233")
	assert.Contains(t, doc, "https://cdn.example/hero.png")
	assert.Contains(t, doc, render.PlaceholderCTA)
}

func TestRenderHTMLEscapesSlotText(t *testing.T) {
	dsg := design.Design{
		ID:    "d-1",
		Slots: map[string]string{"headline": `<script>alert("x")</script>`},
	}

	html, err := RenderHTML(render.Render(splitTemplate(), dsg))
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
}

func TestRenderHTMLUnsupported(t *testing.T) {
	html, err := RenderHTML(render.UnsupportedLayout{TemplateType: "story_ad"})
	require.NoError(t, err)
	assert.Contains(t, string(html), "Unsupported template")
	assert.Contains(t, string(html), "type: story_ad")
}

func TestWorkspaceCommitsEachExport(t *testing.T) {
	dir := t.TempDir()

	ws, err := OpenWorkspace(dir)
	require.NoError(t, err)

	path, err := ws.WriteAndCommit("d-1.html", []byte("<html>one</html>"), "export d-1 as html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "d-1.html"), path)

	_, err = ws.WriteAndCommit("d-1.html", []byte("<html>two</html>"), "export d-1 as html")
	require.NoError(t, err)

	// Reopening finds the existing repository instead of re-initializing.
	ws2, err := OpenWorkspace(dir)
	require.NoError(t, err)

	repo, err := git.PlainOpen(ws2.Dir())
	require.NoError(t, err)
	iter, err := repo.Log(&git.LogOptions{})
	require.NoError(t, err)

	count := 0
	for {
		if _, err := iter.Next(); err != nil {
			break
		}
		count++
	}
	assert.Equal(t, 2, count)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>two</html>", string(content))
}

type stubRasterizer struct {
	got []byte
}

func (s *stubRasterizer) Rasterize(_ context.Context, html []byte) ([]byte, error) {
	s.got = html
	return []byte("PNG-BYTES"), nil
}

func TestExporterHTMLAndPNG(t *testing.T) {
	ws, err := OpenWorkspace(t.TempDir())
	require.NoError(t, err)

	raster := &stubRasterizer{}
	exporter := NewExporter(ws, raster, nil)

	dsg := design.Design{ID: "d-9", Slots: map[string]string{"headline": "Hello"}}

	htmlPath, err := exporter.Export(context.Background(), splitTemplate(), dsg, FormatHTML)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(htmlPath) || filepath.Dir(htmlPath) != "")
	assert.FileExists(t, htmlPath)

	pngPath, err := exporter.Export(context.Background(), splitTemplate(), dsg, FormatPNG)
	require.NoError(t, err)

	png, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.Equal(t, "PNG-BYTES", string(png))
	assert.Contains(t, string(raster.got), "Hello")
}

func TestExporterPNGWithoutRasterizer(t *testing.T) {
	ws, err := OpenWorkspace(t.TempDir())
	require.NoError(t, err)

	exporter := NewExporter(ws, nil, nil)
	_, err = exporter.Export(context.Background(), splitTemplate(), design.Design{ID: "d-1"}, FormatPNG)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("html")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, format)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}
