package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/forgeline/brandforge/internal/render"
)

var htmlTemplates = template.Must(template.New("export").Parse(`
{{- define "split" -}}
<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Headline}}</title></head>
<body style="margin:0;background:{{.Style.Background}};font-family:{{.Style.BodyFont}}">
<section style="display:flex;align-items:center;gap:48px;padding:64px">
  <div style="flex:1">
    {{if .LogoURL}}<img src="{{.LogoURL}}" alt="logo" style="height:40px">{{end}}
    <h1 style="color:{{.Style.HeadlineColor}};font-family:{{.Style.HeadlineFont}}">{{.Headline}}</h1>
    {{if .Subheadline}}<h2 style="color:{{.Style.SubheadlineColor}}">{{.Subheadline}}</h2>{{end}}
    {{if .Body}}<p style="color:{{.Style.BodyColor}}">{{.Body}}</p>{{end}}
    <a href="#" style="display:inline-block;padding:12px 24px;background:{{.Style.CTABackground}};color:{{.Style.CTAColor}};text-decoration:none">{{.CTAText}}</a>
  </div>
  <div style="flex:1">
    {{if .ImagePlaceholder}}<div style="aspect-ratio:4/3;background:#e5e5e5"></div>{{else}}<img src="{{.ImageURL}}" alt="" style="width:100%">{{end}}
  </div>
</section>
</body>
</html>
{{- end -}}

{{- define "centered" -}}
<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Headline}}</title></head>
<body style="margin:0;background:{{.Style.Background}};font-family:{{.Style.BodyFont}}">
<section style="position:relative;text-align:center;padding:96px 24px">
  {{if .BackgroundImageURL}}<img src="{{.BackgroundImageURL}}" alt="" style="position:absolute;inset:0;width:100%;height:100%;object-fit:cover;opacity:0.35">{{end}}
  <div style="position:relative">
    {{if .LogoURL}}<img src="{{.LogoURL}}" alt="logo" style="height:40px">{{end}}
    <h1 style="color:{{.Style.HeadlineColor}};font-family:{{.Style.HeadlineFont}}">{{.Headline}}</h1>
    {{if .Subheadline}}<h2 style="color:{{.Style.SubheadlineColor}}">{{.Subheadline}}</h2>{{end}}
    <a href="#" style="display:inline-block;padding:12px 24px;background:{{.Style.CTABackground}};color:{{.Style.CTAColor}};text-decoration:none">{{.CTAText}}</a>
  </div>
</section>
</body>
</html>
{{- end -}}

{{- define "unsupported" -}}
<!doctype html>
<html>
<head><meta charset="utf-8"><title>Unsupported template</title></head>
<body style="font-family:sans-serif;padding:64px">
<p>Unsupported template</p>
<p>type: {{.TemplateType}}</p>
</body>
</html>
{{- end -}}
`))

// RenderHTML produces a standalone HTML document for a layout. Slot
// values pass through html/template escaping, so user text cannot
// inject markup.
func RenderHTML(layout render.Layout) ([]byte, error) {
	var name string
	switch layout.(type) {
	case render.SplitLayout:
		name = "split"
	case render.CenteredLayout:
		name = "centered"
	case render.UnsupportedLayout:
		name = "unsupported"
	default:
		return nil, fmt.Errorf("no HTML template for layout variant %q", layout.Variant())
	}

	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, name, layout); err != nil {
		return nil, fmt.Errorf("rendering %s layout: %w", name, err)
	}
	return buf.Bytes(), nil
}
