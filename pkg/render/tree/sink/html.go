package sink

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/ornatree/pkg/project"
	"github.com/matzehuels/ornatree/pkg/render/palette"
	"github.com/matzehuels/ornatree/pkg/render/tree"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  html, body { margin: 0; height: 100%; font-family: system-ui, sans-serif; background: {{.Palette.SkyTop}}; }
  .stage { position: absolute; inset: 0; display: flex; align-items: center; justify-content: center; }
  .stage svg { width: 100%; max-width: 1100px; height: 100%; max-height: 1080px; }
  .panel { position: absolute; top: 0; right: 0; height: 100%; width: 420px; max-width: 100%; background: #fff;
           box-shadow: 0 0 40px rgba(0,0,0,.25); display: flex; flex-direction: column; }
  .panel header { background: {{.Palette.Panel}}; color: #fff; padding: 24px 32px; position: relative; }
  .badge { display: inline-block; padding: 4px 12px; border-radius: 999px; font-size: 12px; font-weight: 700;
           text-transform: uppercase; letter-spacing: .1em; background: {{.Palette.Selected}}; color: {{.Palette.Panel}}; }
  .panel h1 { margin: 8px 0 0; font-size: 30px; }
  .close { position: absolute; right: 24px; top: 50%; transform: translateY(-50%); color: rgba(255,255,255,.7);
           text-decoration: none; font-size: 24px; }
  .body { flex: 1; overflow-y: auto; padding: 32px; color: {{.Palette.Text}}; line-height: 1.75; }
  .body h2 { color: #1f2937; margin: 0 0 12px; }
  .rule { height: 6px; width: 96px; border-radius: 999px; background: {{.Palette.Ornament}}; margin-bottom: 24px; }
  footer { padding: 24px; border-top: 1px solid #f3f4f6; background: #f9fafb; }
  .more { display: block; text-align: center; padding: 12px; border-radius: 999px; font-weight: 700; font-size: 18px;
          color: #fff; background: {{.Palette.Ornament}}; text-decoration: none; }
</style>
</head>
<body>
<div class="stage">{{.SVG}}</div>
{{with .Project}}<aside class="panel" data-project="{{.ID}}">
  <header>
    <a class="close" href="{{$.CloseURL}}" aria-label="{{$.CloseLabel}}">&times;</a>
    {{if .Region}}<span class="badge">{{.Region}}</span>{{end}}
    <h1>{{.City}}</h1>
  </header>
  <div class="body">
    <h2>{{.Name}}</h2>
    <div class="rule"></div>
    <p>{{.Description}}</p>
  </div>
  {{if .Link}}<footer><a class="more" href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{$.MoreLabel}}</a></footer>{{end}}
</aside>{{end}}
</body>
</html>
`))

// HTMLOption configures [RenderHTML].
type HTMLOption func(*htmlPage)

type htmlPage struct {
	Title      string
	CloseURL   string
	CloseLabel string
	MoreLabel  string
	Palette    palette.Palette
	SVG        template.HTML
	Project    *project.Project

	svgOpts []SVGOption
}

// WithTitle sets the document title.
func WithTitle(title string) HTMLOption { return func(p *htmlPage) { p.Title = title } }

// WithCloseURL sets where the panel's close button points.
func WithCloseURL(u string) HTMLOption { return func(p *htmlPage) { p.CloseURL = u } }

// WithPagePalette sets the page colours and passes them to the embedded SVG.
func WithPagePalette(pal palette.Palette) HTMLOption {
	return func(p *htmlPage) {
		p.Palette = pal.WithDefaults()
		p.svgOpts = append(p.svgOpts, WithPalette(pal))
	}
}

// WithSVGOptions passes options through to the embedded SVG.
func WithSVGOptions(opts ...SVGOption) HTMLOption {
	return func(p *htmlPage) { p.svgOpts = append(p.svgOpts, opts...) }
}

// RenderHTML renders a standalone page: the tree SVG plus, when a project
// is selected, its detail panel.
func RenderHTML(s tree.Scene, opts ...HTMLOption) ([]byte, error) {
	page := htmlPage{
		Title:      "Projektbaum",
		CloseURL:   "?",
		CloseLabel: "Schließen",
		MoreLabel:  "Mehr erfahren",
		Palette:    palette.Default(),
		Project:    s.Selected,
	}
	for _, opt := range opts {
		opt(&page)
	}
	// RenderSVG escapes every catalog-provided string.
	page.SVG = template.HTML(RenderSVG(s, page.svgOpts...)) //nolint:gosec

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
