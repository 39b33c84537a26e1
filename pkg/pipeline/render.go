package pipeline

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/matzehuels/ornatree/pkg/render"
	"github.com/matzehuels/ornatree/pkg/render/palette"
	"github.com/matzehuels/ornatree/pkg/render/tree"
	"github.com/matzehuels/ornatree/pkg/render/tree/sink"
)

// RenderScene writes s in the format named by opts. opts must already be
// validated.
func RenderScene(ctx context.Context, s tree.Scene, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithPalette(opts.Palette)}
	if opts.Hover {
		svgOpts = append(svgOpts, sink.WithHover())
	}
	if opts.Links {
		svgOpts = append(svgOpts, sink.WithLinks(SelectLink))
	}

	switch opts.Format {
	case FormatJSON:
		return sink.RenderJSON(s)
	case FormatHTML:
		htmlOpts := []sink.HTMLOption{
			sink.WithPagePalette(opts.Palette),
			sink.WithSVGOptions(sink.WithHover(), sink.WithLinks(SelectLink)),
		}
		if opts.Title != "" {
			htmlOpts = append(htmlOpts, sink.WithTitle(opts.Title))
		}
		return sink.RenderHTML(s, htmlOpts...)
	case FormatPNG:
		return render.ToPNG(ctx, sink.RenderSVG(s, svgOpts...), opts.Scale)
	case FormatPDF:
		return render.ToPDF(ctx, sink.RenderSVG(s, svgOpts...))
	default:
		return sink.RenderSVG(s, svgOpts...), nil
	}
}

// SelectLink is the href a marker points at: clicking an unselected marker
// selects it, clicking the selected one clears the selection.
func SelectLink(o tree.Ornament) string {
	if o.Selected {
		return "?"
	}
	return "?selected=" + url.QueryEscape(o.Project.ID)
}

func encodePalette(p palette.Palette) ([]byte, error) {
	return json.Marshal(p)
}
