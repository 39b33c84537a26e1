package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/ornatree/pkg/render/palette"
	"github.com/matzehuels/ornatree/pkg/render/tree"
)

const hoverCSS = `
    .ornament { cursor: pointer; transition: transform 0.2s ease; transform-box: fill-box; transform-origin: center; }
    .ornament:hover { transform: scale(1.1); }`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	palette    palette.Palette
	silhouette bool
	hover      bool
	link       func(tree.Ornament) string
}

// WithPalette sets the colours. Empty entries fall back to the defaults.
func WithPalette(p palette.Palette) SVGOption {
	return func(r *svgRenderer) { r.palette = p.WithDefaults() }
}

// WithoutSilhouette omits the background and tree outline.
func WithoutSilhouette() SVGOption { return func(r *svgRenderer) { r.silhouette = false } }

// WithHover enables CSS hover enlargement of markers.
func WithHover() SVGOption { return func(r *svgRenderer) { r.hover = true } }

// WithLinks wraps every marker in an <a> pointing at fn(ornament).
func WithLinks(fn func(tree.Ornament) string) SVGOption {
	return func(r *svgRenderer) { r.link = fn }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{palette: palette.Default(), silhouette: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders s as a standalone SVG document on the logical canvas.
// Markers are drawn in catalog order so later projects paint on top.
func RenderSVG(s tree.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" preserveAspectRatio="xMidYMid meet">`+"\n",
		s.Width, s.Height)

	r.renderDefs(&buf)
	if r.silhouette {
		r.renderBackdrop(&buf, s)
	}

	buf.WriteString(`  <g class="ornaments">` + "\n")
	for _, o := range s.Ornaments {
		r.renderOrnament(&buf, o)
	}
	buf.WriteString("  </g>\n")

	if r.hover {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", hoverCSS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <linearGradient id="sky" x1="0" y1="0" x2="0" y2="1"><stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></linearGradient>`+"\n",
		r.palette.SkyTop, r.palette.SkyBottom)
	buf.WriteString(`    <filter id="ornament-shadow" x="-50%" y="-50%" width="200%" height="200%"><feDropShadow dx="0" dy="2" stdDeviation="2" flood-opacity="0.3"/></filter>` + "\n")
	buf.WriteString(`    <filter id="tree-shadow" x="-20%" y="-20%" width="140%" height="140%"><feDropShadow dx="0" dy="10" stdDeviation="15" flood-opacity="0.1"/></filter>` + "\n")
	buf.WriteString("  </defs>\n")
}

func (r *svgRenderer) renderBackdrop(buf *bytes.Buffer, s tree.Scene) {
	fmt.Fprintf(buf, `  <rect class="sky" x="0" y="0" width="%.0f" height="%.0f" fill="url(#sky)"/>`+"\n", s.Width, s.Height)

	sil := s.Silhouette()
	fmt.Fprintf(buf, `  <g class="tree" filter="url(#tree-shadow)">`+"\n")
	fmt.Fprintf(buf, `    <rect class="trunk" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		sil.TrunkX, sil.TrunkY, sil.TrunkWidth, sil.TrunkHeight, r.palette.Trunk)
	fmt.Fprintf(buf, `    <polygon class="crown" points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		sil.Tip.X, sil.Tip.Y, sil.Right.X, sil.Right.Y, sil.Left.X, sil.Left.Y,
		r.palette.Tree, palette.Shade(r.palette.Tree, 0.25))
	buf.WriteString("  </g>\n")
}

func (r *svgRenderer) renderOrnament(buf *bytes.Buffer, o tree.Ornament) {
	stroke := r.palette.Stroke
	if o.Selected {
		stroke = r.palette.Selected
	}
	class := "ornament"
	if o.Selected {
		class += " selected"
	}

	id := escapeXML(o.Project.ID)
	fmt.Fprintf(buf, `    <g class="%s" id="ornament-%s" data-project="%s">`+"\n", class, id, id)
	if r.link != nil {
		fmt.Fprintf(buf, `      <a href="%s">`+"\n", escapeXML(r.link(o)))
	}
	fmt.Fprintf(buf, `      <title>%s</title>`+"\n", escapeXML(o.Project.Title()))
	fmt.Fprintf(buf, `      <circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s" stroke="%s" stroke-width="%.0f" filter="url(#ornament-shadow)"/>`+"\n",
		o.X, o.Y, o.Radius(), r.palette.Ornament, stroke, o.StrokeWidth())
	hx, hy, hr := o.Highlight()
	fmt.Fprintf(buf, `      <circle class="gloss" cx="%.2f" cy="%.2f" r="%.1f" fill="#FFFFFF" opacity="0.4"/>`+"\n", hx, hy, hr)
	if r.link != nil {
		buf.WriteString("      </a>\n")
	}
	buf.WriteString("    </g>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
