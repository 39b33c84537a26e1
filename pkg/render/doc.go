// Package render holds the ornament tree renderers and shared format
// conversion.
//
// The scene model lives in [tree]; output formats (SVG, JSON, HTML) in
// [tree/sink]; colours in [palette]. [ToPDF] and [ToPNG] convert any SVG
// through the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(scene)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [tree]: github.com/matzehuels/ornatree/pkg/render/tree
// [tree/sink]: github.com/matzehuels/ornatree/pkg/render/tree/sink
// [palette]: github.com/matzehuels/ornatree/pkg/render/palette
package render
