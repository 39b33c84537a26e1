// Package sink provides output format renderers for tree scenes.
//
// A "sink" transforms a composed [tree.Scene] into a final output format:
//
//   - SVG: the tree with one marker per project ([RenderSVG])
//   - JSON: positions plus placement diagnostics ([RenderJSON])
//   - HTML: a standalone page with the SVG and the detail panel of the
//     selected project ([RenderHTML])
//
// PNG and PDF are produced from the SVG by
// [github.com/matzehuels/ornatree/pkg/render.ToPNG] and
// [github.com/matzehuels/ornatree/pkg/render.ToPDF].
//
// # SVG Options
//
//   - [WithPalette]: colours for markers, tree and background
//   - [WithoutSilhouette]: markers only, for overlaying on existing artwork
//   - [WithLinks]: wrap each marker in a link (used by the HTTP surface to
//     turn a click into a selection)
//   - [WithHover]: CSS hover enlargement
//
// Basic usage:
//
//	s := tree.Compose(catalog, generator, sel)
//	svg := sink.RenderSVG(s, sink.WithPalette(p), sink.WithHover())
//
// [tree.Scene]: github.com/matzehuels/ornatree/pkg/render/tree.Scene
package sink
