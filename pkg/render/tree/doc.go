// Package tree turns a project catalog and a placement into a drawable
// scene.
//
// A [Scene] is what every display collaborator consumes: one [Ornament] per
// project, index-aligned with the catalog, each carrying its canvas
// position, marker size and whether it is the selected one. Sinks in
// [github.com/matzehuels/ornatree/pkg/render/tree/sink] turn a scene into
// SVG, JSON or HTML; the terminal view draws it on a character grid.
//
// Interaction flows back through ids: [Scene.HitTest] maps a canvas point to
// the ornament under it, and the caller updates its own
// [selection.Selection] with that ornament's project id.
//
// [selection.Selection]: github.com/matzehuels/ornatree/pkg/selection.Selection
package tree
