// Package pkg holds the ornatree libraries.
//
// # Overview
//
// ornatree hangs projects on a tree: every project in a catalog becomes one
// ornament, scattered deterministically over a triangular silhouette so that
// markers do not overlap. The packages are layered:
//
//  1. [placement] - the layout generator (count in, positions out)
//  2. [selection] - the single-selection holder
//  3. [project] - the catalog of projects behind the ornaments
//  4. [render] - scene composition and the SVG, JSON and HTML sinks
//  5. [pipeline] - catalog → layout → artifact, with caching
//  6. [server] - the HTTP surface
//
// Supporting packages: [cache], [config], [errors], [observability] and
// [buildinfo].
//
// # Data flow
//
//	project.Catalog ──count──▶ placement.Generator ──positions──▶ tree.Scene
//	                                                                 │
//	                   selection.Selection ──selected id─────────────┤
//	                                                                 ▼
//	                                                sink.RenderSVG / RenderHTML
//
// # Quick Start
//
//	gen := placement.NewGenerator(placement.Default())
//	scene := tree.Compose(project.Sample(), gen, selection.Of("koeln-ehrenfeld"))
//	svg := sink.RenderSVG(scene)
//
// Or let the pipeline do it, including caching:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	res, err := runner.Render(ctx, project.Sample(), pipeline.Options{Format: "html"})
//
// [placement]: github.com/matzehuels/ornatree/pkg/placement
// [selection]: github.com/matzehuels/ornatree/pkg/selection
// [project]: github.com/matzehuels/ornatree/pkg/project
// [render]: github.com/matzehuels/ornatree/pkg/render
// [pipeline]: github.com/matzehuels/ornatree/pkg/pipeline
// [server]: github.com/matzehuels/ornatree/pkg/server
// [cache]: github.com/matzehuels/ornatree/pkg/cache
// [config]: github.com/matzehuels/ornatree/pkg/config
// [errors]: github.com/matzehuels/ornatree/pkg/errors
// [observability]: github.com/matzehuels/ornatree/pkg/observability
// [buildinfo]: github.com/matzehuels/ornatree/pkg/buildinfo
package pkg
