// Package pipeline turns a project catalog into rendered artifacts.
//
// The CLI and the HTTP server share one [Runner] so both go through the
// same layout → compose → render steps and the same artifact cache:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Render(ctx, catalog, pipeline.Options{
//	    Format:   pipeline.FormatSVG,
//	    Selected: "kiel-gaarden",
//	})
//	os.Stdout.Write(res.Artifact)
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/ornatree/pkg/cache"
	"github.com/matzehuels/ornatree/pkg/errors"
	"github.com/matzehuels/ornatree/pkg/render/palette"
	"github.com/matzehuels/ornatree/pkg/render/tree"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatHTML: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// DefaultScale is the PNG scale factor when none is given.
const DefaultScale = 2.0

// ContentType returns the MIME type for format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Options configures one render.
type Options struct {
	Format   string          `json:"format"`
	Selected string          `json:"selected,omitempty"`
	Palette  palette.Palette `json:"palette"`
	Scale    float64         `json:"scale,omitempty"`

	// Hover adds CSS hover enlargement to SVG output.
	Hover bool `json:"hover,omitempty"`
	// Links wraps SVG markers in selection links (?selected=id).
	Links bool `json:"links,omitempty"`
	// Title is the HTML document title.
	Title string `json:"title,omitempty"`

	// Refresh bypasses the cache lookup but still stores the result.
	Refresh bool `json:"-"`
}

// ValidateAndSetDefaults normalizes the format, fills palette gaps and
// checks every field.
func (o *Options) ValidateAndSetDefaults() error {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if !ValidFormats[o.Format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (use svg, json, html, png or pdf)", o.Format)
	}
	if o.Selected != "" {
		if err := errors.ValidateID(o.Selected); err != nil {
			return err
		}
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if o.Format == FormatPNG && o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.Palette = o.Palette.WithDefaults()
	return o.Palette.Validate()
}

func (o Options) artifactKeyOpts() cache.ArtifactKeyOpts {
	pal, _ := encodePalette(o.Palette)
	opts := cache.ArtifactKeyOpts{
		Format:      o.Format,
		Selected:    o.Selected,
		PaletteHash: cache.Hash(pal),
		Scale:       o.Scale,
		Hover:       o.Hover,
		Links:       o.Links || o.Format == FormatHTML,
	}
	if o.Format == FormatHTML {
		opts.Title = o.Title
	}
	return opts
}

// Result is the output of [Runner.Render].
type Result struct {
	Artifact    []byte
	ContentType string
	// Scene is only set on a cache miss; hits skip composition.
	Scene    *tree.Scene
	Stats    Stats
	CacheHit bool
	CacheKey string
}

// Stats holds timings and sizes of one run.
type Stats struct {
	Ornaments  int
	Fallbacks  int
	Bytes      int
	LayoutTime time.Duration
	RenderTime time.Duration
}
