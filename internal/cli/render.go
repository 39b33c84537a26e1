package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ornatree/pkg/errors"
	"github.com/matzehuels/ornatree/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path (several)
	formats  []string // svg, json, html, png, pdf
	selected string   // project id to highlight
	scale    float64  // PNG scale factor
	hover    bool     // CSS hover enlargement in SVG
	links    bool     // wrap SVG markers in ?selected= links
	noCache  bool
	refresh  bool
}

// renderCommand renders the tree to one or more files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [catalog.toml]",
		Short: "Render the ornament tree to SVG, JSON, HTML, PNG or PDF",
		Long: `Render the ornament tree.

With --selected the project's ornament is enlarged and outlined, and the
HTML page opens its detail panel. PNG and PDF need rsvg-convert (librsvg).

Results are cached, so re-rendering an unchanged catalog is instant.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, html, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.selected, "selected", "s", "", "id of the project to highlight")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.hover, "hover", false, "enlarge ornaments on hover (svg)")
	cmd.Flags().BoolVar(&opts.links, "links", false, "link ornaments to ?selected=<id> (svg)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// parseFormats splits the --format flag. Empty means svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !pipeline.ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be svg, json, html, png or pdf)", f)
		}
	}
	return nil
}

// outputPath picks the file for format. A single format writes to base
// as given; several formats replace base's extension per format.
func outputPath(base, format string, multi bool) string {
	if base == "" {
		return appName + "." + format
	}
	if !multi {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}

func (c *CLI) runRender(ctx context.Context, args []string, opts *renderOpts) error {
	cat, source, err := c.loadCatalog(args)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	multi := len(opts.formats) > 1
	for _, format := range opts.formats {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var spinner *Spinner
		if format == pipeline.FormatPNG || format == pipeline.FormatPDF {
			spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Converting to %s...", strings.ToUpper(format)))
			spinner.Start()
		}

		prog := newProgress(c.Logger)
		res, err := runner.Render(ctx, cat, pipeline.Options{
			Format:   format,
			Selected: opts.selected,
			Palette:  c.config().Palette,
			Scale:    opts.scale,
			Hover:    opts.hover,
			Links:    opts.links,
			Title:    c.config().Server.Title,
			Refresh:  opts.refresh,
		})
		if spinner != nil {
			if err != nil {
				spinner.StopWithError(strings.ToUpper(format) + " conversion failed")
			} else {
				spinner.Stop()
			}
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}

		path := outputPath(opts.output, format, multi)
		if err := os.WriteFile(path, res.Artifact, 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		prog.done(fmt.Sprintf("Rendered %s from %s", path, source))

		printSuccess("Rendered %s", strings.ToUpper(format))
		printFile(path)
		printStats(res.Stats.Ornaments, res.Stats.Fallbacks, res.Stats.Bytes, res.CacheHit)
	}

	if opts.selected == "" {
		printNewline()
		printNextStep("Highlight a project", appName+" render --selected <id> "+catalogArg(args))
	}
	return nil
}
