package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ornatree/pkg/pipeline"
)

// layoutCommand writes the placement of a catalog as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		count   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [catalog.toml]",
		Short: "Compute ornament positions for a catalog",
		Long: `Compute ornament positions for a catalog.

The output lists one slot per project in catalog order: its row and column,
the nominal position, the final jittered position, how many candidates were
tried, and whether the ornament fell back to its nominal slot.

Without a catalog the built-in sample is used. --count places that many
anonymous items instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			countSet := cmd.Flags().Changed("count")
			return c.runLayout(cmd.Context(), args, output, count, countSet, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "place N items instead of the catalog")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, args []string, output string, count int, countSet, noCache bool) error {
	cat, source, err := c.loadCatalog(args)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if !countSet {
		count = cat.Len()
	}

	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	l, cacheHit, err := runner.Layout(ctx, count)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	annotate := cat
	if countSet && count != cat.Len() {
		annotate = nil
	}
	data, err := pipeline.NewLayoutDocument(runner.Generator.Config(), l, annotate).Encode()
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}

	if output == "" {
		_, err := c.out.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Placed %d ornaments from %s", l.Len(), source))

	printSuccess("Layout complete")
	printFile(output)
	printStats(l.Len(), l.Fallbacks, len(data), cacheHit)
	if l.Fallbacks > 0 {
		printWarning("%d of %d ornaments did not find a free spot and sit on their row slot", l.Fallbacks, l.Len())
	}
	printNewline()
	printNextStep("Render", appName+" render "+catalogArg(args))
	return nil
}

// catalogArg echoes the catalog argument for next-step hints.
func catalogArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
