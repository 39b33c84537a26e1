package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ornatree/pkg/cache"
	"github.com/matzehuels/ornatree/pkg/server"
)

// serveCommand starts the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [catalog.toml]",
		Short: "Serve the interactive tree over HTTP",
		Long: `Serve the interactive tree over HTTP.

Open / in a browser and click an ornament to open its detail panel. The
selection is carried in the URL (?selected=<id>), so links can be shared.

The server uses the configured cache backend, except that the file backend
is swapped for an in-process cache.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args, addr, noCache)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, args []string, addr string, noCache bool) error {
	cat, source, err := c.loadCatalog(args)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	cfg := c.config()
	if cfg.Cache.Backend == cache.BackendFile {
		cfg.Cache.Backend = cache.BackendMemory
	}
	c.cfg = cfg
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	opts := server.Options{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Title:           cfg.Server.Title,
		Palette:         cfg.Palette,
	}
	if addr != "" {
		opts.Addr = addr
	}

	printInfo("Serving %d projects from %s", cat.Len(), source)
	printKeyValue("address", StyleLink.Render(displayURL(opts.Addr)))
	printNewline()

	return server.New(runner, cat, c.Logger, opts).Run(ctx)
}

// displayURL turns a listen address into a clickable URL.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
