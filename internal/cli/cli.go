// Package cli implements the ornatree command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ornatree/pkg/buildinfo"
	"github.com/matzehuels/ornatree/pkg/cache"
	"github.com/matzehuels/ornatree/pkg/config"
	"github.com/matzehuels/ornatree/pkg/errors"
	"github.com/matzehuels/ornatree/pkg/observability"
	"github.com/matzehuels/ornatree/pkg/pipeline"
	"github.com/matzehuels/ornatree/pkg/project"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "ornatree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
	out        io.Writer
}

// New creates a CLI that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "ornatree hangs projects on a tree",
		Long: `ornatree renders a decorated tree where every ornament is one project.

Ornaments are scattered deterministically over the tree: the same catalog
always produces the same picture. Selecting an ornament opens its detail
panel in the HTML page, the terminal view, or the HTTP server.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/ornatree/config.toml, ./config.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Catalog
// =============================================================================

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	for _, src := range cfg.Sources {
		c.Logger.Debug("loaded config", "path", src)
	}

	hooks := newLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	return nil
}

// config returns the loaded config, or the defaults before PersistentPreRunE.
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg
}

// loadCatalog reads the catalog named on the command line, then the one
// from the config, then falls back to the built-in sample.
func (c *CLI) loadCatalog(args []string) (*project.Catalog, string, error) {
	path := c.config().Catalog
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		c.Logger.Debug("no catalog given, using the built-in sample")
		return project.Sample(), "sample", nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, "", err
	}
	cat, err := project.Load(path)
	if err != nil {
		return nil, "", err
	}
	c.Logger.Debug("loaded catalog", "path", path, "projects", cat.Len())
	return cat, path, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
// A cache that fails to open degrades to no caching.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	runner := pipeline.NewRunner(c.newCache(ctx, noCache), c.newKeyer(), c.Logger)
	runner.TTL = c.config().Cache.TTL
	return runner
}

// newKeyer scopes keys by cache.prefix. Redis applies the prefix itself.
func (c *CLI) newKeyer() cache.Keyer {
	cfg := c.config().Cache
	if cfg.Backend == cache.BackendRedis || cfg.Prefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, cfg.Prefix)
}

func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	cc, err := cache.New(ctx, c.config().Cache.Options())
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without", "backend", c.config().Cache.Backend, "err", err)
		return cache.NewNullCache()
	}
	return cc
}
