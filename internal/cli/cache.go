package cli

import (
	"fmt"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ornatree/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cacheInfoCommand())

	return cmd
}

// cacheClearCommand flushes every cached layout and artifact.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layouts and renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config().Cache
			cc, err := cache.New(cmd.Context(), cfg.Options())
			if err != nil {
				return fmt.Errorf("open %s cache: %w", cfg.Backend, err)
			}
			defer cc.Close()

			before := -1
			if fc, ok := cc.(*cache.FileCache); ok {
				before, _, _ = fc.Size()
			}
			if err := cc.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			if before >= 0 {
				printSuccess("Cleared %d cached entries", before)
			} else {
				printSuccess("Cleared %s cache", cfg.Backend)
			}
			printDetail("Backend: %s", describeCache(cfg.Backend, cfg.Dir, cfg.RedisURL))
			return nil
		},
	}
}

// cacheInfoCommand prints where the cache lives and how big it is.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the cache backend and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config().Cache
			printKeyValue("backend", cfg.Backend)
			printKeyValue("location", describeCache(cfg.Backend, cfg.Dir, cfg.RedisURL))
			printKeyValue("ttl", cfg.TTL.String())

			if cfg.Backend != cache.BackendFile {
				return nil
			}
			fc, err := cache.NewFileCache(cfg.Dir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			n, size, err := fc.Size()
			if err != nil {
				return fmt.Errorf("inspect cache: %w", err)
			}
			printKeyValue("entries", fmt.Sprintf("%d", n))
			printKeyValue("size", humanize.Bytes(uint64(size)))
			return nil
		},
	}
}

func describeCache(backend, dir, redisURL string) string {
	switch backend {
	case cache.BackendFile:
		return dir
	case cache.BackendRedis:
		if u, err := url.Parse(redisURL); err == nil {
			return u.Redacted()
		}
		return redisURL
	case cache.BackendMemory:
		return "in-process (cleared on exit)"
	}
	return "disabled"
}
