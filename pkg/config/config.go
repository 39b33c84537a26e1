// Package config loads ornatree settings from TOML files.
//
// Files are read in order and later files override earlier ones:
//
//  1. $XDG_CONFIG_HOME/ornatree/config.toml
//  2. ./config.toml
//
// An explicit --config path replaces the search. Placement constants are
// not configurable.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/matzehuels/ornatree/pkg/cache"
	"github.com/matzehuels/ornatree/pkg/errors"
	"github.com/matzehuels/ornatree/pkg/render/palette"
)

const (
	appName  = "ornatree"
	fileName = "config.toml"
)

type Config struct {
	// Catalog is the default catalog file. Empty uses the built-in sample.
	Catalog string          `koanf:"catalog"`
	Palette palette.Palette `koanf:"palette"`
	Server  ServerConfig    `koanf:"server"`
	Cache   CacheConfig     `koanf:"cache"`

	// Sources lists the files that were actually read.
	Sources []string `koanf:"-"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Title           string        `koanf:"title"`
}

type CacheConfig struct {
	Backend  string        `koanf:"backend"` // "none", "memory", "file" or "redis"
	Dir      string        `koanf:"dir"`
	RedisURL string        `koanf:"redis_url"`
	Prefix   string        `koanf:"prefix"`
	TTL      time.Duration `koanf:"ttl"`
}

// Options converts the section into cache.New options.
func (c CacheConfig) Options() cache.Options {
	return cache.Options{Backend: c.Backend, Dir: c.Dir, RedisURL: c.RedisURL, Prefix: c.Prefix}
}

// Default returns the settings used when no file sets a key.
func Default() *Config {
	return &Config{
		Palette: palette.Default(),
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			Title:           "Projektbaum",
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
			Dir:     filepath.Join(xdg.CacheHome, appName),
			Prefix:  cache.DefaultRedisPrefix,
			TTL:     cache.TTLArtifact,
		},
	}
}

// Paths returns the search path, lowest priority first.
func Paths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, fileName),
		fileName,
	}
}

// Load reads path, or the search path when path is empty.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := errors.ValidatePath(path); err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return LoadFiles(path)
	}

	var existing []string
	for _, p := range Paths() {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	return LoadFiles(existing...)
}

// LoadFiles merges paths over the defaults and validates the result. Every
// path must exist.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for _, p := range paths {
		if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", p)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	cfg.Sources = paths
	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.Cache.Dir = expandPath(cfg.Cache.Dir)
	cfg.Palette = cfg.Palette.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Palette.Validate(); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"cache.ttl":               c.Cache.TTL,
	} {
		if d < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s cannot be negative", name)
		}
	}

	switch c.Cache.Backend {
	case cache.BackendNone, cache.BackendMemory:
	case cache.BackendFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.dir is required for the file backend")
		}
	case cache.BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
		if u, err := url.Parse(c.Cache.RedisURL); err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url must be a redis:// or rediss:// URL")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache.backend %q is not one of none, memory, file, redis", c.Cache.Backend)
	}
	return nil
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
