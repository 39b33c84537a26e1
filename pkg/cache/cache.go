// Package cache stores rendered artifacts so repeated renders of the same
// catalog, selection and palette are served without recomputation.
//
// Backends:
//   - [NullCache]: never stores anything
//   - [MemoryCache]: in-process map with TTL, used by the HTTP server
//   - [FileCache]: one file per entry under the XDG cache dir, used by the CLI
//   - [RedisCache]: shared cache for several server instances
package cache

import (
	"context"
	"time"
)

// Cache is the key/value contract every backend implements.
type Cache interface {
	// Get returns the stored bytes and whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error
	Close() error
}

// Backend names accepted by [New].
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend  string
	Dir      string // file backend
	RedisURL string // redis backend
	Prefix   string // redis key namespace
}

// New opens the backend named in opts.
func New(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendMemory:
		return NewMemoryCache(), nil
	case BackendFile:
		return NewFileCache(opts.Dir)
	case BackendRedis:
		return NewRedisCache(ctx, opts.RedisURL, opts.Prefix)
	default:
		return nil, ErrUnknownBackend
	}
}
