package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ornatree/pkg/cache"
	"github.com/matzehuels/ornatree/pkg/errors"
	"github.com/matzehuels/ornatree/pkg/observability"
	"github.com/matzehuels/ornatree/pkg/placement"
	"github.com/matzehuels/ornatree/pkg/project"
	"github.com/matzehuels/ornatree/pkg/render/tree"
	"github.com/matzehuels/ornatree/pkg/selection"
)

// Runner executes layouts and renders with caching. It holds no per-request
// state, so one Runner may serve many goroutines.
type Runner struct {
	Cache     cache.Cache
	Keyer     cache.Keyer
	Logger    *log.Logger
	Generator *placement.Generator
	// TTL overrides the artifact lifetime; zero uses cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner fills nil arguments with a NullCache, a DefaultKeyer and the
// default logger. The generator uses the default placement constants.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
		Generator: placement.NewGenerator(placement.Default()),
	}
}

// Layout places count items, consulting the cache first.
func (r *Runner) Layout(ctx context.Context, count int) (placement.Layout, bool, error) {
	if count < 0 {
		count = 0
	}
	key := r.Keyer.LayoutKey(r.configHash(), count)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var l placement.Layout
		if err := json.Unmarshal(data, &l); err == nil && l.Len() == count {
			observability.Cache().OnCacheHit(ctx, "layout")
			return l, true, nil
		}
	} else if err != nil {
		r.Logger.Warn("cache lookup failed", "key", "layout", "err", err)
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	l := r.plan(ctx, count)
	if data, err := json.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache write failed", "key", "layout", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return l, false, nil
}

// configHash identifies the generator's placement constants, so layouts
// cached by a runner with different constants are never reused.
func (r *Runner) configHash() string {
	data, _ := json.Marshal(r.Generator.Config())
	return cache.Hash(data)
}

func (r *Runner) plan(ctx context.Context, count int) placement.Layout {
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, count)
	l := r.Generator.Plan(count)
	elapsed := time.Since(start)
	observability.Pipeline().OnLayoutComplete(ctx, count, l.Fallbacks, elapsed)

	r.Logger.Debug("placed ornaments", "count", count, "fallbacks", l.Fallbacks, "duration", elapsed)
	if l.Fallbacks > 0 {
		r.Logger.Warn("some ornaments fell back to their nominal slot", "fallbacks", l.Fallbacks, "count", count)
	}
	return l
}

// Scene composes c with selected marked. An empty id selects nothing; an
// unknown id is a PROJECT_NOT_FOUND error.
func (r *Runner) Scene(ctx context.Context, c *project.Catalog, selected string) (tree.Scene, error) {
	var sel selection.Selection
	if selected != "" {
		if _, err := c.Find(selected); err != nil {
			return tree.Scene{}, err
		}
		sel.Select(selected)
	}
	if !r.Generator.Cached(c.Len()) {
		r.plan(ctx, c.Len())
	}
	return tree.Compose(c, r.Generator, sel), nil
}

// Render produces one artifact for c, serving it from the cache when the
// catalog, selection and options match a previous run.
func (r *Runner) Render(ctx context.Context, c *project.Catalog, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no catalog")
	}

	catalogData, err := c.Encode()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash catalog")
	}
	key := r.Keyer.ArtifactKey(cache.Hash(catalogData), opts.artifactKeyOpts())
	res := &Result{ContentType: ContentType(opts.Format), CacheKey: key}

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache lookup failed", "format", opts.Format, "err", err)
		}
		if err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			res.Artifact = data
			res.CacheHit = true
			res.Stats.Ornaments = c.Len()
			res.Stats.Fallbacks = r.Generator.Plan(c.Len()).Fallbacks
			res.Stats.Bytes = len(data)
			r.Logger.Debug("artifact from cache", "format", opts.Format, "selected", opts.Selected)
			return res, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	layoutStart := time.Now()
	scene, err := r.Scene(ctx, c, opts.Selected)
	if err != nil {
		return nil, err
	}
	res.Stats.LayoutTime = time.Since(layoutStart)
	res.Stats.Ornaments = len(scene.Ornaments)
	res.Stats.Fallbacks = scene.Fallbacks
	res.Scene = &scene

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	data, err := RenderScene(ctx, scene, opts)
	res.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, len(data), res.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	res.Artifact = data
	res.Stats.Bytes = len(data)

	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.TTLArtifact
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "format", opts.Format, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	r.Logger.Debug("rendered artifact",
		"format", opts.Format,
		"ornaments", res.Stats.Ornaments,
		"bytes", res.Stats.Bytes,
		"duration", res.Stats.RenderTime)
	return res, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
