package placement

import (
	"slices"
	"sync"
)

// Generator memoizes layouts per item count. It is safe for concurrent use.
// Returned slices are copies; callers may modify them freely.
type Generator struct {
	cfg Config

	mu   sync.Mutex
	memo map[int]Layout
}

// NewGenerator returns a Generator for cfg.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg, memo: make(map[int]Layout)}
}

// Config returns the configuration the generator places with.
func (g *Generator) Config() Config { return g.cfg }

// Plan returns the layout for count items, computing it on first use.
func (g *Generator) Plan(count int) Layout {
	count = max(count, 0)

	g.mu.Lock()
	l, ok := g.memo[count]
	if !ok {
		l = Build(g.cfg, count)
		g.memo[count] = l
	}
	g.mu.Unlock()

	return Layout{
		Slots:     slices.Clone(l.Slots),
		RowSizes:  slices.Clone(l.RowSizes),
		Fallbacks: l.Fallbacks,
	}
}

// Generate returns the positions for count items.
func (g *Generator) Generate(count int) []Position {
	return g.Plan(count).Positions()
}

// Cached reports whether a layout for count is already memoized.
func (g *Generator) Cached(count int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.memo[max(count, 0)]
	return ok
}
