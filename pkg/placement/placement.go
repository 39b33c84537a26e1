package placement

import "math"

// Position is a point in canvas coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between p and q.
func (p Position) Distance(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Slot describes how one item was placed.
type Slot struct {
	Index    int      `json:"index"`
	Row      int      `json:"row"`
	Column   int      `json:"column"`
	Nominal  Position `json:"nominal"`
	Position Position `json:"position"`
	Attempts int      `json:"attempts"`
	Fallback bool     `json:"fallback,omitempty"`
}

// Layout is the result of [Build]. Slots are index-aligned with the input
// items.
type Layout struct {
	Slots     []Slot `json:"slots"`
	RowSizes  []int  `json:"row_sizes"`
	Fallbacks int    `json:"fallbacks"`
}

// Positions returns the final position of every slot in input order.
func (l Layout) Positions() []Position {
	out := make([]Position, len(l.Slots))
	for i, s := range l.Slots {
		out[i] = s.Position
	}
	return out
}

// Len returns the number of placed items.
func (l Layout) Len() int { return len(l.Slots) }

// Generate places count items using [Default] and returns their positions.
func Generate(count int) []Position {
	return Build(Default(), count).Positions()
}

// Rows returns the number of items in each band, bottom band first.
// Every band holds ceil(count/rows) items until the items run out; later
// bands are empty. Negative counts are treated as zero.
func Rows(cfg Config, count int) []int {
	cfg = cfg.normalized()
	sizes := make([]int, cfg.Rows)
	if count <= 0 {
		return sizes
	}
	perRow := (count + cfg.Rows - 1) / cfg.Rows
	remaining := count
	for row := range sizes {
		if remaining == 0 {
			break
		}
		sizes[row] = min(perRow, remaining)
		remaining -= sizes[row]
	}
	return sizes
}

// Build places count items inside cfg's envelope. It always returns exactly
// max(count, 0) slots and never fails.
func Build(cfg Config, count int) Layout {
	cfg = cfg.normalized()
	sizes := Rows(cfg, count)
	l := Layout{
		Slots:    make([]Slot, 0, max(count, 0)),
		RowSizes: sizes,
	}
	placed := make([]Position, 0, max(count, 0))

	index := 0
	for row, k := range sizes {
		if k == 0 {
			continue
		}
		ratio := float64(row) / float64(cfg.Rows)
		y := cfg.BottomY - ratio*cfg.Height()
		spacing := cfg.widthAtRatio(ratio) / float64(k)

		for col := range k {
			nominal := Position{
				X: cfg.CenterX + (float64(col)-float64(k-1)/2)*spacing,
				Y: y,
			}
			slot := Slot{Index: index, Row: row, Column: col, Nominal: nominal}

			if p, attempts, ok := cfg.search(index, nominal, placed); ok {
				slot.Position, slot.Attempts = p, attempts
			} else {
				slot.Position, slot.Attempts, slot.Fallback = nominal, attempts, true
				l.Fallbacks++
			}

			placed = append(placed, slot.Position)
			l.Slots = append(l.Slots, slot)
			index++
		}
	}
	return l
}

// search tries up to MaxAttempts jittered candidates around nominal and
// returns the first one that stays inside the envelope and clear of placed.
// The attempt count is returned in both branches.
func (c Config) search(index int, nominal Position, placed []Position) (Position, int, bool) {
	for attempt := range c.MaxAttempts {
		dx, dy := c.jitter(index, attempt)
		candidate := Position{X: nominal.X + dx, Y: nominal.Y + dy}
		if c.Contains(candidate) && c.clear(candidate, placed) {
			return candidate, attempt + 1, true
		}
	}
	return Position{}, c.MaxAttempts, false
}

func (c Config) clear(p Position, placed []Position) bool {
	for _, q := range placed {
		if p.Distance(q) < c.MinDistance {
			return false
		}
	}
	return true
}
