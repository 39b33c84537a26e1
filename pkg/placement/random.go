package placement

import "math"

// Seeded maps seed to a pseudo-random value in [0, 1) using
// frac(sin(seed) * 10000). The transform is fixed so layouts are
// reproducible across runs and platforms.
func Seeded(seed float64) float64 {
	v := math.Sin(seed) * 10000
	r := v - math.Floor(v)
	if r >= 1 {
		return 0
	}
	return r
}

const (
	axisX = 0
	axisY = 1
)

// seedFor derives the seed of one jitter axis. Seeds are distinct across
// items as long as MaxAttempts stays below 500.
func seedFor(index, attempt, axis int) float64 {
	return float64(index*1000 + attempt*2 + axis + 1)
}

// jitter returns the (dx, dy) displacement of one candidate.
func (c Config) jitter(index, attempt int) (dx, dy float64) {
	dx = (Seeded(seedFor(index, attempt, axisX)) - 0.5) * c.RandomXOffset
	dy = (Seeded(seedFor(index, attempt, axisY)) - 0.5) * c.RandomYOffset
	return dx, dy
}
