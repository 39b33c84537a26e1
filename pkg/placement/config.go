package placement

// Canvas dimensions of the logical drawing space. All positions are in these
// units regardless of the final output size.
const (
	CanvasWidth  = 1100.0
	CanvasHeight = 1080.0
)

// Config holds the static parameters of the placement algorithm.
type Config struct {
	Envelope

	// Rows is the number of horizontal bands. Row 0 is the bottom band.
	Rows int

	// MinDistance is the smallest accepted distance between two markers.
	MinDistance float64

	// MaxAttempts bounds the number of jittered candidates tried per item.
	MaxAttempts int

	// RandomXOffset and RandomYOffset are the full widths of the jitter
	// window. A candidate moves by at most half of each in either direction.
	RandomXOffset float64
	RandomYOffset float64
}

// Default returns the configuration matching the tree artwork.
func Default() Config {
	return Config{
		Envelope: Envelope{
			CenterX:           547,
			TopY:              150,
			BottomY:           750,
			TopWidth:          50,
			BaseWidth:         300,
			WidthSafetyMargin: 0.9,
		},
		Rows:          6,
		MinDistance:   30,
		MaxAttempts:   50,
		RandomXOffset: 30,
		RandomYOffset: 40,
	}
}

// normalized returns c with out-of-range values pulled back into the domain
// the algorithm can work with.
func (c Config) normalized() Config {
	if c.Rows < 1 {
		c.Rows = 1
	}
	if c.MaxAttempts < 0 {
		c.MaxAttempts = 0
	}
	if c.MinDistance < 0 {
		c.MinDistance = 0
	}
	return c
}
