package placement

import "math"

// containsEpsilon absorbs rounding in the width interpolation.
const containsEpsilon = 1e-9

// Envelope is the triangular region markers are placed in.
type Envelope struct {
	CenterX float64
	TopY    float64
	BottomY float64

	// TopWidth and BaseWidth are the silhouette widths at TopY and BottomY.
	TopWidth  float64
	BaseWidth float64

	// WidthSafetyMargin scales the interpolated width. Values below 1 keep
	// markers away from the visual edge.
	WidthSafetyMargin float64
}

// Height returns the vertical extent of the envelope.
func (e Envelope) Height() float64 { return e.BottomY - e.TopY }

// widthAtRatio returns the margined width at a fraction of the height,
// where 0 is the base and 1 the top.
func (e Envelope) widthAtRatio(ratio float64) float64 {
	return (e.BaseWidth - ratio*(e.BaseWidth-e.TopWidth)) * e.WidthSafetyMargin
}

// WidthAt returns the usable (margined) width at height y. It is zero when y
// lies outside the envelope.
func (e Envelope) WidthAt(y float64) float64 {
	if y < e.TopY-containsEpsilon || y > e.BottomY+containsEpsilon {
		return 0
	}
	h := e.Height()
	if h <= 0 {
		return e.widthAtRatio(0)
	}
	return e.widthAtRatio((e.BottomY - y) / h)
}

// Contains reports whether p lies inside the margined envelope.
func (e Envelope) Contains(p Position) bool {
	if p.Y < e.TopY-containsEpsilon || p.Y > e.BottomY+containsEpsilon {
		return false
	}
	return math.Abs(p.X-e.CenterX) <= e.WidthAt(p.Y)/2+containsEpsilon
}
