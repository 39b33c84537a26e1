package tree

import "github.com/matzehuels/ornatree/pkg/placement"

// Silhouette is the drawn tree outline. It is derived from the placement
// envelope and is always wider than it, so markers never touch the edge.
type Silhouette struct {
	Tip   placement.Position
	Left  placement.Position
	Right placement.Position

	TrunkX, TrunkY          float64
	TrunkWidth, TrunkHeight float64
}

// SilhouetteFor derives the outline for e.
func SilhouetteFor(e placement.Envelope) Silhouette {
	h := e.Height()
	tipY := e.TopY - 0.15*h
	baseY := e.BottomY + 50
	half := e.BaseWidth / 2 * 1.75
	trunkW := e.BaseWidth / 5
	return Silhouette{
		Tip:         placement.Position{X: e.CenterX, Y: tipY},
		Left:        placement.Position{X: e.CenterX - half, Y: baseY},
		Right:       placement.Position{X: e.CenterX + half, Y: baseY},
		TrunkX:      e.CenterX - trunkW/2,
		TrunkY:      baseY,
		TrunkWidth:  trunkW,
		TrunkHeight: 0.15 * h,
	}
}

// Contains reports whether p lies inside the triangle (trunk excluded).
func (s Silhouette) Contains(p placement.Position) bool {
	if p.Y < s.Tip.Y || p.Y > s.Left.Y {
		return false
	}
	half := (s.Right.X - s.Left.X) / 2 * (p.Y - s.Tip.Y) / (s.Left.Y - s.Tip.Y)
	return p.X >= s.Tip.X-half && p.X <= s.Tip.X+half
}

// Silhouette returns the outline of the scene's tree.
func (s Scene) Silhouette() Silhouette { return SilhouetteFor(s.Envelope) }
