package tree

import (
	"github.com/matzehuels/ornatree/pkg/placement"
	"github.com/matzehuels/ornatree/pkg/project"
	"github.com/matzehuels/ornatree/pkg/selection"
)

// Marker geometry in canvas units.
const (
	MarkerSize          = 24.0
	SelectedMarkerSize  = 30.0
	StrokeWidth         = 2.0
	SelectedStrokeWidth = 3.0
)

// Ornament is one positioned project marker.
type Ornament struct {
	Index    int
	Project  project.Project
	X, Y     float64
	Row      int
	Column   int
	Attempts int
	Fallback bool
	Selected bool
}

// Size returns the marker diameter.
func (o Ornament) Size() float64 {
	if o.Selected {
		return SelectedMarkerSize
	}
	return MarkerSize
}

// Radius returns the marker radius.
func (o Ornament) Radius() float64 { return o.Size() / 2 }

// StrokeWidth returns the outline width.
func (o Ornament) StrokeWidth() float64 {
	if o.Selected {
		return SelectedStrokeWidth
	}
	return StrokeWidth
}

// Highlight returns the centre and radius of the small gloss circle drawn
// up and to the left of the marker centre.
func (o Ornament) Highlight() (cx, cy, r float64) {
	off := o.Size() / 6
	return o.X - off, o.Y - off, off
}

// Scene is a fully resolved illustration.
type Scene struct {
	Width     float64
	Height    float64
	Envelope  placement.Envelope
	Ornaments []Ornament
	Fallbacks int

	// Selected is the open project, nil when nothing is selected or the
	// selected id is not in the catalog.
	Selected *project.Project
}

// Compose places every project of c with gen and marks the one sel points
// at. The layout is memoized by gen, so composing the same catalog again
// with a different selection does not re-run placement.
func Compose(c *project.Catalog, gen *placement.Generator, sel selection.Selection) Scene {
	l := gen.Plan(c.Len())
	s := Scene{
		Width:     placement.CanvasWidth,
		Height:    placement.CanvasHeight,
		Envelope:  gen.Config().Envelope,
		Ornaments: make([]Ornament, len(l.Slots)),
		Fallbacks: l.Fallbacks,
	}
	for i, slot := range l.Slots {
		p := c.At(i)
		o := Ornament{
			Index:    i,
			Project:  p,
			X:        slot.Position.X,
			Y:        slot.Position.Y,
			Row:      slot.Row,
			Column:   slot.Column,
			Attempts: slot.Attempts,
			Fallback: slot.Fallback,
			Selected: sel.IsSelected(p.ID),
		}
		if o.Selected {
			s.Selected = &o.Project
		}
		s.Ornaments[i] = o
	}
	return s
}

// HitTest returns the ornament whose marker contains (x, y). When markers
// overlap the one drawn last (highest index) wins, matching paint order.
func (s Scene) HitTest(x, y float64) (Ornament, bool) {
	for i := len(s.Ornaments) - 1; i >= 0; i-- {
		o := s.Ornaments[i]
		dx, dy := x-o.X, y-o.Y
		if r := o.Radius(); dx*dx+dy*dy <= r*r {
			return o, true
		}
	}
	return Ornament{}, false
}

// Find returns the ornament for project id.
func (s Scene) Find(id string) (Ornament, bool) {
	for _, o := range s.Ornaments {
		if o.Project.ID == id {
			return o, true
		}
	}
	return Ornament{}, false
}
