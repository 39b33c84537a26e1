package tree

import (
	"testing"

	"github.com/matzehuels/ornatree/pkg/placement"
	"github.com/matzehuels/ornatree/pkg/project"
	"github.com/matzehuels/ornatree/pkg/selection"
)

func composeSample(t *testing.T, selected string) Scene {
	t.Helper()
	return Compose(project.Sample(), placement.NewGenerator(placement.Default()), selection.Of(selected))
}

func TestComposeAligned(t *testing.T) {
	c := project.Sample()
	s := Compose(c, placement.NewGenerator(placement.Default()), selection.Selection{})
	if len(s.Ornaments) != c.Len() {
		t.Fatalf("len(Ornaments) = %d, want %d", len(s.Ornaments), c.Len())
	}
	want := placement.Generate(c.Len())
	for i, o := range s.Ornaments {
		if o.Project.ID != c.At(i).ID {
			t.Errorf("ornament %d project = %q, want %q", i, o.Project.ID, c.At(i).ID)
		}
		if o.X != want[i].X || o.Y != want[i].Y {
			t.Errorf("ornament %d at (%v, %v), want %v", i, o.X, o.Y, want[i])
		}
		if o.Selected {
			t.Errorf("ornament %d selected with empty selection", i)
		}
	}
	if s.Selected != nil {
		t.Errorf("Selected = %v, want nil", s.Selected)
	}
}

func TestComposeSelection(t *testing.T) {
	s := composeSample(t, "leipzig-west")
	if s.Selected == nil || s.Selected.ID != "leipzig-west" {
		t.Fatalf("Selected = %v, want leipzig-west", s.Selected)
	}
	n := 0
	for _, o := range s.Ornaments {
		if o.Selected {
			n++
			if o.Size() != SelectedMarkerSize || o.StrokeWidth() != SelectedStrokeWidth {
				t.Errorf("selected ornament size=%v stroke=%v", o.Size(), o.StrokeWidth())
			}
		} else if o.Size() != MarkerSize {
			t.Errorf("unselected ornament %s size = %v", o.Project.ID, o.Size())
		}
	}
	if n != 1 {
		t.Errorf("%d ornaments selected, want 1", n)
	}
}

func TestComposeUnknownSelection(t *testing.T) {
	s := composeSample(t, "atlantis")
	if s.Selected != nil {
		t.Errorf("Selected = %v, want nil for unknown id", s.Selected)
	}
}

func TestHitTest(t *testing.T) {
	s := composeSample(t, "")
	o := s.Ornaments[3]

	got, ok := s.HitTest(o.X+MarkerSize/4, o.Y)
	if !ok || got.Project.ID != o.Project.ID {
		t.Errorf("HitTest near ornament 3 = %v, %v", got.Project.ID, ok)
	}
	if _, ok := s.HitTest(0, 0); ok {
		t.Error("HitTest(0, 0) hit an ornament")
	}
}

func TestHighlight(t *testing.T) {
	o := Ornament{X: 100, Y: 100}
	cx, cy, r := o.Highlight()
	if cx != 96 || cy != 96 || r != 4 {
		t.Errorf("Highlight() = %v, %v, %v, want 96, 96, 4", cx, cy, r)
	}
}

func TestSilhouetteCoversEnvelope(t *testing.T) {
	s := composeSample(t, "")
	sil := s.Silhouette()
	for _, o := range s.Ornaments {
		if !sil.Contains(placement.Position{X: o.X, Y: o.Y}) {
			t.Errorf("ornament %s at (%v, %v) outside silhouette", o.Project.ID, o.X, o.Y)
		}
	}
}
