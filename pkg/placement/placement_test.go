package placement

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, n := range []int{0, 1, 7, 42, 300} {
		a := Generate(n)
		b := Generate(n)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("Generate(%d) not deterministic (-first +second):\n%s", n, diff)
		}
	}
}

func TestGenerateCompleteness(t *testing.T) {
	for _, n := range []int{0, 1, 5, 50, 500} {
		if got := len(Generate(n)); got != n {
			t.Errorf("len(Generate(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	got := Generate(-3)
	if got == nil || len(got) != 0 {
		t.Errorf("Generate(-3) = %v, want empty slice", got)
	}
}

func TestEnvelopeContainment(t *testing.T) {
	cfg := Default()
	for _, n := range []int{1, 5, 10, 50, 500} {
		for i, p := range Generate(n) {
			if p.Y < cfg.TopY || p.Y > cfg.BottomY {
				t.Fatalf("n=%d item %d: y=%v outside [%v, %v]", n, i, p.Y, cfg.TopY, cfg.BottomY)
			}
			half := cfg.WidthAt(p.Y) / 2
			if math.Abs(p.X-cfg.CenterX) > half+1e-6 {
				t.Fatalf("n=%d item %d: |x-center|=%v exceeds half width %v", n, i, math.Abs(p.X-cfg.CenterX), half)
			}
		}
	}
}

func TestMinimumSeparation(t *testing.T) {
	cfg := Default()
	l := Build(cfg, 10)
	if l.Fallbacks != 0 {
		t.Errorf("Fallbacks = %d, want 0", l.Fallbacks)
	}
	pos := l.Positions()
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			if d := pos[i].Distance(pos[j]); d < cfg.MinDistance {
				t.Errorf("items %d and %d are %.2f apart, want >= %v", i, j, d, cfg.MinDistance)
			}
		}
	}
}

func TestGracefulDegradation(t *testing.T) {
	l := Build(Default(), 500)
	if l.Len() != 500 {
		t.Fatalf("Len = %d, want 500", l.Len())
	}
	if l.Fallbacks == 0 {
		t.Error("expected some fallbacks in an overcrowded envelope")
	}
	for _, s := range l.Slots {
		if s.Fallback && s.Position != s.Nominal {
			t.Errorf("slot %d: fallback position %v differs from nominal %v", s.Index, s.Position, s.Nominal)
		}
	}
}

func TestGenerateSingle(t *testing.T) {
	cfg := Default()
	got := Generate(1)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	p := got[0]
	if dx := math.Abs(p.X - cfg.CenterX); dx > cfg.RandomXOffset/2 {
		t.Errorf("x = %v, want within %v of %v", p.X, cfg.RandomXOffset/2, cfg.CenterX)
	}
	if dy := math.Abs(p.Y - cfg.BottomY); dy > cfg.RandomYOffset/2 {
		t.Errorf("y = %v, want within %v of %v", p.Y, cfg.RandomYOffset/2, cfg.BottomY)
	}
}

func TestRowsPartition(t *testing.T) {
	cfg := Default()
	cfg.Rows = 5

	tests := []struct {
		count int
		want  []int
	}{
		{0, []int{0, 0, 0, 0, 0}},
		{1, []int{1, 0, 0, 0, 0}},
		{6, []int{2, 2, 2, 0, 0}},
		{10, []int{2, 2, 2, 2, 2}},
		{11, []int{3, 3, 3, 2, 0}},
		{-4, []int{0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Rows(cfg, tt.count)); diff != "" {
			t.Errorf("Rows(%d) mismatch (-want +got):\n%s", tt.count, diff)
		}
	}
}

func TestRowsNominalHeights(t *testing.T) {
	cfg := Default()
	cfg.Rows = 5

	l := Build(cfg, 6)
	if diff := cmp.Diff([]int{2, 2, 2, 0, 0}, l.RowSizes); diff != "" {
		t.Fatalf("RowSizes mismatch (-want +got):\n%s", diff)
	}

	rowY := map[int]float64{}
	for _, s := range l.Slots {
		rowY[s.Row] = s.Nominal.Y
	}
	for row := 1; row < 3; row++ {
		if rowY[0] <= rowY[row] {
			t.Errorf("row 0 nominal y %v should exceed row %d nominal y %v", rowY[0], row, rowY[row])
		}
	}

	full := Build(cfg, 10)
	var bottom, top float64
	for _, s := range full.Slots {
		switch s.Row {
		case 0:
			bottom = s.Nominal.Y
		case 4:
			top = s.Nominal.Y
		}
	}
	if bottom <= top {
		t.Errorf("row 0 nominal y %v should exceed row 4 nominal y %v", bottom, top)
	}
}

func TestNominalColumnsCentered(t *testing.T) {
	cfg := Default()
	l := Build(cfg, 12) // two per row
	for _, s := range l.Slots {
		if s.Row != 0 {
			continue
		}
		want := cfg.CenterX + (float64(s.Column)-0.5)*(cfg.BaseWidth*cfg.WidthSafetyMargin/2)
		if math.Abs(s.Nominal.X-want) > 1e-9 {
			t.Errorf("column %d nominal x = %v, want %v", s.Column, s.Nominal.X, want)
		}
	}
}

func TestZeroAttemptsFallsBack(t *testing.T) {
	cfg := Default()
	cfg.MaxAttempts = 0
	l := Build(cfg, 4)
	if l.Fallbacks != 4 {
		t.Errorf("Fallbacks = %d, want 4", l.Fallbacks)
	}
	for _, s := range l.Slots {
		if !s.Fallback || s.Position != s.Nominal {
			t.Errorf("slot %d = %+v, want nominal fallback", s.Index, s)
		}
	}
}

func TestInvalidRowsClamped(t *testing.T) {
	cfg := Default()
	cfg.Rows = 0
	if got := len(Build(cfg, 3).Slots); got != 3 {
		t.Errorf("len = %d, want 3", got)
	}
}

func TestSeededRange(t *testing.T) {
	for seed := -2000; seed <= 2000; seed++ {
		v := Seeded(float64(seed))
		if v < 0 || v >= 1 {
			t.Fatalf("Seeded(%d) = %v, want [0, 1)", seed, v)
		}
	}
	if Seeded(17) != Seeded(17) {
		t.Error("Seeded is not deterministic")
	}
}

func TestEnvelopeWidthAt(t *testing.T) {
	e := Default().Envelope
	if got, want := e.WidthAt(e.BottomY), e.BaseWidth*e.WidthSafetyMargin; math.Abs(got-want) > 1e-9 {
		t.Errorf("WidthAt(bottom) = %v, want %v", got, want)
	}
	if got, want := e.WidthAt(e.TopY), e.TopWidth*e.WidthSafetyMargin; math.Abs(got-want) > 1e-9 {
		t.Errorf("WidthAt(top) = %v, want %v", got, want)
	}
	if got := e.WidthAt(e.BottomY + 1); got != 0 {
		t.Errorf("WidthAt(below base) = %v, want 0", got)
	}
	if e.Contains(Position{X: e.CenterX + e.BaseWidth, Y: e.BottomY}) {
		t.Error("Contains accepted a point outside the base")
	}
	if !e.Contains(Position{X: e.CenterX, Y: (e.TopY + e.BottomY) / 2}) {
		t.Error("Contains rejected the centre")
	}
}
