package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/ornatree/pkg/placement"
	"github.com/matzehuels/ornatree/pkg/project"
	"github.com/matzehuels/ornatree/pkg/render/palette"
)

func newTestTreeModel() TreeModel {
	return NewTreeModel(project.Sample(), placement.NewGenerator(placement.Default()), palette.Default())
}

func press(m TreeModel, msg tea.Msg) (TreeModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(TreeModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTreeModelToggle(t *testing.T) {
	m := newTestTreeModel()
	if !m.Selection.Empty() || m.Scene.Selected != nil {
		t.Fatal("new model should start without selection")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	want := m.Scene.Ornaments[0].Project.ID
	if !m.Selection.IsSelected(want) {
		t.Fatalf("enter should select %q", want)
	}
	if m.Scene.Selected == nil || m.Scene.Selected.ID != want {
		t.Errorf("scene not recomposed with selection")
	}
	if !m.Scene.Ornaments[0].Selected {
		t.Error("ornament 0 should be marked selected")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Selection.Empty() {
		t.Error("second enter should close the panel")
	}
}

func TestTreeModelEscClears(t *testing.T) {
	m := newTestTreeModel()
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.Selection.Empty() || m.Scene.Selected != nil {
		t.Error("esc should clear the selection")
	}
	// esc with nothing selected is a no-op
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.Selection.Empty() {
		t.Error("esc on empty selection changed state")
	}
}

func TestTreeModelMove(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		check func(from, to placement.Position) bool
	}{
		{"right", tea.KeyMsg{Type: tea.KeyRight}, func(a, b placement.Position) bool { return b.X > a.X }},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, func(a, b placement.Position) bool { return b.Y < a.Y }},
		{"vim up", runes("k"), func(a, b placement.Position) bool { return b.Y < a.Y }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestTreeModel()
			from, _ := m.Current()
			m, _ = press(m, tt.msg)
			if m.Cursor == 0 {
				t.Fatal("cursor did not move")
			}
			to, _ := m.Current()
			if !tt.check(placement.Position{X: from.X, Y: from.Y}, placement.Position{X: to.X, Y: to.Y}) {
				t.Errorf("moved from (%.0f,%.0f) to (%.0f,%.0f)", from.X, from.Y, to.X, to.Y)
			}
		})
	}
}

func TestTreeModelMoveStopsAtEdge(t *testing.T) {
	m := newTestTreeModel()
	// ornament 0 is the lowest row, nothing is below it
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	cur, _ := m.Current()
	for _, o := range m.Scene.Ornaments {
		if o.Y > cur.Y+placement.Default().RandomYOffset {
			t.Fatalf("down stopped at y=%.0f although y=%.0f exists", cur.Y, o.Y)
		}
	}
}

func TestTreeModelLinkAndQuit(t *testing.T) {
	m := newTestTreeModel()
	m, _ = press(m, runes("o"))
	if want := m.Scene.Ornaments[0].Project.Link; m.Status != want {
		t.Errorf("Status = %q, want %q", m.Status, want)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Status != "" {
		t.Error("status should reset on the next key")
	}

	_, cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestTreeModelMouse(t *testing.T) {
	m := newTestTreeModel()
	// small cells, so every cell centre lies within one marker radius
	m, _ = press(m, tea.WindowSizeMsg{Width: 160, Height: 80})
	target := m.Scene.Ornaments[5]
	col, row := m.grid().cell(target.X, target.Y)

	m, _ = press(m, tea.MouseMsg{
		X:      col,
		Y:      row + headerLines,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if !m.Selection.IsSelected(target.Project.ID) {
		t.Fatalf("click on %q did not select it", target.Project.ID)
	}
	if m.Cursor != 5 {
		t.Errorf("Cursor = %d, want 5", m.Cursor)
	}

	// releases and clicks outside the tree are ignored
	m, _ = press(m, tea.MouseMsg{X: col, Y: row + headerLines, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = press(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Selection.IsSelected(target.Project.ID) {
		t.Error("selection changed by an ignored mouse event")
	}
}

func TestTreeModelView(t *testing.T) {
	m := newTestTreeModel()
	m, _ = press(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	if !strings.Contains(out, "Projektbaum") {
		t.Error("missing title")
	}
	if got := strings.Count(out, glyphOrnament); got == 0 || got > len(m.Scene.Ornaments) {
		t.Errorf("drew %d ornaments, want up to %d", got, len(m.Scene.Ornaments))
	}
	if strings.Contains(out, glyphSelected) {
		t.Error("selected glyph drawn without selection")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	out = m.View()
	if !strings.Contains(out, glyphSelected) {
		t.Error("selected glyph missing")
	}
	if !strings.Contains(out, m.Scene.Selected.City) {
		t.Error("detail panel missing city")
	}
}

func TestTreeModelCrownShading(t *testing.T) {
	m := newTestTreeModel()
	colors := m.treeColors(10)
	if len(colors) != 10 {
		t.Fatalf("got %d row colours, want 10", len(colors))
	}
	if colors[0] == colors[9] {
		t.Error("top and bottom rows share a colour")
	}
	if got, want := m.treeStyle(colors, 9).GetForeground(), lipgloss.Color(palette.Tint(m.palette.Tree, 0)); got != want {
		t.Errorf("bottom row colour = %v, want %v", got, want)
	}
	// rows past the gradient use the plain tree colour
	if got, want := m.treeStyle(nil, 3).GetForeground(), lipgloss.Color(m.palette.Tree); got != want {
		t.Errorf("fallback colour = %v, want %v", got, want)
	}
}
