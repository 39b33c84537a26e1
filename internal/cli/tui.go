package cli

import (
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/ornatree/pkg/placement"
	"github.com/matzehuels/ornatree/pkg/project"
	"github.com/matzehuels/ornatree/pkg/render/palette"
	"github.com/matzehuels/ornatree/pkg/render/tree"
	"github.com/matzehuels/ornatree/pkg/selection"
)

// =============================================================================
// Key Bindings
// =============================================================================

type treeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Clear  key.Binding
	Open   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newTreeKeyMap() treeKeyMap {
	return treeKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎", "open/close")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "show link")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k treeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Clear, k.Open, k.Help, k.Quit}
}

func (k treeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Clear, k.Open},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// TreeModel - Interactive ornament tree
// =============================================================================

// TreeModel is the bubbletea model behind `ornatree view`. The cursor walks
// ornaments in canvas space; the selection decides which detail panel is
// open and which marker is drawn enlarged.
type TreeModel struct {
	catalog *project.Catalog
	gen     *placement.Generator
	palette palette.Palette

	Scene     tree.Scene
	Selection selection.Selection
	Cursor    int

	// Status is a one-line message under the tree, e.g. the opened link.
	Status string

	width, height int
	keys          treeKeyMap
	help          help.Model
}

// NewTreeModel composes the initial scene with nothing selected.
func NewTreeModel(c *project.Catalog, gen *placement.Generator, pal palette.Palette) TreeModel {
	m := TreeModel{
		catalog: c,
		gen:     gen,
		palette: pal.WithDefaults(),
		width:   100,
		height:  36,
		keys:    newTreeKeyMap(),
		help:    help.New(),
	}
	m.recompose()
	return m
}

func (m *TreeModel) recompose() {
	m.Scene = tree.Compose(m.catalog, m.gen, m.Selection)
}

// Current returns the ornament under the cursor.
func (m TreeModel) Current() (tree.Ornament, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Scene.Ornaments) {
		return tree.Ornament{}, false
	}
	return m.Scene.Ornaments[m.Cursor], true
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.Status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(0, -1)
		case key.Matches(msg, m.keys.Down):
			m.move(0, 1)
		case key.Matches(msg, m.keys.Left):
			m.move(-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.move(1, 0)
		case key.Matches(msg, m.keys.Toggle):
			if o, ok := m.Current(); ok {
				m.Selection.Toggle(o.Project.ID)
				m.recompose()
			}
		case key.Matches(msg, m.keys.Clear):
			if !m.Selection.Empty() {
				m.Selection.Clear()
				m.recompose()
			}
		case key.Matches(msg, m.keys.Open):
			m.Status = m.linkStatus()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i, ok := m.ornamentAtCell(msg.X, msg.Y-headerLines); ok {
			m.Cursor = i
			m.Selection.Toggle(m.Scene.Ornaments[i].Project.ID)
			m.recompose()
		}
	}
	return m, nil
}

func (m TreeModel) linkStatus() string {
	id, ok := m.Selection.ID()
	if !ok {
		if o, found := m.Current(); found {
			id = o.Project.ID
		}
	}
	o, found := m.Scene.Find(id)
	if !found {
		return ""
	}
	if o.Project.Link == "" {
		return o.Project.Title() + " has no link"
	}
	return o.Project.Link
}

// move jumps the cursor to the nearest ornament in direction (dx, dy).
// Candidates must lie in that half-plane; sideways offset costs double so
// "up" prefers ornaments straight above over ones far to the side.
func (m *TreeModel) move(dx, dy float64) {
	cur, ok := m.Current()
	if !ok {
		return
	}
	best, bestScore := -1, math.Inf(1)
	for i, o := range m.Scene.Ornaments {
		if i == m.Cursor {
			continue
		}
		vx, vy := o.X-cur.X, o.Y-cur.Y
		along := vx*dx + vy*dy
		if along <= 0 {
			continue
		}
		across := math.Abs(vx*dy - vy*dx)
		if score := along + 2*across; score < bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 {
		m.Cursor = best
	}
}
