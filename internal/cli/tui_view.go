package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/ornatree/pkg/placement"
	"github.com/matzehuels/ornatree/pkg/render/palette"
)

const (
	headerLines = 2  // title + blank line above the tree
	panelWidth  = 44 // detail panel incl. border
	minTreeRows = 12
)

const (
	glyphTree     = "·"
	glyphTrunk    = "█"
	glyphOrnament = "●"
	glyphSelected = "◉"
)

// grid maps canvas coordinates onto terminal cells. A cell is about twice
// as tall as it is wide, so a cell covers twice as many canvas units
// vertically.
type grid struct {
	cols, rows int
	minX, minY float64
	cellW      float64
	cellH      float64
}

func (m TreeModel) grid() grid {
	sil := m.Scene.Silhouette()
	minX, maxX := sil.Left.X, sil.Right.X
	minY, maxY := sil.Tip.Y, sil.TrunkY+sil.TrunkHeight

	availCols := m.width - 2
	if !m.Selection.Empty() {
		availCols -= panelWidth
	}
	availRows := m.height - headerLines - 4
	availCols = max(availCols, 20)
	availRows = max(availRows, minTreeRows)

	cellH := (maxY - minY) / float64(availRows)
	cellW := cellH / 2
	if cols := math.Ceil((maxX - minX) / cellW); int(cols) > availCols {
		cellW = (maxX - minX) / float64(availCols)
		cellH = cellW * 2
	}
	return grid{
		cols:  int(math.Ceil((maxX-minX)/cellW)) + 1,
		rows:  int(math.Ceil((maxY-minY)/cellH)) + 1,
		minX:  minX,
		minY:  minY,
		cellW: cellW,
		cellH: cellH,
	}
}

func (g grid) cell(x, y float64) (col, row int) {
	return int((x - g.minX) / g.cellW), int((y - g.minY) / g.cellH)
}

func (g grid) center(col, row int) placement.Position {
	return placement.Position{
		X: g.minX + (float64(col)+0.5)*g.cellW,
		Y: g.minY + (float64(row)+0.5)*g.cellH,
	}
}

// ornamentAtCell returns the ornament nearest to a clicked cell, if one is
// within a cell of it.
func (m TreeModel) ornamentAtCell(col, row int) (int, bool) {
	g := m.grid()
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return 0, false
	}
	p := g.center(col, row)
	if o, ok := m.Scene.HitTest(p.X, p.Y); ok {
		return o.Index, true
	}
	best, bestDist := -1, math.Max(g.cellW, g.cellH)
	for i, o := range m.Scene.Ornaments {
		if d := p.Distance(placement.Position{X: o.X, Y: o.Y}); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

func (m TreeModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Projektbaum"))
	b.WriteString(StyleDim.Render("  " + m.positionLabel()))
	b.WriteString("\n\n")

	body := m.renderTree()
	if m.Scene.Selected != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.renderPanel())
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.Status != "" {
		b.WriteString(StyleLink.Render(m.Status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m TreeModel) positionLabel() string {
	o, ok := m.Current()
	if !ok {
		return "no projects"
	}
	return o.Project.Title()
}

func (m TreeModel) renderTree() string {
	g := m.grid()
	sil := m.Scene.Silhouette()

	rowColors := m.treeColors(g.rows)
	trunkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Trunk))
	ornStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Ornament))
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Selected)).Bold(true)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	cells := make([][]string, g.rows)
	for r := range cells {
		cells[r] = make([]string, g.cols)
		for c := range cells[r] {
			p := g.center(c, r)
			switch {
			case sil.Contains(p):
				cells[r][c] = m.treeStyle(rowColors, r).Render(glyphTree)
			case p.Y >= sil.TrunkY && p.X >= sil.TrunkX && p.X <= sil.TrunkX+sil.TrunkWidth:
				cells[r][c] = trunkStyle.Render(glyphTrunk)
			default:
				cells[r][c] = " "
			}
		}
	}

	// catalog order, so later ornaments win shared cells like in the SVG
	for i, o := range m.Scene.Ornaments {
		c, r := g.cell(o.X, o.Y)
		if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
			continue
		}
		style, glyph := ornStyle, glyphOrnament
		if o.Selected {
			style, glyph = selStyle, glyphSelected
		}
		if i == m.Cursor {
			style = style.Inherit(cursorStyle)
		}
		cells[r][c] = style.Render(glyph)
	}
	if o, ok := m.Current(); ok {
		// keep the cursor visible when it shares a cell
		c, r := g.cell(o.X, o.Y)
		if r >= 0 && r < g.rows && c >= 0 && c < g.cols {
			style, glyph := ornStyle, glyphOrnament
			if o.Selected {
				style, glyph = selStyle, glyphSelected
			}
			cells[r][c] = style.Inherit(cursorStyle).Render(glyph)
		}
	}

	lines := make([]string, g.rows)
	for r := range cells {
		lines[r] = strings.Join(cells[r], "")
	}
	return strings.Join(lines, "\n")
}

// treeColors shades the crown lighter at the top and in the full tree
// colour at the base. An invalid palette colour gives nil.
func (m TreeModel) treeColors(rows int) []string {
	colors, err := palette.Gradient(palette.Tint(m.palette.Tree, 0.35), m.palette.Tree, rows)
	if err != nil {
		return nil
	}
	return colors
}

func (m TreeModel) treeStyle(rowColors []string, row int) lipgloss.Style {
	color := m.palette.Tree
	if row < len(rowColors) {
		color = rowColors[row]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (m TreeModel) renderPanel() string {
	p := m.Scene.Selected
	inner := panelWidth - 4

	header := lipgloss.NewStyle().
		Background(lipgloss.Color(m.palette.Panel)).
		Foreground(lipgloss.Color(palette.White)).
		Width(inner).
		Padding(0, 1)
	badge := lipgloss.NewStyle().
		Background(lipgloss.Color(m.palette.Selected)).
		Foreground(lipgloss.Color(m.palette.Panel)).
		Bold(true).
		Padding(0, 1)
	city := lipgloss.NewStyle().Bold(true)
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.palette.Ornament))
	desc := lipgloss.NewStyle().Width(inner)

	var top []string
	if p.Region != "" {
		top = append(top, badge.Render(strings.ToUpper(p.Region)))
	}
	top = append(top, city.Render(p.City))

	parts := []string{
		header.Render(strings.Join(top, "\n")),
		"",
		name.Render(p.Name),
		StyleDim.Render(strings.Repeat("━", 8)),
		desc.Render(p.Description),
	}
	if p.Link != "" {
		parts = append(parts, "", StyleDim.Render("Mehr erfahren: ")+StyleLink.Render(p.Link))
	}
	parts = append(parts, "", StyleDim.Render("esc schließen"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(palette.Tint(m.palette.Panel, 0.4))).
		Padding(0, 1).
		Width(panelWidth - 2).
		Render(strings.Join(parts, "\n"))
}
