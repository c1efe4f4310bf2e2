// Package tui provides the Bubble Tea play interface.
package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordfall/internal/geom"
)

type fieldCell struct {
	s     string
	width int
}

// fieldGrid maps the logical playfield onto terminal cells. Labels are
// painted whole; later placements never overwrite earlier ones.
type fieldGrid struct {
	width  int
	height int
	cells  [][]fieldCell
}

func newFieldGrid(width, height int) *fieldGrid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]fieldCell, height)
	for y := range cells {
		cells[y] = make([]fieldCell, width)
	}
	return &fieldGrid{width: width, height: height, cells: cells}
}

// place paints text at the cell nearest to the logical position. The
// label shifts left when it would run past the right edge.
func (g *fieldGrid) place(pos geom.Point, text string, style lipgloss.Style) {
	if text == "" {
		return
	}
	row := g.projectRow(pos.Y)
	col := g.projectCol(pos.X)
	textWidth := runewidth.StringWidth(text)
	if col+textWidth > g.width {
		col = g.width - textWidth
	}
	if col < 0 {
		col = 0
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if col+w > g.width {
			return
		}
		if g.cells[row][col].s == "" {
			g.cells[row][col] = fieldCell{s: style.Render(string(r)), width: w}
			// Wide runes consume the following cell.
			for i := 1; i < w; i++ {
				g.cells[row][col+i] = fieldCell{width: -1}
			}
		}
		col += w
	}
}

func (g *fieldGrid) projectRow(y float64) int {
	return clampIndex(int(math.Round(y/geom.FieldHeight*float64(g.height-1))), g.height)
}

func (g *fieldGrid) projectCol(x float64) int {
	return clampIndex(int(math.Round(x/geom.FieldWidth*float64(g.width-1))), g.width)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (g *fieldGrid) render() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			cell := g.cells[y][x]
			if cell.width == -1 {
				continue
			}
			if cell.s == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(cell.s)
		}
	}
	return b.String()
}
