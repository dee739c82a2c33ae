package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// cell is one rasterized glyph of the header.
type cell struct {
	r      rune
	c      color.NRGBA
	weight float64
}

// cellSurface rasterizes the field onto a grid of terminal cells, each
// covering cellW×cellH logical pixels.
type cellSurface struct {
	cellW, cellH float64
	scale        float64
	lineBase     float64 // alpha of a full-strength link
	cols, rows   int
	cells        []cell
}

func newCellSurface(cellW, cellH int, line color.NRGBA) *cellSurface {
	base := float64(line.A) / 255
	if base == 0 {
		base = 1
	}
	return &cellSurface{cellW: float64(cellW), cellH: float64(cellH), scale: 1, lineBase: base}
}

func (s *cellSurface) SetBackingSize(w, h int) {
	s.cols = int(math.Ceil(float64(w) / s.cellW))
	s.rows = int(math.Ceil(float64(h) / s.cellH))
	s.cells = make([]cell, s.cols*s.rows)
}

// SetScale is recorded only; the terminal host always reports a ratio of 1.
func (s *cellSurface) SetScale(v float64) { s.scale = v }

func (s *cellSurface) Clear() {
	clear(s.cells)
}

func (s *cellSurface) plot(x, y float64, r rune, c color.NRGBA, weight float64) {
	col := int(math.Floor(x / s.cellW))
	row := int(math.Floor(y / s.cellH))
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	i := row*s.cols + col
	if s.cells[i].weight >= weight {
		return
	}
	s.cells[i] = cell{r: r, c: c, weight: weight}
}

func (s *cellSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	alpha := math.Min(1, float64(c.A)/255/s.lineBase)
	glyph := lineGlyph(alpha)
	steps := int(math.Max(math.Abs(x1-x0)/s.cellW, math.Abs(y1-y0)/s.cellH)*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.plot(x0+(x1-x0)*t, y0+(y1-y0)*t, glyph, c, alpha*width)
	}
}

// FillCircle marks the cell holding the center. Nodes outrank any line.
func (s *cellSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	s.plot(x, y, '●', c, 2+r)
}

func lineGlyph(alpha float64) rune {
	switch {
	case alpha < 0.34:
		return '.'
	case alpha < 0.67:
		return '·'
	default:
		return '•'
	}
}

// flush writes the grid to the top-left of screen, blending each glyph's
// alpha against a black background.
func (s *cellSurface) flush(screen tcell.Screen, maxRows int) {
	for row := 0; row < s.rows && row < maxRows; row++ {
		for col := 0; col < s.cols; col++ {
			cl := s.cells[row*s.cols+col]
			if cl.r == 0 {
				continue
			}
			a := int32(cl.c.A)
			fg := tcell.NewRGBColor(int32(cl.c.R)*a/255, int32(cl.c.G)*a/255, int32(cl.c.B)*a/255)
			screen.SetContent(col, row, cl.r, nil, tcell.StyleDefault.Foreground(fg))
		}
	}
}
