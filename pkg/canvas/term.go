package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Term renders draw operations onto a fixed grid of terminal cells.
//
// World coordinates are mapped onto the grid set by SetBounds. Opacity is
// approximated with three brightness buckets; operations below a small
// threshold are dropped entirely, which matches how faded elements read
// on a terminal.
type Term struct {
	cols, rows int
	xr, yr     Range
	color      Color
	title      string
	titleAlpha float64
	cells      []termCell
}

type termCell struct {
	r     rune
	color Color
	alpha float64
}

// NewTerm creates a terminal canvas with the given grid size.
// Terminal cells are roughly twice as tall as wide, so a 2:1 cols:rows
// ratio keeps circles round.
func NewTerm(cols, rows int) *Term {
	c := &Term{
		cols:  cols,
		rows:  rows,
		xr:    defaultBounds,
		yr:    defaultBounds,
		color: ColorBlack,
	}
	c.cells = make([]termCell, cols*rows)
	return c
}

// Clear resets all cells, the title, and the color.
func (c *Term) Clear() {
	for i := range c.cells {
		c.cells[i] = termCell{}
	}
	c.color = ColorBlack
	c.title = ""
	c.titleAlpha = 0
}

// SetBounds sets the world window mapped onto the grid.
func (c *Term) SetBounds(x, y Range) { c.xr, c.yr = x, y }

// SetTitle sets the line rendered above the grid.
func (c *Term) SetTitle(text string, opacity float64) {
	c.title = text
	c.titleAlpha = clampOpacity(opacity)
}

// SetColor selects the color for subsequent operations.
func (c *Term) SetColor(col Color) { c.color = col }

// Circle draws a circle outline (or disc) by angular sampling.
func (c *Term) Circle(center Point, radius float64, filled bool, opacity float64) {
	const samples = 120
	for i := 0; i < samples; i++ {
		a := float64(i) / samples * 2 * math.Pi
		p := Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
		c.plot(p, '·', opacity)
	}
	if filled {
		// Coarse fill: sample interior rings.
		for r := radius; r > 0; r -= radius / 4 {
			for i := 0; i < samples/2; i++ {
				a := float64(i) / (samples / 2) * 2 * math.Pi
				c.plot(Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}, '·', opacity)
			}
		}
	}
}

// Text writes a string centered at pos. Size is ignored: terminal text
// has exactly one size.
func (c *Term) Text(pos Point, s string, _ float64, opacity float64) {
	col, row, ok := c.toCell(pos)
	if !ok || clampOpacity(opacity) < minTermAlpha {
		return
	}
	runes := []rune(s)
	start := col - len(runes)/2
	for i, r := range runes {
		c.set(start+i, row, r, opacity)
	}
}

// Line draws a polyline by stepping along each segment.
func (c *Term) Line(points []Point, _ float64, opacity float64) {
	for i := 1; i < len(points); i++ {
		c.segment(points[i-1], points[i], opacity)
	}
}

// Marker draws a dot. Size maps to a single bold cell; larger markers
// spill into the neighboring cells.
func (c *Term) Marker(pos Point, size float64, opacity float64) {
	c.plot(pos, '●', opacity)
	if size >= 6 {
		step := c.xr.Span() / float64(c.cols)
		c.plot(Point{X: pos.X - step, Y: pos.Y}, '●', opacity)
		c.plot(Point{X: pos.X + step, Y: pos.Y}, '●', opacity)
	}
}

// Render returns the styled frame as a multi-line string.
func (c *Term) Render() string {
	var b strings.Builder
	if c.title != "" && c.titleAlpha >= minTermAlpha {
		pad := max(0, (c.cols-len([]rune(c.title)))/2)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(termStyle(ColorBlack, c.titleAlpha).Render(c.title))
	}
	b.WriteByte('\n')
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			if cell.r == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(termStyle(cell.color, cell.alpha).Render(string(cell.r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// minTermAlpha is the opacity below which elements are not drawn at all.
const minTermAlpha = 0.05

func (c *Term) segment(a, b Point, opacity float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Hypot(dx/c.xr.Span()*float64(c.cols), dy/c.yr.Span()*float64(c.rows))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(Point{X: a.X + t*dx, Y: a.Y + t*dy}, '·', opacity)
	}
}

func (c *Term) plot(p Point, r rune, opacity float64) {
	col, row, ok := c.toCell(p)
	if !ok {
		return
	}
	c.set(col, row, r, opacity)
}

func (c *Term) set(col, row int, r rune, opacity float64) {
	a := clampOpacity(opacity)
	if a < minTermAlpha || col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	idx := row*c.cols + col
	// Markers win over line/outline samples in the same cell.
	if c.cells[idx].r == '●' && r != '●' {
		return
	}
	c.cells[idx] = termCell{r: r, color: c.color, alpha: a}
}

// toCell maps a world point to a grid cell. Points outside the bounds
// report ok=false and are clipped by the caller.
func (c *Term) toCell(p Point) (col, row int, ok bool) {
	if c.xr.Span() == 0 || c.yr.Span() == 0 {
		return 0, 0, false
	}
	col = int((p.X - c.xr.Min) / c.xr.Span() * float64(c.cols))
	row = int((1 - (p.Y-c.yr.Min)/c.yr.Span()) * float64(c.rows))
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0, 0, false
	}
	return col, row, true
}

// Terminal color palette. Black maps to a light gray so it stays visible
// on dark terminal themes.
var termColors = map[Color][3]lipgloss.Color{
	ColorBlack: {"252", "248", "240"},
	ColorRed:   {"167", "131", "95"},
	ColorBlue:  {"75", "67", "60"},
}

func termStyle(c Color, alpha float64) lipgloss.Style {
	shades, ok := termColors[c]
	if !ok {
		shades = termColors[ColorBlack]
	}
	switch {
	case alpha >= 0.66:
		return lipgloss.NewStyle().Foreground(shades[0])
	case alpha >= 0.33:
		return lipgloss.NewStyle().Foreground(shades[1])
	default:
		return lipgloss.NewStyle().Foreground(shades[2])
	}
}
