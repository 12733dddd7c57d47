package canvas

import (
	"bytes"
	"fmt"
)

// SVGOption configures an SVG canvas.
type SVGOption func(*SVG)

// WithMetadata embeds a metadata comment (e.g., a render run ID) in the
// SVG header of every frame produced by this canvas.
func WithMetadata(s string) SVGOption {
	return func(c *SVG) { c.metadata = s }
}

// WithBackground sets the frame background color (default white).
func WithBackground(color string) SVGOption {
	return func(c *SVG) { c.background = color }
}

// SVG renders draw operations into a standalone SVG document.
//
// The canvas accumulates elements between Clear and Bytes. Output is
// deterministic: identical operation streams produce identical bytes.
type SVG struct {
	width, height float64
	metadata      string
	background    string

	xr, yr Range
	color  Color
	title  string
	alpha  float64 // title opacity
	body   bytes.Buffer
}

// NewSVG creates an SVG canvas with the given viewport size in pixels.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	c := &SVG{
		width:      width,
		height:     height,
		background: "white",
		xr:         defaultBounds,
		yr:         defaultBounds,
		color:      ColorBlack,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clear drops all accumulated elements and resets color and title.
func (c *SVG) Clear() {
	c.body.Reset()
	c.color = ColorBlack
	c.title = ""
	c.alpha = 0
}

// SetBounds sets the world window mapped onto the viewport.
func (c *SVG) SetBounds(x, y Range) {
	c.xr, c.yr = x, y
}

// SetTitle sets the frame title rendered at the top of the viewport.
func (c *SVG) SetTitle(text string, opacity float64) {
	c.title = text
	c.alpha = clampOpacity(opacity)
}

// SetColor selects the color for subsequent operations.
func (c *SVG) SetColor(col Color) { c.color = col }

// Circle draws a circle with radius in world units.
func (c *SVG) Circle(center Point, radius float64, filled bool, opacity float64) {
	px, py := c.toPixel(center)
	pr := radius / c.xr.Span() * c.width

	fill, stroke := "none", string(c.color)
	if filled {
		fill, stroke = string(c.color), "none"
	}
	fmt.Fprintf(&c.body,
		`  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="1.5" opacity="%.3f"/>`+"\n",
		px, py, pr, fill, stroke, clampOpacity(opacity))
}

// Text draws a string centered at pos with font size in pixels.
func (c *SVG) Text(pos Point, s string, size float64, opacity float64) {
	px, py := c.toPixel(pos)
	fmt.Fprintf(&c.body,
		`  <text x="%.2f" y="%.2f" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central" opacity="%.3f">%s</text>`+"\n",
		px, py, size, c.color, clampOpacity(opacity), escapeText(s))
}

// Line draws a polyline through points with stroke width in pixels.
func (c *SVG) Line(points []Point, width float64, opacity float64) {
	if len(points) < 2 {
		return
	}
	c.body.WriteString(`  <polyline points="`)
	for i, p := range points {
		if i > 0 {
			c.body.WriteByte(' ')
		}
		px, py := c.toPixel(p)
		fmt.Fprintf(&c.body, "%.2f,%.2f", px, py)
	}
	fmt.Fprintf(&c.body, `" fill="none" stroke="%s" stroke-width="%.2f" opacity="%.3f"/>`+"\n",
		c.color, width, clampOpacity(opacity))
}

// Marker draws a filled dot with radius in pixels.
func (c *SVG) Marker(pos Point, size float64, opacity float64) {
	px, py := c.toPixel(pos)
	fmt.Fprintf(&c.body,
		`  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" opacity="%.3f"/>`+"\n",
		px, py, size, c.color, clampOpacity(opacity))
}

// Bytes finalizes the current frame as a standalone SVG document.
// The canvas remains usable; call Clear before drawing the next frame.
func (c *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.width, c.height, c.width, c.height)
	if c.metadata != "" {
		fmt.Fprintf(&buf, "  <!-- %s -->\n", c.metadata)
	}
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", c.background)
	buf.Write(c.body.Bytes())
	if c.title != "" && c.alpha > 0 {
		fmt.Fprintf(&buf,
			`  <text x="%.2f" y="24" font-size="16" fill="black" text-anchor="middle" opacity="%.3f">%s</text>`+"\n",
			c.width/2, c.alpha, escapeText(c.title))
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// toPixel maps a world point to viewport pixels. The Y axis is flipped:
// world Y grows upward, SVG Y grows downward.
func (c *SVG) toPixel(p Point) (float64, float64) {
	px := (p.X - c.xr.Min) / c.xr.Span() * c.width
	py := c.height - (p.Y-c.yr.Min)/c.yr.Span()*c.height
	return px, py
}

// escapeText escapes the XML special characters in user-visible strings.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
