package canvas

import (
	"bytes"
	"strings"
	"testing"
)

func TestSVGFrameStructure(t *testing.T) {
	c := NewSVG(800, 800, WithMetadata("run 123"))
	c.SetBounds(Range{Min: -2, Max: 2}, Range{Min: -2, Max: 2})
	c.SetColor(ColorBlack)
	c.Circle(Point{}, 0.7, false, 0.5)
	c.SetTitle("The Infinite Frequency Domain", 0.5)

	out := string(c.Bytes())

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.0 800.0"`) {
		t.Errorf("missing SVG header: %q", out[:min(80, len(out))])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("missing closing tag")
	}
	if !strings.Contains(out, "<!-- run 123 -->") {
		t.Error("missing metadata comment")
	}
	if !strings.Contains(out, "The Infinite Frequency Domain") {
		t.Error("missing title text")
	}
}

func TestSVGBoundsTransform(t *testing.T) {
	c := NewSVG(100, 100)
	c.SetBounds(Range{Min: -1, Max: 1}, Range{Min: -1, Max: 1})

	tests := []struct {
		name  string
		p     Point
		wantX string
		wantY string
	}{
		{name: "Origin", p: Point{}, wantX: `cx="50.00"`, wantY: `cy="50.00"`},
		{name: "TopRight", p: Point{X: 1, Y: 1}, wantX: `cx="100.00"`, wantY: `cy="0.00"`},
		{name: "BottomLeft", p: Point{X: -1, Y: -1}, wantX: `cx="0.00"`, wantY: `cy="100.00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Clear()
			c.Marker(tt.p, 2, 1)
			out := string(c.Bytes())
			if !strings.Contains(out, tt.wantX) || !strings.Contains(out, tt.wantY) {
				t.Errorf("marker at %v rendered as %q, want %s %s", tt.p, out, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSVGDeterministic(t *testing.T) {
	draw := func() []byte {
		c := NewSVG(400, 400)
		c.SetBounds(Range{Min: -1.5, Max: 1.5}, Range{Min: -1.5, Max: 1.5})
		c.SetColor(ColorRed)
		c.Marker(Point{X: 0.3, Y: -0.2}, 7, 0.8)
		c.SetColor(ColorBlue)
		c.Line([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1, 0.4)
		return c.Bytes()
	}

	if !bytes.Equal(draw(), draw()) {
		t.Error("identical operation streams produced different SVG bytes")
	}
}

func TestSVGOpacityClamped(t *testing.T) {
	c := NewSVG(100, 100)
	c.Marker(Point{}, 2, 1.7)
	c.Circle(Point{}, 0.5, false, -0.3)

	out := string(c.Bytes())
	if !strings.Contains(out, `opacity="1.000"`) {
		t.Error("opacity above 1 not clamped")
	}
	if !strings.Contains(out, `opacity="0.000"`) {
		t.Error("opacity below 0 not clamped")
	}
}

func TestSVGClearResetsFrame(t *testing.T) {
	c := NewSVG(100, 100)
	c.SetColor(ColorRed)
	c.Marker(Point{}, 2, 1)
	c.SetTitle("first", 1)
	c.Clear()

	out := string(c.Bytes())
	if strings.Contains(out, "circle") || strings.Contains(out, "first") {
		t.Errorf("Clear left stale elements: %q", out)
	}
}

func TestSVGTextEscaped(t *testing.T) {
	c := NewSVG(100, 100)
	c.Text(Point{}, "a<b&c", 12, 1)

	out := string(c.Bytes())
	if !strings.Contains(out, "a&lt;b&amp;c") {
		t.Errorf("text not escaped: %q", out)
	}
}

func TestSVGLineNeedsTwoPoints(t *testing.T) {
	c := NewSVG(100, 100)
	c.Line([]Point{{X: 0, Y: 0}}, 1, 1)

	if strings.Contains(string(c.Bytes()), "polyline") {
		t.Error("single-point line emitted a polyline")
	}
}
