package canvas

// multi fans every draw operation out to all backends, in order.
type multi struct {
	backends []Canvas
}

// Multi returns a canvas that duplicates each operation onto all given
// backends, similar to io.MultiWriter. With a single backend it is
// returned unchanged.
func Multi(backends ...Canvas) Canvas {
	if len(backends) == 1 {
		return backends[0]
	}
	return &multi{backends: backends}
}

func (m *multi) Clear() {
	for _, b := range m.backends {
		b.Clear()
	}
}

func (m *multi) SetBounds(x, y Range) {
	for _, b := range m.backends {
		b.SetBounds(x, y)
	}
}

func (m *multi) SetTitle(text string, opacity float64) {
	for _, b := range m.backends {
		b.SetTitle(text, opacity)
	}
}

func (m *multi) SetColor(c Color) {
	for _, b := range m.backends {
		b.SetColor(c)
	}
}

func (m *multi) Circle(center Point, radius float64, filled bool, opacity float64) {
	for _, b := range m.backends {
		b.Circle(center, radius, filled, opacity)
	}
}

func (m *multi) Text(pos Point, s string, size float64, opacity float64) {
	for _, b := range m.backends {
		b.Text(pos, s, size, opacity)
	}
}

func (m *multi) Line(points []Point, width float64, opacity float64) {
	for _, b := range m.backends {
		b.Line(points, width, opacity)
	}
}

func (m *multi) Marker(pos Point, size float64, opacity float64) {
	for _, b := range m.backends {
		b.Marker(pos, size, opacity)
	}
}
