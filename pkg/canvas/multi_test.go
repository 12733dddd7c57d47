package canvas

import "testing"

func TestMultiFansOut(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	m := Multi(a, b)

	m.SetColor(ColorRed)
	m.Marker(Point{X: 0.5, Y: -0.5}, 7, 1.0)
	m.Line([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1.0, 0.5)

	for name, r := range map[string]*Recorder{"first": a, "second": b} {
		ops := r.Ops()
		if len(ops) != 3 {
			t.Fatalf("%s backend got %d ops, want 3", name, len(ops))
		}
		if ops[1].Kind != OpMarker {
			t.Errorf("%s backend op[1] = %s, want %s", name, ops[1].Kind, OpMarker)
		}
	}
}

func TestMultiSingleBackendUnwrapped(t *testing.T) {
	r := NewRecorder()
	if Multi(r) != Canvas(r) {
		t.Error("Multi with one backend should return it unchanged")
	}
}

func TestMultiClear(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	m := Multi(a, b)

	m.Marker(Point{}, 1, 1)
	m.Clear()

	if len(a.Ops()) != 0 || len(b.Ops()) != 0 {
		t.Error("Clear should reset all backends")
	}
}
