package canvas

import (
	"encoding/json"
	"testing"
)

func TestRecorderCapturesOps(t *testing.T) {
	r := NewRecorder()
	r.SetBounds(Range{Min: -2, Max: 2}, Range{Min: -2, Max: 2})
	r.SetColor(ColorRed)
	r.Marker(Point{X: 1, Y: -1}, 7, 0.5)
	r.Line([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1, 0.3)

	if got := len(r.Ops()); got != 4 {
		t.Fatalf("len(Ops()) = %d, want 4", got)
	}

	markers := r.Find(OpMarker)
	if len(markers) != 1 {
		t.Fatalf("Find(marker) = %d ops, want 1", len(markers))
	}
	if markers[0].Pos.X != 1 || markers[0].Pos.Y != -1 {
		t.Errorf("marker pos = %v, want (1,-1)", *markers[0].Pos)
	}
	if markers[0].Opacity != 0.5 {
		t.Errorf("marker opacity = %v, want 0.5", markers[0].Opacity)
	}
}

func TestRecorderClear(t *testing.T) {
	r := NewRecorder()
	r.Marker(Point{}, 1, 1)
	r.Clear()
	if got := len(r.Ops()); got != 0 {
		t.Errorf("len(Ops()) after Clear = %d, want 0", got)
	}
}

func TestRecorderLineCopiesPoints(t *testing.T) {
	r := NewRecorder()
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	r.Line(pts, 1, 1)
	pts[0].X = 99

	if r.Find(OpLine)[0].Points[0].X == 99 {
		t.Error("recorder aliased the caller's point slice")
	}
}

func TestRecorderJSONRoundTrip(t *testing.T) {
	r := NewRecorder()
	r.SetTitle("steady state", 0.9)
	r.Circle(Point{}, 0.4, false, 0.9)

	data, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var ops []Op
	if err := json.Unmarshal(data, &ops); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("decoded %d ops, want 2", len(ops))
	}
	if ops[0].Kind != OpSetTitle || ops[0].Text != "steady state" {
		t.Errorf("ops[0] = %+v, want set_title", ops[0])
	}
	if ops[1].Kind != OpCircle || ops[1].Radius != 0.4 {
		t.Errorf("ops[1] = %+v, want circle r=0.4", ops[1])
	}
}
