package anim

import (
	"math"
	"testing"

	"github.com/matzehuels/monadviz/pkg/canvas"
	"github.com/matzehuels/monadviz/pkg/layout"
)

func testModel(t *testing.T, n int) *layout.Model {
	t.Helper()
	m, err := layout.New(n, 42)
	if err != nil {
		t.Fatalf("layout.New: %v", err)
	}
	return m
}

func frameAt(t *testing.T, m *layout.Model, stage Stage, progress float64) Frame {
	t.Helper()
	const fps = 100
	return Frame{
		Stage:      stage,
		Index:      int(stage)*fps + int(progress*fps),
		StageFrame: int(progress * fps),
		Progress:   progress,
		Layout:     m,
	}
}

// TestInfiniteFieldFadesOut: the circle and label opacity is 1-progress,
// monotonically non-increasing and 0 at progress 1.
func TestInfiniteFieldFadesOut(t *testing.T) {
	m := testModel(t, 3)

	prev := math.Inf(1)
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 0.99} {
		rec := canvas.NewRecorder()
		if err := renderInfiniteField(frameAt(t, m, StageInfiniteField, p), rec); err != nil {
			t.Fatalf("renderInfiniteField(%v): %v", p, err)
		}

		circles := rec.Find(canvas.OpCircle)
		if len(circles) != 1 {
			t.Fatalf("progress %v: %d circles, want 1", p, len(circles))
		}
		alpha := circles[0].Opacity
		if want := 1 - p; math.Abs(alpha-want) > 1e-12 {
			t.Errorf("progress %v: opacity = %v, want %v", p, alpha, want)
		}
		if alpha > prev {
			t.Errorf("progress %v: opacity increased (%v -> %v)", p, prev, alpha)
		}
		prev = alpha

		if texts := rec.Find(canvas.OpText); len(texts) != 1 || texts[0].Text != "∞" {
			t.Errorf("progress %v: text ops = %v, want single ∞", p, texts)
		}
	}
}

// TestSingularityMarkerGrows: with scale = max(0,1-progress) the marker
// radius is 10*(1-scale), growing from 0 to 10 as the field collapses in.
func TestSingularityMarkerGrows(t *testing.T) {
	m := testModel(t, 3)

	prev := -1.0
	for _, p := range []float64{0, 0.3, 0.6, 0.99} {
		rec := canvas.NewRecorder()
		if err := renderSingularity(frameAt(t, m, StageSingularity, p), rec); err != nil {
			t.Fatalf("renderSingularity(%v): %v", p, err)
		}

		markers := rec.Find(canvas.OpMarker)
		if len(markers) != 1 {
			t.Fatalf("progress %v: %d markers, want 1", p, len(markers))
		}
		size := markers[0].Size
		if want := 10 * p; math.Abs(size-want) > 1e-12 {
			t.Errorf("progress %v: marker size = %v, want %v", p, size, want)
		}
		if size < prev {
			t.Errorf("progress %v: marker shrank (%v -> %v)", p, prev, size)
		}
		prev = size
	}
}

// TestEmergenceScalesFromOrigin: each display position magnitude is
// exactly progress times the stored position magnitude.
func TestEmergenceScalesFromOrigin(t *testing.T) {
	m := testModel(t, 5)

	for _, p := range []float64{0, 0.5, 0.9} {
		rec := canvas.NewRecorder()
		if err := renderEmergence(frameAt(t, m, StageEmergence, p), rec); err != nil {
			t.Fatalf("renderEmergence(%v): %v", p, err)
		}

		markers := rec.Find(canvas.OpMarker)
		if len(markers) != m.NodeCount() {
			t.Fatalf("progress %v: %d markers, want %d", p, len(markers), m.NodeCount())
		}
		for i, op := range markers {
			stored := m.Position(i)
			wantMag := p * math.Hypot(stored.X, stored.Y)
			gotMag := math.Hypot(op.Pos.X, op.Pos.Y)
			if math.Abs(gotMag-wantMag) > 1e-12 {
				t.Errorf("progress %v, node %d: |display| = %v, want %v", p, i, gotMag, wantMag)
			}
			if op.Opacity != p {
				t.Errorf("progress %v, node %d: opacity = %v, want %v", p, i, op.Opacity, p)
			}
		}
	}
}

// TestInternalStructureRings: five concentric rings at radii 0.2..1.0,
// one orbiting marker per ring at angle progress*2π.
func TestInternalStructureRings(t *testing.T) {
	m := testModel(t, 4)
	const p = 0.25

	rec := canvas.NewRecorder()
	if err := renderInternalStructure(frameAt(t, m, StageInternalStructure, p), rec); err != nil {
		t.Fatalf("renderInternalStructure: %v", err)
	}

	circles := rec.Find(canvas.OpCircle)
	if len(circles) != 5 {
		t.Fatalf("%d rings, want 5", len(circles))
	}
	for i, op := range circles {
		if want := float64(i+1) * 0.2; math.Abs(op.Radius-want) > 1e-12 {
			t.Errorf("ring %d: radius = %v, want %v", i, op.Radius, want)
		}
		if op.Filled {
			t.Errorf("ring %d: filled, want outline", i)
		}
	}

	// Node markers collapse onto the origin; orbit markers sit on their
	// rings at angle progress*2π.
	markers := rec.Find(canvas.OpMarker)
	if want := m.NodeCount() + 5; len(markers) != want {
		t.Fatalf("%d markers, want %d", len(markers), want)
	}
	angle := p * 2 * math.Pi
	orbit := markers[m.NodeCount():]
	for i, op := range orbit {
		r := float64(i+1) * 0.2
		want := canvas.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
		if math.Abs(op.Pos.X-want.X) > 1e-12 || math.Abs(op.Pos.Y-want.Y) > 1e-12 {
			t.Errorf("orbit %d: pos = %v, want %v", i, *op.Pos, want)
		}
	}
	for _, op := range markers[:m.NodeCount()] {
		if op.Pos.X != 0 || op.Pos.Y != 0 {
			t.Errorf("node marker not re-centered at origin: %v", *op.Pos)
		}
	}
}

// TestSteadyStateNetwork: nodes at stored positions, one plain line and
// one wave polyline per edge, edge opacity 0.3*progress.
func TestSteadyStateNetwork(t *testing.T) {
	m := testModel(t, 6)
	const p = 0.5

	rec := canvas.NewRecorder()
	if err := renderSteadyState(frameAt(t, m, StageSteadyState, p), rec); err != nil {
		t.Fatalf("renderSteadyState: %v", err)
	}

	markers := rec.Find(canvas.OpMarker)
	if len(markers) != m.NodeCount() {
		t.Fatalf("%d node markers, want %d", len(markers), m.NodeCount())
	}
	for i, op := range markers {
		if *op.Pos != m.Position(i) {
			t.Errorf("node %d drawn at %v, want stored position %v", i, *op.Pos, m.Position(i))
		}
	}

	lines := rec.Find(canvas.OpLine)
	if want := 2 * len(m.Edges()); len(lines) != want {
		t.Fatalf("%d lines, want %d (edge + wave per edge)", len(lines), want)
	}
	for _, op := range lines[:len(m.Edges())] {
		if math.Abs(op.Opacity-0.3*p) > 1e-12 {
			t.Errorf("edge opacity = %v, want %v", op.Opacity, 0.3*p)
		}
	}
	for _, op := range lines[len(m.Edges()):] {
		if len(op.Points) != WaveSamples {
			t.Errorf("wave has %d samples, want %d", len(op.Points), WaveSamples)
		}
		if op.Opacity != p {
			t.Errorf("wave opacity = %v, want %v", op.Opacity, p)
		}
	}
}

func TestStageMetadata(t *testing.T) {
	for s := StageInfiniteField; s <= StageSteadyState; s++ {
		if s.String() == "" || s.Title() == "" {
			t.Errorf("stage %d: missing String or Title", s)
		}
		x, y := s.Bounds()
		if x.Span() <= 0 || y.Span() <= 0 {
			t.Errorf("stage %v: degenerate bounds", s)
		}
	}
	if got := Stage(9).String(); got != "stage(9)" {
		t.Errorf("Stage(9).String() = %q, want stage(9)", got)
	}
}
