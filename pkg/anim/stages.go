package anim

import (
	"math"

	"github.com/matzehuels/monadviz/pkg/canvas"
)

// Rendering constants shared by the stage renderers.
const (
	fieldRadius       = 0.7 // world units, stage 0 boundary circle
	infinitySymbol    = "∞"
	infinityFontSize  = 40
	nodeMarkerSize    = 7   // device units
	singularityMax    = 10  // device units, stage 1 marker at full size
	orbitMarkerSize   = 2.5 // device units
	ringCount         = 5
	ringSpacing       = 0.2 // world units between concentric rings
	edgeOpacityFactor = 0.3
	edgeLineWidth     = 1.0
)

// renderInfiniteField draws stage 0: the boundary circle and the infinity
// label fade out as progress increases.
func renderInfiniteField(f Frame, c canvas.Canvas) error {
	c.SetBounds(f.Stage.Bounds())
	alpha := math.Max(0, 1-f.Progress)

	c.SetColor(canvas.ColorBlack)
	c.Circle(canvas.Point{}, fieldRadius, false, alpha)
	c.Text(canvas.Point{}, infinitySymbol, infinityFontSize, alpha)
	c.SetTitle(f.Stage.Title(), alpha)
	return nil
}

// renderSingularity draws stage 1: a point marker grows from nothing as
// the field collapses into it. With scale = max(0, 1-progress), the
// marker radius is 10*(1-scale) and the title opacity is 1-scale.
func renderSingularity(f Frame, c canvas.Canvas) error {
	c.SetBounds(f.Stage.Bounds())
	scale := math.Max(0, 1-f.Progress)

	c.SetColor(canvas.ColorRed)
	c.Marker(canvas.Point{}, singularityMax*(1-scale), 1)
	c.SetTitle(f.Stage.Title(), 1-scale)
	return nil
}

// renderEmergence draws stage 2: nodes scale out linearly from the origin
// toward their stored layout positions.
func renderEmergence(f Frame, c canvas.Canvas) error {
	c.SetBounds(f.Stage.Bounds())

	c.SetColor(canvas.ColorRed)
	for _, p := range f.Layout.Positions() {
		display := canvas.Point{X: p.X * f.Progress, Y: p.Y * f.Progress}
		c.Marker(display, nodeMarkerSize, f.Progress)
	}
	c.SetTitle(f.Stage.Title(), f.Progress)
	return nil
}

// renderInternalStructure draws stage 3: all nodes collapse onto the
// origin and five concentric rings appear, each carrying one orbiting
// marker at angle progress*2π.
func renderInternalStructure(f Frame, c canvas.Canvas) error {
	c.SetBounds(f.Stage.Bounds())

	c.SetColor(canvas.ColorRed)
	for range f.Layout.Positions() {
		c.Marker(canvas.Point{}, nodeMarkerSize, f.Progress)
	}

	angle := f.Progress * 2 * math.Pi
	for i := 1; i <= ringCount; i++ {
		r := float64(i) * ringSpacing
		c.SetColor(canvas.ColorBlack)
		c.Circle(canvas.Point{}, r, false, f.Progress)
		c.SetColor(canvas.ColorBlue)
		c.Marker(canvas.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)},
			orbitMarkerSize, f.Progress)
	}
	c.SetTitle(f.Stage.Title(), f.Progress)
	return nil
}

// renderSteadyState draws stage 4: the full ring network at the stored
// positions, with a traveling sinusoidal perturbation along every edge.
func renderSteadyState(f Frame, c canvas.Canvas) error {
	c.SetBounds(f.Stage.Bounds())
	pos := f.Layout.Positions()

	c.SetColor(canvas.ColorRed)
	for _, p := range pos {
		c.Marker(p, nodeMarkerSize, f.Progress)
	}

	c.SetColor(canvas.ColorBlack)
	for _, e := range f.Layout.Edges() {
		c.Line([]canvas.Point{pos[e.A], pos[e.B]}, edgeLineWidth, edgeOpacityFactor*f.Progress)
	}

	phase := WavePhase(f.StageFrame)
	c.SetColor(canvas.ColorBlue)
	for _, e := range f.Layout.Edges() {
		pts, err := WaveEdgePoints(pos[e.A], pos[e.B], phase)
		if err != nil {
			return err
		}
		c.Line(pts, edgeLineWidth, f.Progress)
	}

	c.SetTitle(f.Stage.Title(), f.Progress)
	return nil
}

// stageRenderers maps every stage to its renderer. The animator validates
// this table is exhaustive at construction.
func stageRenderers() [NumStages]Renderer {
	return [NumStages]Renderer{
		StageInfiniteField:     renderInfiniteField,
		StageSingularity:       renderSingularity,
		StageEmergence:         renderEmergence,
		StageInternalStructure: renderInternalStructure,
		StageSteadyState:       renderSteadyState,
	}
}
