package anim

import (
	"math"

	"github.com/matzehuels/monadviz/pkg/canvas"
	"github.com/matzehuels/monadviz/pkg/errors"
)

// Wave parameters for the steady-state stage.
const (
	// WaveSamples is the number of points sampled along each edge,
	// endpoints included.
	WaveSamples = 50

	// waveCycles is the number of full sine periods along one edge.
	waveCycles = 4

	// waveAmplitude is the perpendicular displacement in world units.
	waveAmplitude = 0.05
)

// WavePhase returns the global phase angle for a stage-local frame index.
// The phase advances by π/50 per frame, which makes the perturbation
// travel along the edges as the animation plays.
func WavePhase(stageFrame int) float64 {
	return float64(stageFrame) * math.Pi / 50
}

// WaveOffset returns the perpendicular displacement at sample position
// t ∈ [0,1] along an edge, for the given phase angle.
func WaveOffset(t, phase float64) float64 {
	return waveAmplitude * math.Sin(2*math.Pi*waveCycles*t-phase)
}

// WaveEdgePoints samples the traveling sine perturbation along the edge
// from a to b: WaveSamples points spaced linearly between the endpoints,
// each displaced perpendicular to the edge by [WaveOffset].
//
// Fails with DEGENERATE_GEOMETRY when a and b coincide: the perpendicular
// direction is undefined for a zero-length edge.
func WaveEdgePoints(a, b canvas.Point, phase float64) ([]canvas.Point, error) {
	dx, dy := b.X-a.X, b.Y-a.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return nil, errors.New(errors.ErrCodeDegenerateGeometry,
			"zero-length edge at (%g, %g)", a.X, a.Y)
	}

	pts := make([]canvas.Point, WaveSamples)
	for i := range pts {
		t := float64(i) / float64(WaveSamples-1)
		off := WaveOffset(t, phase)
		pts[i] = canvas.Point{
			X: a.X + t*dx - off*dy/dist,
			Y: a.Y + t*dy + off*dx/dist,
		}
	}
	return pts, nil
}
