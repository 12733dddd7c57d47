// Package layout computes deterministic 2-D positions for the monad network.
//
// Positions come from a seeded force-directed (Fruchterman–Reingold) spring
// layout over the ring topology. The same (node count, seed) pair always
// produces bit-identical positions, so animations are reproducible across
// runs. Positions are computed once at construction and are immutable; the
// animation stages derive per-frame display positions from them without
// mutating the model.
package layout

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/monadviz/pkg/canvas"
	"github.com/matzehuels/monadviz/pkg/errors"
)

// Spring layout parameters. Chosen to settle a ring of a few dozen nodes
// into a stable round shape within the iteration budget.
const (
	iterations  = 50
	initialTemp = 0.1
)

// Model holds the node positions and the ring topology.
type Model struct {
	nodeCount int
	seed      uint64
	positions []canvas.Point
	edges     []Edge
}

// New computes the spring layout for nodeCount nodes connected in a ring.
//
// The layout is deterministic for a given (nodeCount, seed). Positions are
// rescaled so the layout is centered on the origin with max |coordinate| = 1.
// Fails with INVALID_CONFIGURATION for nodeCount < 2: a ring needs at least
// two distinct nodes (a single node would require a self-loop, which the
// wave rendering cannot draw).
func New(nodeCount int, seed uint64) (*Model, error) {
	edges, err := RingEdges(nodeCount)
	if err != nil {
		return nil, err
	}

	m := &Model{
		nodeCount: nodeCount,
		seed:      seed,
		edges:     edges,
	}
	m.positions = springLayout(nodeCount, edges, seed)
	return m, nil
}

// FromPositions builds a model over precomputed positions, with the ring
// topology derived from the slice length. This bypasses the spring layout
// for callers that already have coordinates; the positions are copied and
// become immutable. Fails with INVALID_CONFIGURATION for fewer than two
// positions.
func FromPositions(positions []canvas.Point) (*Model, error) {
	edges, err := RingEdges(len(positions))
	if err != nil {
		return nil, err
	}

	pos := make([]canvas.Point, len(positions))
	copy(pos, positions)
	return &Model{
		nodeCount: len(positions),
		positions: pos,
		edges:     edges,
	}, nil
}

// NodeCount returns the number of nodes.
func (m *Model) NodeCount() int { return m.nodeCount }

// Seed returns the layout seed.
func (m *Model) Seed() uint64 { return m.seed }

// Position returns the stored position of node id.
func (m *Model) Position(id int) canvas.Point { return m.positions[id] }

// Positions returns a copy of all stored positions, indexed by node ID.
func (m *Model) Positions() []canvas.Point {
	out := make([]canvas.Point, len(m.positions))
	copy(out, m.positions)
	return out
}

// Edges returns the ring edge set.
func (m *Model) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// springLayout runs a Fruchterman–Reingold simulation seeded by a PCG
// source, then rescales the result to the unit box.
func springLayout(n int, edges []Edge, seed uint64) []canvas.Point {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	pos := make([]canvas.Point, n)
	for i := range pos {
		pos[i] = canvas.Point{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
	}

	// Optimal pairwise distance for the unit box area.
	k := math.Sqrt(4.0 / float64(n))
	temp := initialTemp
	cool := temp / float64(iterations+1)

	disp := make([]canvas.Point, n)
	for iter := 0; iter < iterations; iter++ {
		for i := range disp {
			disp[i] = canvas.Point{}
		}

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				d := math.Hypot(dx, dy)
				if d < 1e-9 {
					d = 1e-9
				}
				f := k * k / d / d
				disp[i].X += dx * f
				disp[i].Y += dy * f
				disp[j].X -= dx * f
				disp[j].Y -= dy * f
			}
		}

		// Attraction along ring edges.
		for _, e := range edges {
			dx, dy := pos[e.A].X-pos[e.B].X, pos[e.A].Y-pos[e.B].Y
			d := math.Hypot(dx, dy)
			if d < 1e-9 {
				d = 1e-9
			}
			f := d * d / k
			disp[e.A].X -= dx / d * f
			disp[e.A].Y -= dy / d * f
			disp[e.B].X += dx / d * f
			disp[e.B].Y += dy / d * f
		}

		// Limit movement by the current temperature and cool down.
		for i := 0; i < n; i++ {
			d := math.Hypot(disp[i].X, disp[i].Y)
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, temp)
			pos[i].X += disp[i].X / d * step
			pos[i].Y += disp[i].Y / d * step
		}
		temp -= cool
	}

	rescale(pos)
	return pos
}

// rescale centers positions on the origin and scales the layout so the
// largest coordinate magnitude is exactly 1.
func rescale(pos []canvas.Point) {
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))

	var maxAbs float64
	for i := range pos {
		pos[i].X -= cx
		pos[i].Y -= cy
		maxAbs = math.Max(maxAbs, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if maxAbs == 0 {
		return
	}
	for i := range pos {
		pos[i].X /= maxAbs
		pos[i].Y /= maxAbs
	}
}

// validateNodeCount rejects node counts that cannot form a ring.
func validateNodeCount(n int) error {
	if n < 2 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "node count must be >= 2, got %d", n)
	}
	return nil
}
