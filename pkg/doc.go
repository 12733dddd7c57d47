// Package pkg provides the core libraries for the monadviz animation.
//
// # Overview
//
// Monadviz renders a five-stage conceptual animation of a monadic ring
// network: abstract monads transition from an infinite frequency field,
// through a singularity collapse, into a connected ring exchanging wave
// signals. The pkg directory is organized as:
//
//  1. [layout] - Ring topology and spring layout (the static model)
//  2. [anim] - Animation clock, stages, and frame dispatch
//  3. [canvas] - Drawing surface abstraction with SVG, terminal, and
//     recording backends
//  4. [render] - Format conversion (SVG to PDF/PNG) and the Graphviz
//     topology diagram
//
// # Architecture
//
// The typical data flow:
//
//	node count + seed
//	         ↓
//	    [layout] package (ring edges + spring positions)
//	         ↓
//	    [anim] package (frame → stage/progress → draw operations)
//	         ↓
//	    [canvas] package (SVG / terminal / recorded operations)
//	         ↓
//	    SVG/PNG/PDF/JSON output or live playback
//
// # Quick Start
//
// Render a single frame to SVG:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/monadviz/pkg/anim"
//	    "github.com/matzehuels/monadviz/pkg/canvas"
//	    "github.com/matzehuels/monadviz/pkg/layout"
//	)
//
//	// 1. Compute the layout
//	model, _ := layout.New(12, 42)
//
//	// 2. Build the animator
//	a, _ := anim.New(model, 150)
//
//	// 3. Render the current frame
//	c := canvas.NewSVG(800, 800)
//	_ = a.RenderFrame(context.Background(), c)
//	svg := c.Bytes()
//
// Supporting packages: [errors] for coded errors, [observability] for
// animation lifecycle hooks, [buildinfo] for version metadata.
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/monadviz/pkg/layout
// [anim]: https://pkg.go.dev/github.com/matzehuels/monadviz/pkg/anim
// [canvas]: https://pkg.go.dev/github.com/matzehuels/monadviz/pkg/canvas
// [render]: https://pkg.go.dev/github.com/matzehuels/monadviz/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/monadviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/monadviz/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/monadviz/pkg/buildinfo
package pkg
