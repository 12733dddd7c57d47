// Package canvas defines the drawing surface consumed by the animation core.
//
// # Overview
//
// The animation stages never talk to a concrete output format. They issue
// primitive draw operations against the [Canvas] interface, and the backend
// decides how those operations become pixels, SVG elements, or terminal
// cells. This keeps the stage renderers pure and lets the same frame be
// rendered to a file and played live in the terminal.
//
// # Coordinate Model
//
// All positions are in world coordinates, bounded by [Canvas.SetBounds].
// Two unit conventions follow the usual plotting-library split:
//
//   - Circle radii are world units (a radius of 0.7 spans 0.7 data units).
//   - Marker and text sizes are device units (pixels or cells), independent
//     of the current bounds.
//
// # Backends
//
//   - [SVG]: deterministic SVG emission for file output.
//   - [Term]: cell-grid rendering for terminal playback.
//   - [Recorder]: records the raw operation stream; used for the JSON
//     output format and as the test double for stage renderers.
//
// [Multi] fans one operation stream out to several backends, so a frame
// can be written to a file and recorded in the same render pass.
package canvas

// Point is a position in world coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Range is a closed interval on one axis.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns the width of the range.
func (r Range) Span() float64 { return r.Max - r.Min }

// Color selects the stroke/fill color for subsequent draw operations.
type Color string

// Colors used by the animation stages.
const (
	ColorBlack Color = "black"
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
)

// Canvas is the primitive drawing surface.
//
// Opacity arguments are in [0,1]; backends clamp out-of-range values.
// SetColor is sticky: it applies to every subsequent operation until the
// next SetColor or Clear (Clear resets to black).
type Canvas interface {
	// Clear resets the surface to an empty frame.
	Clear()

	// SetBounds sets the world-coordinate window mapped onto the surface.
	SetBounds(x, y Range)

	// SetTitle sets the frame title with the given opacity.
	SetTitle(text string, opacity float64)

	// SetColor selects the color for subsequent operations.
	SetColor(c Color)

	// Circle draws a circle with radius in world units.
	Circle(center Point, radius float64, filled bool, opacity float64)

	// Text draws a string centered at pos with size in device units.
	Text(pos Point, s string, size float64, opacity float64)

	// Line draws a polyline through points with width in device units.
	Line(points []Point, width float64, opacity float64)

	// Marker draws a filled dot at pos with radius in device units.
	Marker(pos Point, size float64, opacity float64)
}

// clampOpacity forces opacity into [0,1].
func clampOpacity(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// defaultBounds is used until SetBounds is called.
var defaultBounds = Range{Min: -1, Max: 1}
