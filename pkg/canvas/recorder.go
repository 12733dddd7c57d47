package canvas

import "encoding/json"

// OpKind identifies a recorded draw operation.
type OpKind string

// Operation kinds recorded by [Recorder].
const (
	OpClear     OpKind = "clear"
	OpSetBounds OpKind = "set_bounds"
	OpSetTitle  OpKind = "set_title"
	OpSetColor  OpKind = "set_color"
	OpCircle    OpKind = "circle"
	OpText      OpKind = "text"
	OpLine      OpKind = "line"
	OpMarker    OpKind = "marker"
)

// Op is one recorded draw operation. Only the fields relevant to the
// operation kind are populated.
type Op struct {
	Kind    OpKind  `json:"op"`
	XRange  *Range  `json:"x_range,omitempty"`
	YRange  *Range  `json:"y_range,omitempty"`
	Text    string  `json:"text,omitempty"`
	Color   Color   `json:"color,omitempty"`
	Center  *Point  `json:"center,omitempty"`
	Pos     *Point  `json:"pos,omitempty"`
	Points  []Point `json:"points,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Size    float64 `json:"size,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Filled  bool    `json:"filled,omitempty"`
	Opacity float64 `json:"opacity"`
}

// Recorder captures the raw operation stream of a frame.
//
// It backs the JSON output format and doubles as the test double for
// stage renderers: tests inspect the recorded ops instead of parsing
// rendered output.
type Recorder struct {
	ops []Op
}

// NewRecorder creates an empty recording canvas.
func NewRecorder() *Recorder { return &Recorder{} }

// Ops returns the operations recorded since the last Clear.
func (r *Recorder) Ops() []Op { return r.ops }

// Find returns all recorded operations of the given kind.
func (r *Recorder) Find(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// MarshalJSON serializes the operation stream of the current frame.
func (r *Recorder) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(r.ops, "", "  ")
}

// Clear drops all recorded operations.
func (r *Recorder) Clear() { r.ops = nil }

// SetBounds records the world window.
func (r *Recorder) SetBounds(x, y Range) {
	r.ops = append(r.ops, Op{Kind: OpSetBounds, XRange: &x, YRange: &y})
}

// SetTitle records the frame title.
func (r *Recorder) SetTitle(text string, opacity float64) {
	r.ops = append(r.ops, Op{Kind: OpSetTitle, Text: text, Opacity: clampOpacity(opacity)})
}

// SetColor records a color change.
func (r *Recorder) SetColor(c Color) {
	r.ops = append(r.ops, Op{Kind: OpSetColor, Color: c})
}

// Circle records a circle.
func (r *Recorder) Circle(center Point, radius float64, filled bool, opacity float64) {
	r.ops = append(r.ops, Op{Kind: OpCircle, Center: &center, Radius: radius, Filled: filled, Opacity: clampOpacity(opacity)})
}

// Text records a text draw.
func (r *Recorder) Text(pos Point, s string, size float64, opacity float64) {
	r.ops = append(r.ops, Op{Kind: OpText, Pos: &pos, Text: s, Size: size, Opacity: clampOpacity(opacity)})
}

// Line records a polyline.
func (r *Recorder) Line(points []Point, width float64, opacity float64) {
	pts := make([]Point, len(points))
	copy(pts, points)
	r.ops = append(r.ops, Op{Kind: OpLine, Points: pts, Width: width, Opacity: clampOpacity(opacity)})
}

// Marker records a dot.
func (r *Recorder) Marker(pos Point, size float64, opacity float64) {
	r.ops = append(r.ops, Op{Kind: OpMarker, Pos: &pos, Size: size, Opacity: clampOpacity(opacity)})
}
