package plot

import "image/color"

// OpKind identifies a recorded canvas operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpMoveTo
	OpLineTo
	OpClosePath
	OpSetStroke
	OpStroke
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpClosePath:
		return "ClosePath"
	case OpSetStroke:
		return "SetStroke"
	case OpStroke:
		return "Stroke"
	default:
		return "Unknown"
	}
}

// Op is one recorded canvas operation. Only the fields relevant to the
// operation kind are set.
type Op struct {
	Kind  OpKind
	X, Y  float64
	Width float64
	Color color.Color
}

// Recorder is a Canvas that records operations instead of drawing.
// It lets the plotter's output be asserted on headlessly: tests inspect
// the exact sequence of path commands, stroke styles, and coordinates.
type Recorder struct {
	Ops []Op
}

var _ Canvas = (*Recorder)(nil)

// Clear implements Canvas.
func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

// MoveTo implements Canvas.
func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveTo, X: x, Y: y})
}

// LineTo implements Canvas.
func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineTo, X: x, Y: y})
}

// ClosePath implements Canvas.
func (r *Recorder) ClosePath() {
	r.Ops = append(r.Ops, Op{Kind: OpClosePath})
}

// SetStroke implements Canvas.
func (r *Recorder) SetStroke(width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpSetStroke, Width: width, Color: c})
}

// Stroke implements Canvas.
func (r *Recorder) Stroke() error {
	r.Ops = append(r.Ops, Op{Kind: OpStroke})
	return nil
}

// Count returns how many recorded operations have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
