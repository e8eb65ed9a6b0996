// pkg/render/recorder.go
package render

import "image"

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpSprite OpKind = iota
	OpLine
)

// Op is one recorded draw call together with the alpha it was drawn with.
type Op struct {
	Kind    OpKind
	SheetID string
	Src     image.Rectangle
	X, Y    float64
	W, H    float64 // sprites only
	X1, Y1  float64 // lines only
	Alpha   float64
}

// Recorder is a headless Surface that keeps every draw call in order.
type Recorder struct {
	StateStack
	Ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{StateStack: NewStateStack()}
}

func (r *Recorder) DrawSprite(sheetID string, src image.Rectangle, x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSprite, SheetID: sheetID, Src: src, X: x, Y: y, W: w, H: h, Alpha: r.Alpha()})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Alpha: r.Alpha()})
}

// Sprites returns only the sprite draws.
func (r *Recorder) Sprites() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpSprite {
			out = append(out, op)
		}
	}
	return out
}

// Clear drops recorded ops and resets the draw state.
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Reset()
}
