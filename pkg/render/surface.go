// pkg/render/surface.go
package render

import "image"

// Surface is the drawing target shared by every entity drawn in a frame.
// Transient state (alpha) lives on a save/restore stack, the same way a
// canvas context does.
type Surface interface {
	// DrawSprite draws the src region of the sheet identified by sheetID
	// into the destination rectangle (x, y, w, h).
	DrawSprite(sheetID string, src image.Rectangle, x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1 float64)
	Save()
	Restore()
	SetAlpha(a float64)
	Alpha() float64
}

// WithAlpha runs fn with the surface alpha set to a and restores the previous
// state afterwards, even if fn panics.
func WithAlpha(s Surface, a float64, fn func()) {
	s.Save()
	defer s.Restore()
	s.SetAlpha(a)
	fn()
}

// DrawState is the part of the surface state covered by Save/Restore.
type DrawState struct {
	Alpha float64
}

// StateStack keeps the current draw state plus the saved ones.
// Backends embed it to get Save/Restore/SetAlpha/Alpha for free.
type StateStack struct {
	current DrawState
	saved   []DrawState
}

// NewStateStack returns a stack with full opacity.
func NewStateStack() StateStack {
	return StateStack{current: DrawState{Alpha: 1}}
}

func (st *StateStack) Save() {
	st.saved = append(st.saved, st.current)
}

// Restore pops the last saved state. Restore without a matching Save is a no-op.
func (st *StateStack) Restore() {
	if len(st.saved) == 0 {
		return
	}
	st.current = st.saved[len(st.saved)-1]
	st.saved = st.saved[:len(st.saved)-1]
}

func (st *StateStack) SetAlpha(a float64) {
	st.current.Alpha = clamp01(a)
}

func (st *StateStack) Alpha() float64 {
	return st.current.Alpha
}

// Depth reports how many states are currently saved.
func (st *StateStack) Depth() int {
	return len(st.saved)
}

// Reset drops all saved states and returns to full opacity.
func (st *StateStack) Reset() {
	st.current = DrawState{Alpha: 1}
	st.saved = st.saved[:0]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
