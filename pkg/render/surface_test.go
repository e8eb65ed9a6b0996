package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Surface = (*Recorder)(nil)
var _ Surface = (*TerminalSurface)(nil)

func TestStateStack(t *testing.T) {
	t.Run("starts opaque", func(t *testing.T) {
		st := NewStateStack()
		assert.Equal(t, 1.0, st.Alpha())
		assert.Equal(t, 0, st.Depth())
	})

	t.Run("nested save and restore", func(t *testing.T) {
		st := NewStateStack()
		st.Save()
		st.SetAlpha(0.5)
		st.Save()
		st.SetAlpha(0.25)
		assert.Equal(t, 0.25, st.Alpha())

		st.Restore()
		assert.Equal(t, 0.5, st.Alpha())
		st.Restore()
		assert.Equal(t, 1.0, st.Alpha())
		assert.Equal(t, 0, st.Depth())
	})

	t.Run("restore without save is a no-op", func(t *testing.T) {
		st := NewStateStack()
		st.SetAlpha(0.3)
		st.Restore()
		assert.Equal(t, 0.3, st.Alpha())
	})

	t.Run("alpha is clamped", func(t *testing.T) {
		st := NewStateStack()
		st.SetAlpha(2)
		assert.Equal(t, 1.0, st.Alpha())
		st.SetAlpha(-1)
		assert.Equal(t, 0.0, st.Alpha())
	})

	t.Run("reset drops saved states", func(t *testing.T) {
		st := NewStateStack()
		st.Save()
		st.Save()
		st.SetAlpha(0.1)
		st.Reset()
		assert.Equal(t, 1.0, st.Alpha())
		assert.Equal(t, 0, st.Depth())
	})
}

func TestWithAlpha(t *testing.T) {
	r := NewRecorder()
	WithAlpha(r, 0.7, func() {
		r.DrawSprite("ghost", image.Rect(0, 0, 10, 10), 1, 2, 5, 5)
	})
	r.DrawSprite("worm", image.Rect(0, 0, 10, 10), 1, 2, 5, 5)

	require.Len(t, r.Ops, 2)
	assert.InDelta(t, 0.7, r.Ops[0].Alpha, 1e-9)
	assert.Equal(t, 1.0, r.Ops[1].Alpha)
	assert.Equal(t, 0, r.Depth())
}

func TestWithAlphaRestoresOnPanic(t *testing.T) {
	r := NewRecorder()
	assert.Panics(t, func() {
		WithAlpha(r, 0.2, func() { panic("boom") })
	})
	assert.Equal(t, 1.0, r.Alpha())
	assert.Equal(t, 0, r.Depth())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.StrokeLine(1, 0, 1, 20)
	r.DrawSprite("spider", image.Rect(310, 0, 620, 175), 0, 10, 155, 87.5)

	require.Len(t, r.Ops, 2)
	assert.Equal(t, OpLine, r.Ops[0].Kind)
	assert.Equal(t, 20.0, r.Ops[0].Y1)
	sprites := r.Sprites()
	require.Len(t, sprites, 1)
	assert.Equal(t, "spider", sprites[0].SheetID)
	assert.Equal(t, image.Rect(310, 0, 620, 175), sprites[0].Src)

	r.Save()
	r.Clear()
	assert.Empty(t, r.Ops)
	assert.Equal(t, 0, r.Depth())
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, c, ScaleAlpha(c, 1))
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, ScaleAlpha(c, 0.5))
	assert.Equal(t, color.RGBA{}, ScaleAlpha(c, 0))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, DarkenColor(c))
}
