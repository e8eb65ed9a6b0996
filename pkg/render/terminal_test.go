package render

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTerminal maps the 500x800 world onto 50x40 cells: one cell is 10x20 units.
func newTestTerminal(t *testing.T) (*TerminalSurface, tcell.SimulationScreen) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(50, 40)
	t.Cleanup(ss.Fini)
	ts := NewTerminalSurface(ss, 500, 800)
	ts.Begin()
	return ts, ss
}

func cellRune(ss tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := ss.GetContent(x, y)
	return r
}

func cellStyle(ss tcell.SimulationScreen, x, y int) tcell.Style {
	_, _, st, _ := ss.GetContent(x, y)
	return st
}

func TestTerminalToCell(t *testing.T) {
	ts, _ := newTestTerminal(t)
	x, y := ts.ToCell(105, 210)
	assert.Equal(t, 10, x)
	assert.Equal(t, 10, y)
	x, y = ts.ToCell(-5, -1)
	assert.Equal(t, -1, x)
	assert.Equal(t, -1, y)
}

func TestTerminalDrawSprite(t *testing.T) {
	ts, ss := newTestTerminal(t)
	ts.SetGlyph("worm", Glyph{Text: "W", Color: tcell.ColorGreen})

	ts.DrawSprite("worm", image.Rect(0, 0, 229, 171), 100, 200, 100, 40)

	for y := 10; y < 12; y++ {
		for x := 10; x < 20; x++ {
			assert.Equal(t, 'W', cellRune(ss, x, y), "cell %d,%d", x, y)
		}
	}
	assert.Equal(t, ' ', cellRune(ss, 20, 10))
	assert.Equal(t, ' ', cellRune(ss, 10, 12))
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorGreen), cellStyle(ss, 10, 10))
}

func TestTerminalDrawSpriteTinyAndUnknown(t *testing.T) {
	ts, ss := newTestTerminal(t)
	// меньше одной клетки: всё равно одна клетка
	ts.DrawSprite("nope", image.Rect(0, 0, 1, 1), 0, 0, 1, 1)
	assert.Equal(t, '#', cellRune(ss, 0, 0))
	assert.Equal(t, ' ', cellRune(ss, 1, 0))
}

func TestTerminalAlphaDims(t *testing.T) {
	ts, ss := newTestTerminal(t)
	ts.SetGlyph("ghost", Glyph{Text: "G", Color: tcell.ColorBlue})
	ts.SetGlyph("worm", Glyph{Text: "W", Color: tcell.ColorGreen})

	WithAlpha(ts, 0.7, func() {
		ts.DrawSprite("ghost", image.Rect(0, 0, 1, 1), 0, 0, 10, 20)
	})
	ts.DrawSprite("worm", image.Rect(0, 0, 1, 1), 20, 0, 10, 20)

	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorBlue).Dim(true), cellStyle(ss, 0, 0))
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorGreen), cellStyle(ss, 2, 0))
}

func TestTerminalStrokeLine(t *testing.T) {
	ts, ss := newTestTerminal(t)
	ts.StrokeLine(105, 0, 105, 200)
	for y := 0; y <= 10; y++ {
		assert.Equal(t, '│', cellRune(ss, 10, y), "row %d", y)
	}
	assert.Equal(t, ' ', cellRune(ss, 10, 11))
}

func TestTerminalClipsOffscreen(t *testing.T) {
	ts, ss := newTestTerminal(t)
	ts.SetGlyph("worm", Glyph{Text: "W", Color: tcell.ColorGreen})
	assert.NotPanics(t, func() {
		ts.DrawSprite("worm", image.Rect(0, 0, 1, 1), -50, -100, 100, 200)
		ts.DrawSprite("worm", image.Rect(0, 0, 1, 1), 480, 780, 100, 200)
	})
	assert.Equal(t, 'W', cellRune(ss, 0, 0))
	assert.Equal(t, 'W', cellRune(ss, 49, 39))
}

func TestTerminalDrawText(t *testing.T) {
	ts, ss := newTestTerminal(t)
	ts.DrawText("alive 3", 0, 0)
	got := make([]rune, 0, 7)
	for x := 0; x < 7; x++ {
		got = append(got, cellRune(ss, x, 0))
	}
	assert.Equal(t, "alive 3", string(got))
}
