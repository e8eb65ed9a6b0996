// pkg/render/terminal.go
package render

import (
	"enemy-variety/pkg/utils"
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Glyph is how a sprite sheet is shown in a terminal cell.
type Glyph struct {
	Text  string
	Color tcell.Color
}

// TerminalSurface maps world coordinates onto the cells of a tcell screen.
// Sprites become filled blocks of their glyph; alpha below 1 is shown dimmed.
type TerminalSurface struct {
	StateStack
	screen         tcell.Screen
	worldW, worldH float64
	glyphs         map[string]Glyph
	threadStyle    tcell.Style
	textStyle      tcell.Style
}

func NewTerminalSurface(screen tcell.Screen, worldW, worldH float64) *TerminalSurface {
	return &TerminalSurface{
		StateStack:  NewStateStack(),
		screen:      screen,
		worldW:      worldW,
		worldH:      worldH,
		glyphs:      make(map[string]Glyph),
		threadStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		textStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// SetGlyph registers the glyph used for a sheet.
func (s *TerminalSurface) SetGlyph(sheetID string, g Glyph) {
	s.glyphs[sheetID] = g
}

// Begin clears the screen and resets the draw state for a new frame.
func (s *TerminalSurface) Begin() {
	s.Reset()
	s.screen.Clear()
}

// Show flushes the frame to the terminal.
func (s *TerminalSurface) Show() {
	s.screen.Show()
}

// ToCell converts a world coordinate to a cell coordinate.
func (s *TerminalSurface) ToCell(x, y float64) (int, int) {
	cols, rows := s.screen.Size()
	cx := int(math.Floor(x / s.worldW * float64(cols)))
	cy := int(math.Floor(y / s.worldH * float64(rows)))
	return cx, cy
}

func (s *TerminalSurface) style(fg tcell.Color) tcell.Style {
	st := tcell.StyleDefault.Foreground(fg)
	if s.Alpha() < 1 {
		st = st.Dim(true)
	}
	return st
}

func (s *TerminalSurface) DrawSprite(sheetID string, _ image.Rectangle, x, y, w, h float64) {
	g, ok := s.glyphs[sheetID]
	if !ok {
		g = Glyph{Text: "#", Color: tcell.ColorWhite}
	}
	cx0, cy0 := s.ToCell(x, y)
	cx1, cy1 := s.ToCell(x+w, y+h)
	if cx1 <= cx0 {
		cx1 = cx0 + 1
	}
	if cy1 <= cy0 {
		cy1 = cy0 + 1
	}
	gw := runewidth.StringWidth(g.Text)
	if gw < 1 {
		gw = 1
	}
	st := s.style(g.Color)
	for cy := cy0; cy < cy1; cy++ {
		for cx := cx0; cx+gw <= cx1 || cx == cx0; cx += gw {
			s.putGlyph(cx, cy, g.Text, gw, st)
		}
	}
}

func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1 float64) {
	cx0, cy0 := s.ToCell(x0, y0)
	cx1, cy1 := s.ToCell(x1, y1)
	steps := max(utils.Abs(cx1-cx0), utils.Abs(cy1-cy0))
	ch := '│'
	if utils.Abs(cx1-cx0) > utils.Abs(cy1-cy0) {
		ch = '─'
	}
	st := s.threadStyle
	if s.Alpha() < 1 {
		st = st.Dim(true)
	}
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx := cx0 + int(math.Round(t*float64(cx1-cx0)))
		cy := cy0 + int(math.Round(t*float64(cy1-cy0)))
		s.put(cx, cy, ch, nil, st)
	}
}

// DrawText writes a line of text starting at cell (col, row).
func (s *TerminalSurface) DrawText(text string, col, row int) {
	st := s.textStyle
	for _, r := range text {
		s.put(col, row, r, nil, st)
		col += runewidth.RuneWidth(r)
	}
}

// putGlyph draws a possibly multi-rune glyph; wide glyphs blank their second column.
func (s *TerminalSurface) putGlyph(x, y int, glyph string, width int, st tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	s.put(x, y, runes[0], combc, st)
	if width == 2 {
		s.put(x+1, y, ' ', nil, st)
	}
}

func (s *TerminalSurface) put(x, y int, r rune, combc []rune, st tcell.Style) {
	cols, rows := s.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	s.screen.SetContent(x, y, r, combc, st)
}
