// pkg/render/ebitenrender/surface.go

// Package ebitenrender draws onto ebiten screen images.
package ebitenrender

import (
	"enemy-variety/pkg/render"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ render.Surface = (*Surface)(nil)

// SheetSource resolves a sheet ID to a loaded sprite sheet.
type SheetSource interface {
	Sheet(id string) (*ebiten.Image, bool)
}

// Surface draws onto the ebiten screen image of the current frame.
type Surface struct {
	render.StateStack
	screen      *ebiten.Image
	sheets      SheetSource
	palette     render.Palette
	face        font.Face
	ThreadWidth float32
}

func NewSurface(sheets SheetSource, palette render.Palette) *Surface {
	return &Surface{
		StateStack:  render.NewStateStack(),
		sheets:      sheets,
		palette:     palette,
		face:        basicfont.Face7x13,
		ThreadWidth: 1,
	}
}

// Begin binds the surface to the frame's screen, clears it and drops any
// state left over from the previous frame.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
	s.Reset()
	screen.Fill(s.palette.Background)
}

func (s *Surface) DrawSprite(sheetID string, src image.Rectangle, x, y, w, h float64) {
	if s.screen == nil || src.Empty() {
		return
	}
	sheet, ok := s.sheets.Sheet(sheetID)
	if !ok {
		return
	}
	frame := sheet.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(src.Dx()), h/float64(src.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(s.Alpha()))
	op.Filter = ebiten.FilterLinear
	s.screen.DrawImage(frame, op)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64) {
	if s.screen == nil {
		return
	}
	clr := render.ScaleAlpha(s.palette.Thread, s.Alpha())
	vector.StrokeLine(s.screen, float32(x0), float32(y0), float32(x1), float32(y1), s.ThreadWidth, clr, true)
}

// DrawText draws a line of HUD text with its baseline at (x, y).
func (s *Surface) DrawText(str string, x, y int) {
	if s.screen == nil {
		return
	}
	text.Draw(s.screen, str, s.face, x, y, s.palette.HUDText)
}
