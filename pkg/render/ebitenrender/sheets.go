// pkg/render/ebitenrender/sheets.go
package ebitenrender

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheets holds sprite sheets uploaded to the GPU, keyed by sheet ID.
type Sheets struct {
	images map[string]*ebiten.Image
}

// NewSheets uploads decoded images. It may be called before ebiten.RunGame.
func NewSheets(decoded map[string]image.Image) *Sheets {
	s := &Sheets{images: make(map[string]*ebiten.Image, len(decoded))}
	for id, img := range decoded {
		s.images[id] = ebiten.NewImageFromImage(img)
	}
	return s
}

func (s *Sheets) Sheet(id string) (*ebiten.Image, bool) {
	img, ok := s.images[id]
	return img, ok
}
