// internal/assets/placeholder.go
package assets

import (
	"enemy-variety/internal/defs"
	"enemy-variety/pkg/render"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Placeholder рисует лист-заглушку нужного размера: каждый кадр залит цветом
// врага, а светлый блок смещается от кадра к кадру, чтобы анимация была видна.
func Placeholder(def defs.EnemyDefinition) *image.RGBA {
	s := def.Sheet
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	base := def.Visuals.RGBA()
	marker := color.RGBA{255, 255, 255, 255}
	fw := s.FrameWidth()

	for i := 0; i < s.Frames; i++ {
		frame := s.FrameRect(i)
		fill := base
		if i%2 == 1 {
			fill = render.DarkenColor(base)
		}
		inset := image.Rect(frame.Min.X+fw/8, frame.Min.Y+s.Height/8, frame.Max.X-fw/8, frame.Max.Y-s.Height/8)
		draw.Draw(img, inset, &image.Uniform{fill}, image.Point{}, draw.Src)

		mw := max(fw/(2*s.Frames), 1)
		mx := inset.Min.X + i*mw
		draw.Draw(img, image.Rect(mx, inset.Min.Y, mx+mw, inset.Min.Y+mw), &image.Uniform{marker}, image.Point{}, draw.Src)
	}
	return img
}

// NormalizeSheet масштабирует лист к размерам из определения.
func NormalizeSheet(src image.Image, sheet defs.Sheet) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, sheet.Width, sheet.Height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
