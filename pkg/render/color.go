// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors a backend needs besides the sprites themselves.
type Palette struct {
	Background color.RGBA
	Thread     color.RGBA
	HUDText    color.RGBA
}

// ScaleAlpha returns c with its alpha multiplied by a (premultiplied RGBA,
// so the color channels scale too).
func ScaleAlpha(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
