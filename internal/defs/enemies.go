// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image"
	"image/color"
)

// Идентификаторы видов врагов.
const (
	EnemyWorm   = "worm"
	EnemyGhost  = "ghost"
	EnemySpider = "spider"
)

// KnownEnemies lists every enemy ID the spawner can pick, in a fixed order.
var KnownEnemies = []string{EnemyWorm, EnemyGhost, EnemySpider}

// Sheet describes a horizontal sprite strip.
type Sheet struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Frames int    `json:"frames"`
}

// FrameWidth is the pixel width of one animation frame.
func (s Sheet) FrameWidth() int {
	return s.Width / s.Frames
}

// FrameRect returns the source rectangle of frame i.
func (s Sheet) FrameRect(i int) image.Rectangle {
	fw := s.FrameWidth()
	return image.Rect(i*fw, 0, (i+1)*fw, s.Height)
}

// SpeedRange is a half-open range [Min, Max) in units per millisecond.
type SpeedRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Visuals holds the presentation-only parameters.
type Visuals struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"` // #RRGGBB
}

// RGBA parses Color, falling back to gray.
func (v Visuals) RGBA() color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(v.Color, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{128, 128, 128, 255}
	}
	return color.RGBA{r, g, b, 255}
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Sheet   Sheet      `json:"sheet"`
	Scale   float64    `json:"scale"`
	Speed   SpeedRange `json:"speed"`
	Visuals Visuals    `json:"visuals"`
}

// DisplaySize is the on-screen size of one frame.
func (d EnemyDefinition) DisplaySize() (float64, float64) {
	return float64(d.Sheet.FrameWidth()) * d.Scale, float64(d.Sheet.Height) * d.Scale
}

// Library maps enemy IDs to their definitions.
type Library map[string]EnemyDefinition

// DefaultEnemies returns the built-in definitions for worm, ghost and spider.
func DefaultEnemies() Library {
	return Library{
		EnemyWorm: {
			ID:      EnemyWorm,
			Name:    "Worm",
			Sheet:   Sheet{Path: "worm.png", Width: 1374, Height: 171, Frames: 6},
			Scale:   0.5,
			Speed:   SpeedRange{Min: 0.1, Max: 0.2},
			Visuals: Visuals{Glyph: "🐛", Color: "#6b8e23"},
		},
		EnemyGhost: {
			ID:      EnemyGhost,
			Name:    "Ghost",
			Sheet:   Sheet{Path: "ghost.png", Width: 1566, Height: 209, Frames: 6},
			Scale:   0.5,
			Speed:   SpeedRange{Min: 0.1, Max: 0.3},
			Visuals: Visuals{Glyph: "👻", Color: "#b0c4de"},
		},
		EnemySpider: {
			ID:      EnemySpider,
			Name:    "Spider",
			Sheet:   Sheet{Path: "spider.png", Width: 1860, Height: 175, Frames: 6},
			Scale:   1.0 / 3,
			Speed:   SpeedRange{Min: 0.1, Max: 0.2},
			Visuals: Visuals{Glyph: "🕷", Color: "#4b0082"},
		},
	}
}
