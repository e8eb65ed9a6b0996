// internal/ui/hud.go
package ui

import "enemy-variety/internal/system"

// TextTarget - поверхность, умеющая вывести строку текста
type TextTarget interface {
	DrawText(s string, x, y int)
}

// HUD выводит строку со счётчиками врагов поверх игрового поля.
type HUD struct {
	X, Y  int
	stats *system.StatsSystem
}

func NewHUD(x, y int, stats *system.StatsSystem) *HUD {
	return &HUD{X: x, Y: y, stats: stats}
}

func (h *HUD) Line() string {
	return h.stats.Summary()
}

func (h *HUD) Draw(t TextTarget) {
	t.DrawText(h.Line(), h.X, h.Y)
}
