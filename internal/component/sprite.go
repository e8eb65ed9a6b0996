// internal/component/sprite.go
package component

import "enemy-variety/internal/defs"

// Animation хранит состояние покадровой анимации
type Animation struct {
	Frame    int
	MaxFrame int
	Timer    float64
	Interval float64
}

// Sprite связывает сущность с листом спрайтов
type Sprite struct {
	SheetID string
	Sheet   defs.Sheet
}
