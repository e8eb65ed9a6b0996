// internal/component/movement.go
package component

// Position - компонент позиции (левый верхний угол спрайта)
type Position struct {
	X, Y float64
}

// Velocity - скорость в единицах за миллисекунду
type Velocity struct {
	VX, VY float64
}

// Size - размер на экране
type Size struct {
	W, H float64
}
