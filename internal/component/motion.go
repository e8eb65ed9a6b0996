// internal/component/motion.go
package component

// Drift - синусоидальное вертикальное покачивание
type Drift struct {
	Angle float64
	Step  float64 // прирост угла за тик
	Curve float64 // амплитуда
}

// Bounce - вертикальное движение с разворотом на MaxLength
type Bounce struct {
	MaxLength float64
}
