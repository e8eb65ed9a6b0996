// internal/entity/enemy.go
package entity

import (
	"enemy-variety/internal/component"
	"enemy-variety/internal/config"
	"enemy-variety/internal/defs"
	"enemy-variety/pkg/render"
)

// Kind - вид врага, совпадает с ID определения
type Kind string

// Enemy - общий контракт всех врагов
type Enemy interface {
	Update(deltaTime float64)
	Draw(s render.Surface)
	Removed() bool
	Kind() Kind
}

// Random - источник случайности для появления врагов
type Random interface {
	Float64() float64
	Range(min, max float64) float64
}

// Bounds - размеры видимой области
type Bounds struct {
	W, H float64
}

// Base реализует горизонтальное движение и анимацию, общие для всех видов.
type Base struct {
	component.Position
	component.Velocity
	component.Size
	Anim    component.Animation
	Sprite  component.Sprite
	kind    Kind
	removed bool
}

func newBase(def defs.EnemyDefinition) Base {
	w, h := def.DisplaySize()
	return Base{
		Size: component.Size{W: w, H: h},
		Anim: component.Animation{
			MaxFrame: def.Sheet.Frames - 1,
			Interval: config.FrameInterval,
		},
		Sprite: component.Sprite{SheetID: def.ID, Sheet: def.Sheet},
		kind:   Kind(def.ID),
	}
}

// Update сдвигает врага влево и крутит анимацию.
func (b *Base) Update(deltaTime float64) {
	b.X -= b.VX * deltaTime
	if b.X < -b.W {
		b.removed = true
	}
	b.animate(deltaTime)
}

// animate сначала проверяет таймер и только потом копит время:
// тик, на котором кадр сменился, в таймер не засчитывается.
func (b *Base) animate(deltaTime float64) {
	if b.Anim.Timer > b.Anim.Interval {
		if b.Anim.Frame < b.Anim.MaxFrame {
			b.Anim.Frame++
		} else {
			b.Anim.Frame = 0
		}
		b.Anim.Timer = 0
	} else {
		b.Anim.Timer += deltaTime
	}
}

// Draw рисует текущий кадр листа спрайтов.
func (b *Base) Draw(s render.Surface) {
	s.DrawSprite(b.Sprite.SheetID, b.Sprite.Sheet.FrameRect(b.Anim.Frame), b.X, b.Y, b.W, b.H)
}

func (b *Base) Removed() bool {
	return b.removed
}

func (b *Base) Kind() Kind {
	return b.kind
}
