// internal/entity/worm.go
package entity

import "enemy-variety/internal/defs"

// Worm ползёт по нижнему краю экрана.
type Worm struct {
	Base
}

func NewWorm(def defs.EnemyDefinition, bounds Bounds, rng Random) *Worm {
	w := &Worm{Base: newBase(def)}
	w.X = bounds.W
	w.Y = bounds.H - w.H
	w.VX = rng.Range(def.Speed.Min, def.Speed.Max)
	return w
}
