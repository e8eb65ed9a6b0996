// internal/entity/ghost.go
package entity

import (
	"enemy-variety/internal/component"
	"enemy-variety/internal/config"
	"enemy-variety/internal/defs"
	"enemy-variety/pkg/render"
	"math"
)

// Ghost летит влево, покачиваясь по синусоиде, и рисуется полупрозрачным.
type Ghost struct {
	Base
	component.Drift
	Alpha float64
}

func NewGhost(def defs.EnemyDefinition, bounds Bounds, rng Random) *Ghost {
	g := &Ghost{
		Base: newBase(def),
		Drift: component.Drift{
			Step:  config.GhostAngleStep,
			Curve: rng.Range(0, config.GhostMaxCurve),
		},
		Alpha: config.GhostAlpha,
	}
	g.X = bounds.W
	g.Y = rng.Float64() * bounds.H * config.GhostSpawnHeight
	g.VX = rng.Range(def.Speed.Min, def.Speed.Max)
	return g
}

func (g *Ghost) Update(deltaTime float64) {
	g.Base.Update(deltaTime)
	g.Y += math.Sin(g.Angle) * g.Curve
	g.Angle += g.Step
}

// Draw меняет прозрачность только внутри save/restore, чтобы она не
// утекла в отрисовку следующих врагов.
func (g *Ghost) Draw(s render.Surface) {
	render.WithAlpha(s, g.Alpha, func() {
		g.Base.Draw(s)
	})
}
