// internal/entity/spider.go
package entity

import (
	"enemy-variety/internal/component"
	"enemy-variety/internal/config"
	"enemy-variety/internal/defs"
	"enemy-variety/pkg/render"
)

// Spider спускается на нити сверху и поднимается обратно.
// Горизонтально не двигается.
type Spider struct {
	Base
	component.Bounce
}

func NewSpider(def defs.EnemyDefinition, bounds Bounds, rng Random) *Spider {
	sp := &Spider{Base: newBase(def)}
	sp.X = rng.Float64() * bounds.W
	sp.Y = -sp.H
	sp.VY = rng.Range(def.Speed.Min, def.Speed.Max)
	sp.MaxLength = rng.Float64() * bounds.H
	return sp
}

func (sp *Spider) Update(deltaTime float64) {
	sp.Base.Update(deltaTime)
	if sp.Y < -sp.H*config.SpiderExitMargin {
		sp.removed = true
	}
	sp.Y += sp.VY * deltaTime
	// разворачиваемся только на спуске, иначе при неровном deltaTime
	// паук может застрять у нижней границы
	if sp.Y > sp.MaxLength && sp.VY > 0 {
		sp.VY = -sp.VY
	}
}

func (sp *Spider) Draw(s render.Surface) {
	cx := sp.X + sp.W/2
	s.StrokeLine(cx, 0, cx, sp.Y+config.SpiderThreadOffset)
	sp.Base.Draw(s)
}
