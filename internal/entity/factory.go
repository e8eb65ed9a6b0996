// internal/entity/factory.go
package entity

import (
	"enemy-variety/internal/defs"
	"errors"
	"fmt"
)

var ErrUnknownKind = errors.New("unknown enemy kind")

// Factory создаёт врагов по библиотеке определений.
type Factory struct {
	lib    defs.Library
	bounds Bounds
	rng    Random
	kinds  []Kind
}

func NewFactory(lib defs.Library, bounds Bounds, rng Random) *Factory {
	f := &Factory{lib: lib, bounds: bounds, rng: rng}
	for _, id := range defs.KnownEnemies {
		if _, ok := lib[id]; ok {
			f.kinds = append(f.kinds, Kind(id))
		}
	}
	return f
}

// Kinds возвращает виды, доступные для появления, в фиксированном порядке.
func (f *Factory) Kinds() []Kind {
	return f.kinds
}

// New создаёт врага указанного вида в его стартовой позиции.
func (f *Factory) New(kind Kind) (Enemy, error) {
	def, ok := f.lib[string(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	switch kind {
	case defs.EnemyWorm:
		return NewWorm(def, f.bounds, f.rng), nil
	case defs.EnemyGhost:
		return NewGhost(def, f.bounds, f.rng), nil
	case defs.EnemySpider:
		return NewSpider(def, f.bounds, f.rng), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
