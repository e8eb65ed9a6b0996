// internal/system/spawn.go
package system

import (
	"enemy-variety/internal/entity"
	"enemy-variety/internal/event"
	"log"
)

// KindPicker выбирает индекс в [0, n)
type KindPicker interface {
	Intn(n int) int
}

// SpawnSystem копит время и раз в интервал создаёт одного случайного врага.
type SpawnSystem struct {
	factory         *entity.Factory
	picker          KindPicker
	eventDispatcher *event.Dispatcher
	Timer           float64
	Interval        float64
}

func NewSpawnSystem(factory *entity.Factory, picker KindPicker, eventDispatcher *event.Dispatcher, interval float64) *SpawnSystem {
	return &SpawnSystem{
		factory:         factory,
		picker:          picker,
		eventDispatcher: eventDispatcher,
		Interval:        interval,
	}
}

// Update возвращает нового врага, если таймер превысил интервал, иначе nil.
func (s *SpawnSystem) Update(deltaTime float64) entity.Enemy {
	s.Timer += deltaTime
	if s.Timer <= s.Interval {
		return nil
	}
	s.Timer = 0
	return s.spawnEnemy()
}

func (s *SpawnSystem) spawnEnemy() entity.Enemy {
	kinds := s.factory.Kinds()
	if len(kinds) == 0 {
		return nil
	}
	kind := kinds[s.picker.Intn(len(kinds))]
	e, err := s.factory.New(kind)
	if err != nil {
		log.Printf("Error: failed to spawn %s: %v", kind, err)
		return nil
	}
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: string(kind)})
	}
	return e
}
