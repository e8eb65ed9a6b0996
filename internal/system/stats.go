// internal/system/stats.go
package system

import (
	"enemy-variety/internal/defs"
	"enemy-variety/internal/event"
	"fmt"
	"strings"
)

// StatsSystem считает появившихся и убранных врагов по видам.
type StatsSystem struct {
	Spawned map[string]int
	Removed map[string]int
}

func NewStatsSystem(eventDispatcher *event.Dispatcher) *StatsSystem {
	ss := &StatsSystem{
		Spawned: make(map[string]int),
		Removed: make(map[string]int),
	}
	eventDispatcher.Subscribe(event.EnemySpawned, ss)
	eventDispatcher.Subscribe(event.EnemyRemoved, ss)
	return ss
}

func (s *StatsSystem) OnEvent(e event.Event) {
	kind, ok := e.Data.(string)
	if !ok {
		return
	}
	switch e.Type {
	case event.EnemySpawned:
		s.Spawned[kind]++
	case event.EnemyRemoved:
		s.Removed[kind]++
	}
}

// Alive - сколько врагов вида сейчас в мире
func (s *StatsSystem) Alive(kind string) int {
	return s.Spawned[kind] - s.Removed[kind]
}

func (s *StatsSystem) TotalAlive() int {
	total := 0
	for kind := range s.Spawned {
		total += s.Alive(kind)
	}
	return total
}

func (s *StatsSystem) TotalSpawned() int {
	total := 0
	for _, n := range s.Spawned {
		total += n
	}
	return total
}

// Summary формирует строку для HUD.
func (s *StatsSystem) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "alive %d", s.TotalAlive())
	for _, kind := range defs.KnownEnemies {
		fmt.Fprintf(&b, "  %s %d", kind, s.Alive(kind))
	}
	fmt.Fprintf(&b, "  spawned %d", s.TotalSpawned())
	return b.String()
}
