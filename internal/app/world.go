// internal/app/world.go
package app

import (
	"enemy-variety/internal/config"
	"enemy-variety/internal/defs"
	"enemy-variety/internal/entity"
	"enemy-variety/internal/event"
	"enemy-variety/internal/system"
	"enemy-variety/internal/utils"
	"enemy-variety/pkg/render"
)

// World holds the live enemies and drives spawning, updating and drawing.
type World struct {
	Width, Height   float64
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	SpawnSystem     *system.SpawnSystem
	StatsSystem     *system.StatsSystem

	enemies  []entity.Enemy
	gameTime float64
	ticks    uint64
}

// WorldOptions configures NewWorld. Zero values fall back to config defaults.
type WorldOptions struct {
	Seed          int64
	Library       defs.Library
	SpawnInterval float64
	Width, Height float64
}

// NewWorld initializes an empty world with its spawner.
func NewWorld(opts WorldOptions) *World {
	if opts.Library == nil {
		opts.Library = defs.DefaultEnemies()
	}
	if opts.SpawnInterval <= 0 {
		opts.SpawnInterval = config.SpawnInterval
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.ScreenWidth, config.ScreenHeight
	}

	rng := utils.NewPRNGService(opts.Seed)
	eventDispatcher := event.NewDispatcher()
	factory := entity.NewFactory(opts.Library, entity.Bounds{W: opts.Width, H: opts.Height}, rng)

	return &World{
		Width:           opts.Width,
		Height:          opts.Height,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		SpawnSystem:     system.NewSpawnSystem(factory, rng, eventDispatcher, opts.SpawnInterval),
		StatsSystem:     system.NewStatsSystem(eventDispatcher),
	}
}

// Update runs one tick. Enemies flagged during the previous tick are dropped
// first, so a flagged enemy is still updated and drawn in the tick it was
// flagged in.
func (w *World) Update(deltaTime float64) {
	w.gameTime += deltaTime
	w.ticks++

	w.removeFlagged()
	if e := w.SpawnSystem.Update(deltaTime); e != nil {
		w.add(e)
	}
	for _, e := range w.enemies {
		e.Update(deltaTime)
	}
}

// Draw draws enemies in insertion order, the newest on top.
func (w *World) Draw(s render.Surface) {
	for _, e := range w.enemies {
		e.Draw(s)
	}
}

// Enemies returns the live enemies in insertion order. The slice is owned by
// the world and is only valid until the next Update.
func (w *World) Enemies() []entity.Enemy {
	return w.enemies
}

func (w *World) GameTime() float64 {
	return w.gameTime
}

func (w *World) Ticks() uint64 {
	return w.ticks
}

func (w *World) add(e entity.Enemy) {
	w.enemies = append(w.enemies, e)
}

func (w *World) removeFlagged() {
	live := w.enemies[:0]
	for _, e := range w.enemies {
		if e.Removed() {
			w.EventDispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: string(e.Kind())})
			continue
		}
		live = append(live, e)
	}
	clear(w.enemies[len(live):])
	w.enemies = live
}
