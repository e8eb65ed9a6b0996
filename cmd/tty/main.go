// cmd/tty/main.go
package main

import (
	"enemy-variety/internal/app"
	"enemy-variety/internal/config"
	"enemy-variety/internal/defs"
	"enemy-variety/internal/ui"
	"enemy-variety/pkg/render"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(run(os.Args))
}

// run возвращает код выхода; os.Exit вызывается только в main, чтобы
// отложенные Stop профилировщика и Fini экрана успели отработать.
func run(args []string) int {
	opts, err := app.ParseFlags(args[0], args[1:], os.Stderr)
	if err != nil {
		return app.ExitCode(err)
	}
	defer app.StartProfile(opts.Profile, ".").Stop()

	lib, err := app.LoadLibrary(opts.DefsPath)
	if err != nil {
		log.Println(err)
		return 1
	}
	if err := loop(opts, lib); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

func loop(opts app.Options, lib defs.Library) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	world := app.NewWorldFromOptions(opts, lib)
	surface := render.NewTerminalSurface(screen, config.ScreenWidth, config.ScreenHeight)
	for id, def := range lib {
		rgba := def.Visuals.RGBA()
		surface.SetGlyph(id, render.Glyph{
			Text:  def.Visuals.Glyph,
			Color: tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)),
		})
	}
	hud := ui.NewHUD(0, 0, world.StatsSystem)

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				// терминал в raw-режиме, Ctrl-C сам процесс не завершит
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(config.TerminalTickRate * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-quit:
			return nil
		case now := <-ticker.C:
			world.Update(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now

			surface.Begin()
			world.Draw(surface)
			hud.Draw(surface)
			surface.Show()
		}
	}
}
