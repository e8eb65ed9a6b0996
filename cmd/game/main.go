// cmd/game/main.go
package main

import (
	"enemy-variety/internal/app"
	"enemy-variety/internal/assets"
	"enemy-variety/internal/config"
	"enemy-variety/internal/ui"
	"enemy-variety/pkg/render"
	"enemy-variety/pkg/render/ebitenrender"
	"enemy-variety/pkg/utils"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame связывает мир с циклом ebiten: Update и Draw вызываются на каждом кадре.
type AppGame struct {
	world          *app.World
	surface        *ebitenrender.Surface
	hud            *ui.HUD
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := float64(now.Sub(a.lastUpdateTime)) / float64(time.Millisecond)
	deltaTime = utils.Clamp(deltaTime, 0, config.MaxDeltaTime)
	a.lastUpdateTime = now
	a.world.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.Begin(screen)
	a.world.Draw(a.surface)
	a.hud.Draw(a.surface)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	os.Exit(run(os.Args))
}

// run возвращает код выхода; os.Exit вызывается только в main, чтобы
// отложенная остановка профилировщика успела записать профиль.
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
	world := app.NewWorldFromOptions(opts, lib)

	sheets := ebitenrender.NewSheets(assets.NewSpriteManager(opts.SpritesPath).Load(lib))

	palette := render.Palette{
		Background: config.BackgroundColor,
		Thread:     config.ThreadColor,
		HUDText:    config.HUDTextColor,
	}
	game := &AppGame{
		world:          world,
		surface:        ebitenrender.NewSurface(sheets, palette),
		hud:            ui.NewHUD(config.HUDOffsetX, config.HUDOffsetY, world.StatsSystem),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Enemy Variety")
	if err := ebiten.RunGame(game); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}
