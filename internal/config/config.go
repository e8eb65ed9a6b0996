// internal/config/config.go
package config

import "image/color"

// Время везде в миллисекундах, как в колбэке кадра.
const (
	ScreenWidth  = 500
	ScreenHeight = 800

	SpawnInterval = 500.0 // мс между появлениями врагов
	FrameInterval = 100.0 // мс на кадр анимации
	MaxDeltaTime  = 250.0 // ограничение deltaTime после долгих пауз окна

	GhostAngleStep   = 0.04
	GhostMaxCurve    = 3.0
	GhostAlpha       = 0.7
	GhostSpawnHeight = 0.8 // доля высоты экрана, где появляется призрак

	SpiderThreadOffset = 10.0
	SpiderExitMargin   = 2.0 // паук удаляется выше -height*SpiderExitMargin

	HUDOffsetX = 8
	HUDOffsetY = 16

	TerminalTickRate = 33 // мс между кадрами в терминальном режиме

	DefaultDefsPath    = "assets/enemies.json"
	DefaultSpritesPath = "assets/sprites"
)

var (
	BackgroundColor = color.RGBA{250, 250, 245, 255}
	ThreadColor     = color.RGBA{0, 0, 0, 255}
	HUDTextColor    = color.RGBA{20, 20, 30, 255}
)
