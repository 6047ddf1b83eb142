// internal/config/config.go
package config

import (
	"image/color"

	"go-fps-factory/pkg/utils"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	LevelTransitionDelay = 3.0 // seconds
	BossIntroDelay       = 3.0
	BossDeathDelay       = 2.0
	WaveCountdown        = 5 // whole seconds, one WaveCountdown event per second

	PlayerMaxHP         = 100
	PlayerSpeed         = 10.0
	PlayerEyeHeight     = 1.6
	ContactCooldown     = 1.0 // seconds between hits from the same robot
	FireCooldown        = 0.15
	MaxShotRange        = 200.0
	ArenaHalfSize       = 60.0
	EnemyStopDistance   = 1.5
	SpawnRingRadius     = 20.0
	SpawnRingJitter     = 5.0
	OrbAttractRadius    = 5.0
	OrbCollectRadius    = 3.0
	OrbAttractSpeed     = 8.0
	LootScatter         = 1.0
	OrbLifetime         = 60.0
	KillsPerCareerSave  = 10
	IndicatorOffsetX    = 30
	IndicatorRadius     = 10.0
	TextCharWidth       = 7
	HUDFontSize         = 20
	MapPixelsPerUnit    = 5.0
	ClickDebounceTime   = 100 // ms
	DefaultSaveFileName = "fps_factory_save.json"
)

// BossSpawnPosition is where the run boss appears after the intro.
var BossSpawnPosition = utils.V3(0, 1, -50)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	FloorColor       = color.RGBA{45, 50, 60, 255}
	GridColor        = color.RGBA{70, 80, 95, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PlayerColor      = color.RGBA{50, 205, 50, 255}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	PlayStateColor   = color.RGBA{220, 60, 60, 220}
	RestStateColor   = color.RGBA{70, 130, 180, 220}
	PausedStateColor = color.RGBA{194, 178, 128, 255}
	ShieldColor      = color.RGBA{80, 170, 255, 200}
	BossColor        = color.RGBA{180, 50, 230, 255}
	EnemyColors      = map[string]color.RGBA{
		"standard": {200, 200, 200, 255},
		"shielded": {50, 100, 255, 255},
		"heavy":    {255, 120, 40, 255},
	}
	ResourceColors = map[string]color.RGBA{
		"metal":        {170, 170, 180, 255},
		"energy":       {80, 220, 255, 255},
		"thermal_core": {255, 90, 30, 255},
	}
)
