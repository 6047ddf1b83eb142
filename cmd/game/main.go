// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"go-fps-factory/internal/app"
	"go-fps-factory/internal/assets"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/screen"
	"go-fps-factory/internal/ui"
	"go-fps-factory/pkg/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	dataDir := flag.String("data", "", "Directory with JSON definition overrides")
	rulesPath := flag.String("rules", "", "JSON rules file")
	savePath := flag.String("save", config.DefaultSaveFileName, "Save file for unlocks and career stats; empty keeps them in memory")
	assetDir := flag.String("assets", "assets", "Directory with models/, textures/ and fonts/")
	seed := flag.Int64("seed", 0, "PRNG seed; 0 picks one from the clock")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFile := flag.String("log-file", "", "Also write the log to this file")
	flag.Parse()

	level, err := logger.ParseLevel(*logLevel)
	log := logger.New(level, "MAIN")
	if err != nil {
		log.Warn("%v", err)
	}
	if *logFile != "" {
		if err := log.SetFile(*logFile); err != nil {
			log.Error("%v", err)
		}
		defer log.Close()
	}

	opts, err := app.LoadOptions(*dataDir, *rulesPath, *savePath, *seed, log)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	game := app.NewGame(opts)
	defer game.Career.Flush()

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "FPS Factory")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)

	font := rl.LoadFontEx(*assetDir+"/fonts/arial.ttf", 64, nil, 0)
	defer rl.UnloadFont(font)

	models := assets.NewModelManager(*assetDir, log.WithPrefix("ASSETS"))
	models.LoadRobotModels(game.Lib)
	defer models.Cleanup()

	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, config.PlayerEyeHeight, 0),
		Target:     rl.NewVector3(0, config.PlayerEyeHeight, -1),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       70,
		Projection: rl.CameraPerspective,
	}

	quit := false
	ctx := &screen.Context{
		Game:   game,
		Font:   font,
		Camera: &camera,
		Models: models,
		Quit:   func() { quit = true },
	}
	sm := screen.NewStateMachine()
	director := screen.NewDirector(sm, ctx)
	director.Sync()

	lastUpdateTime := time.Now()
	for !quit && !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		sm.Update(deltaTime)
		director.Sync()

		rl.BeginDrawing()
		rl.ClearBackground(ui.ColorToRL(config.BackgroundColor))
		rl.BeginMode3D(camera)
		sm.Draw()
		rl.EndMode3D()
		sm.DrawUI()
		rl.DrawFPS(10, config.ScreenHeight-30)
		rl.EndDrawing()
	}
	log.Info("exiting in phase %s", game.Phase())
}
