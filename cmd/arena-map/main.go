// cmd/arena-map/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"go-fps-factory/internal/app"
	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/state"
	"go-fps-factory/internal/system"
	"go-fps-factory/internal/types"
	"go-fps-factory/internal/utils"
	"go-fps-factory/pkg/logger"
	"go-fps-factory/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const aimSmoothing = 0.35

// MapGame is a top-down tactical view of the arena, driven by mouse and keys.
type MapGame struct {
	game       *app.Game
	renderer   *render.ArenaRenderer
	panel      *render.ActorPanel
	book       *render.ConversionBook
	progress   *render.ProgressIndicator
	selected   types.EntityID
	banner     string
	bannerTime float64

	lastUpdateTime time.Time
	lastClickTime  time.Time
}

func NewMapGame(game *app.Game, fontPath string) *MapGame {
	face := render.LoadFontFace(fontPath, 14)
	m := &MapGame{
		game:           game,
		renderer:       render.NewArenaRenderer(config.MapPixelsPerUnit, config.ScreenWidth, config.ScreenHeight, face, render.DefaultArenaColors()),
		panel:          render.NewActorPanel(face, config.ScreenWidth, config.ScreenHeight),
		book:           render.NewConversionBook(config.ScreenWidth-340, 80, 320, 220, face, game.Lib),
		progress:       render.NewProgressIndicator(20, 60),
		lastUpdateTime: time.Now(),
	}
	for _, t := range []event.EventType{event.LevelStarted, event.LevelCompleted, event.WaveCountdown, event.BossSpawned, event.UnlockAcquired, event.AmmoEmpty} {
		game.EventDispatcher.Subscribe(t, m)
	}
	return m
}

func (m *MapGame) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.LevelStartedData:
		m.show(fmt.Sprintf("Level %d: %s", data.Level, data.Title))
	case event.LevelCompletedData:
		m.show(fmt.Sprintf("Level %d complete", data.Level))
	case event.WaveCountdownData:
		m.show(fmt.Sprintf("Wave %d in %d", data.NextWave, data.Remaining))
	case event.ActorSpawnedData:
		m.show("Boss incoming")
	case event.UnlockData:
		m.show("Unlocked: " + data.Name)
	}
	if e.Type == event.AmmoEmpty {
		m.show("Out of ammo")
	}
}

func (m *MapGame) show(s string) {
	m.banner = s
	m.bannerTime = 2.5
}

func (m *MapGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(m.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	m.lastUpdateTime = now

	if err := m.handleInput(deltaTime); err != nil {
		m.show(err.Error())
	}
	m.game.Update(deltaTime)
	m.panel.Update(deltaTime, m.game.ECS)
	if m.bannerTime > 0 {
		m.bannerTime -= deltaTime
	}
	return nil
}

func (m *MapGame) handleInput(deltaTime float64) error {
	g := m.game
	phase := g.Phase()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		m.book.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		if phase == state.MainMenu {
			return g.EnterHub()
		}
		return g.StartRun()
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		return g.StartWaveMode()
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		return g.ResetProgress()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		switch {
		case phase == state.LevelTransition:
			return g.AdvanceLevel()
		case phase.IsFinal():
			return g.ReturnToHub()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if phase == state.Paused {
			return g.Resume()
		}
		return g.Pause()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return g.QuitToHub()
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if i < len(defs.AllWeapons) && inpututil.IsKeyJustPressed(key) {
			return g.SwitchWeapon(defs.AllWeapons[i])
		}
	}
	for i, key := range []ebiten.Key{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC} {
		if i < len(defs.AllResources) && inpututil.IsKeyJustPressed(key) {
			_, err := g.ConvertAll(defs.AllResources[i])
			return err
		}
	}

	if !phase.IsCombat() {
		return nil
	}

	var forward, strafe float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}

	// Aim at the cursor. Movement stays view-relative, so W walks toward it.
	x, y := ebiten.CursorPosition()
	target := m.renderer.ScreenToWorld(x, y)
	p := g.ECS.Player
	if d := target.Sub(p.Position).Flat(); d.Len() > 0.1 {
		yaw := utils.LerpAngle(float32(p.Yaw), float32(math.Atan2(-d.X, -d.Z)), aimSmoothing)
		g.Look(float64(yaw), 0)
	}
	g.MovePlayer(forward, strafe, deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && time.Since(m.lastClickTime) >= config.ClickDebounceTime*time.Millisecond {
		m.lastClickTime = time.Now()
		if id, ok := m.renderer.PickActor(g.ECS, x, y); ok {
			m.selected = id
			m.panel.Show(id)
		} else {
			m.selected = 0
			m.panel.Hide()
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if _, err := g.Fire(); err != nil && !errors.Is(err, system.ErrNoAmmo) {
			return err
		}
	}
	return nil
}

func (m *MapGame) Draw(screen *ebiten.Image) {
	g := m.game
	m.renderer.Draw(screen, g.ECS, m.selected)
	m.panel.Draw(screen, g.ECS)
	m.book.Draw(screen, g.Ledger)

	p := g.ECS.Player
	status := render.Status(g.Phase().String(), p.HP, p.MaxHP, string(p.Weapon), g.Ledger.Ammo(p.Weapon), g.Ledger.MaxAmmo(p.Weapon))
	m.renderer.DrawLabel(screen, status, 20, 30, config.TextLightColor)
	m.drawProgress(screen)

	switch phase := g.Phase(); {
	case phase == state.MainMenu:
		m.renderer.DrawBanner(screen, "F1 enter hub")
	case phase == state.Hub:
		m.renderer.DrawBanner(screen, "F1 run   F2 waves   F5 reset progress")
	case phase == state.LevelTransition:
		m.renderer.DrawBanner(screen, "Enter to continue")
	case phase.IsFinal():
		m.renderer.DrawBanner(screen, phase.String()+"   Enter to return")
	case phase == state.Paused:
		m.renderer.DrawBanner(screen, "PAUSED   P resume   Q quit to hub")
	case m.bannerTime > 0:
		m.renderer.DrawBanner(screen, m.banner)
	}
}

func (m *MapGame) drawProgress(screen *ebiten.Image) {
	g := m.game
	run := g.ECS.Run
	if run == nil {
		return
	}
	if run.Mode == component.ModeWaves {
		wave := g.WaveSystem.Wave()
		def, ok := g.Lib.Wave(wave)
		if !ok {
			return
		}
		total := def.EnemyCount()
		m.progress.Draw(screen, wave-1, len(g.Lib.Waves), total-g.WaveSystem.ActiveEnemies(), total, false)
		return
	}
	total := 0
	if def, ok := g.Lib.Level(run.Level); ok {
		total = def.EnemyCount()
	}
	m.progress.Draw(screen, run.Stats.LevelsCompleted, defs.RunLevels, total-g.RunSystem.Alive(), total, true)
}

func (m *MapGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	dataDir := flag.String("data", "", "Directory with JSON definition overrides")
	rulesPath := flag.String("rules", "", "JSON rules file")
	savePath := flag.String("save", config.DefaultSaveFileName, "Save file; empty keeps progress in memory")
	fontPath := flag.String("font", "", "TrueType font for labels")
	seed := flag.Int64("seed", 0, "PRNG seed; 0 picks one from the clock")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	level, err := logger.ParseLevel(*logLevel)
	log := logger.New(level, "MAP")
	if err != nil {
		log.Warn("%v", err)
	}

	opts, err := app.LoadOptions(*dataDir, *rulesPath, *savePath, *seed, log)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	game := app.NewGame(opts)
	defer game.Career.Flush()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("FPS Factory - Arena Map")
	if err := ebiten.RunGame(NewMapGame(game, *fontPath)); err != nil {
		log.Error("%v", err)
	}
}
