// internal/screen/game_state.go
package screen

import (
	"errors"
	"fmt"

	"go-fps-factory/internal/app"
	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/state"
	"go-fps-factory/internal/system"
	"go-fps-factory/internal/ui"
	iutils "go-fps-factory/internal/utils"
	"go-fps-factory/pkg/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	mouseSensitivity = 0.003
	bannerDuration   = 2.5
	hurtFlashTime    = 0.3
)

var bannerEvents = []event.EventType{
	event.LevelStarted, event.LevelCompleted, event.WaveStarted, event.WaveCountdown,
	event.BossSpawned, event.BossPhaseChanged, event.BossDefeated, event.ShieldBroken,
	event.UnlockAcquired, event.AmmoEmpty, event.PlayerDamaged,
}

// ArenaScreen is the first-person view of every combat and transition phase.
type ArenaScreen struct {
	ctx *Context

	phaseIndicator *ui.PhaseIndicator
	health         *ui.PlayerHealthIndicator
	stage          *ui.StageIndicator
	pauseButton    *ui.PauseButton
	autoConvert    *ui.AutoConvertIndicator
	ammoBars       *ui.AmmoBars

	banner      string
	bannerTimer float64
	hurtTimer   float64
}

func NewArenaScreen(ctx *Context) *ArenaScreen {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	return &ArenaScreen{
		ctx:            ctx,
		phaseIndicator: ui.NewPhaseIndicator(w-config.IndicatorOffsetX, config.IndicatorOffsetX, config.IndicatorRadius),
		health:         ui.NewPlayerHealthIndicator(20, h-60),
		stage:          ui.NewStageIndicator(w/2, 20, 48),
		pauseButton:    ui.NewPauseButton(w-config.IndicatorOffsetX*3, config.IndicatorOffsetX, config.IndicatorRadius, config.PausedStateColor, config.PlayStateColor),
		autoConvert:    ui.NewAutoConvertIndicator(w-config.IndicatorOffsetX*5, config.IndicatorOffsetX, 24, ctx.Font),
		ammoBars:       ui.NewAmmoBars(w-200, h-140, 180, 100),
	}
}

func (s *ArenaScreen) Enter() {
	rl.DisableCursor()
	for _, t := range bannerEvents {
		s.ctx.Game.EventDispatcher.Subscribe(t, s)
	}
}

func (s *ArenaScreen) Exit() {
	for _, t := range bannerEvents {
		s.ctx.Game.EventDispatcher.Unsubscribe(t, s)
	}
}

// OnEvent turns game events into short on-screen banners.
func (s *ArenaScreen) OnEvent(e event.Event) {
	lib := s.ctx.Game.Lib
	switch data := e.Data.(type) {
	case event.LevelStartedData:
		s.show(fmt.Sprintf("Level %d: %s", data.Level, data.Title))
	case event.LevelCompletedData:
		s.show(fmt.Sprintf("Level %d complete", data.Level))
	case event.WaveData:
		if e.Type == event.WaveStarted {
			s.show(fmt.Sprintf("Wave %d", data.Wave))
		}
	case event.WaveCountdownData:
		s.show(fmt.Sprintf("Wave %d in %d", data.NextWave, data.Remaining))
	case event.ActorSpawnedData:
		if b, ok := lib.Bosses[data.DefID]; ok {
			s.show(b.Name)
		}
	case event.BossPhaseData:
		s.show(data.Name)
	case event.RunEndedData:
		s.show("Boss defeated")
	case event.ShieldBrokenData:
		s.show("Shield broken")
	case event.UnlockData:
		s.show("Unlocked: " + data.Name)
	case event.PlayerDamagedData:
		s.hurtTimer = hurtFlashTime
	}
	if e.Type == event.AmmoEmpty {
		s.show("Out of ammo")
	}
}

func (s *ArenaScreen) show(text string) {
	s.banner = text
	s.bannerTimer = bannerDuration
}

func (s *ArenaScreen) Update(deltaTime float64) {
	g := s.ctx.Game
	phase := g.Phase()

	if phase.IsCombat() && (rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) || rl.IsKeyPressed(rl.KeyEscape) || s.pauseButton.IsClicked(rl.GetMousePosition())) {
		_ = g.Pause()
		return
	}

	s.handleInput(g, phase, deltaTime)
	g.Update(deltaTime)

	if s.bannerTimer > 0 {
		s.bannerTimer -= deltaTime
	}
	if s.hurtTimer > 0 {
		s.hurtTimer -= deltaTime
	}
	s.updateCamera(g)
}

func (s *ArenaScreen) handleInput(g *app.Game, phase state.Phase, deltaTime float64) {
	p := g.ECS.Player

	delta := rl.GetMouseDelta()
	yaw := iutils.NormalizeAngle(float32(p.Yaw - float64(delta.X)*mouseSensitivity))
	pitch := iutils.ClampPitch(float32(p.Pitch - float64(delta.Y)*mouseSensitivity))
	g.Look(float64(yaw), float64(pitch))

	var forward, strafe float64
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		strafe++
	}
	if rl.IsKeyDown(rl.KeyA) {
		strafe--
	}
	g.MovePlayer(forward, strafe, deltaTime)

	weaponKeys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree}
	for i, key := range weaponKeys {
		if i < len(defs.AllWeapons) && rl.IsKeyPressed(key) {
			s.switchWeapon(g, defs.AllWeapons[i])
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.switchWeapon(g, cycleWeapon(p.Weapon, wheel > 0))
	}

	convertKeys := []int32{rl.KeyZ, rl.KeyX, rl.KeyC}
	for i, key := range convertKeys {
		if i < len(defs.AllResources) && rl.IsKeyPressed(key) {
			if n, err := g.ConvertAll(defs.AllResources[i]); err != nil {
				s.show(err.Error())
			} else if n > 0 {
				s.show(fmt.Sprintf("+%d %s", n, g.Lib.Resources[defs.AllResources[i]].Ammo))
			}
		}
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) && phase.IsCombat() {
		if _, err := g.Fire(); err != nil && !errors.Is(err, system.ErrNoAmmo) {
			s.show(err.Error())
		}
	}

	if phase == state.LevelTransition && rl.IsKeyPressed(rl.KeyEnter) {
		_ = g.AdvanceLevel()
	}
}

func (s *ArenaScreen) switchWeapon(g *app.Game, w defs.WeaponType) {
	if err := g.SwitchWeapon(w); err != nil {
		s.show(err.Error())
	}
}

func cycleWeapon(current defs.WeaponType, next bool) defs.WeaponType {
	n := len(defs.AllWeapons)
	for i, w := range defs.AllWeapons {
		if w == current {
			if next {
				return defs.AllWeapons[(i+1)%n]
			}
			return defs.AllWeapons[(i+n-1)%n]
		}
	}
	return defs.AllWeapons[0]
}

func (s *ArenaScreen) updateCamera(g *app.Game) {
	eye := g.PlayerSystem.Eye()
	s.ctx.Camera.Position = toRL(eye)
	s.ctx.Camera.Target = toRL(eye.Add(g.ECS.Player.Forward()))
}

func toRL(v utils.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func (s *ArenaScreen) Draw() {
	ecs := s.ctx.Game.ECS
	size := float32(config.ArenaHalfSize * 2)
	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(size, size), ui.ColorToRL(config.FloorColor))
	rl.DrawGrid(int32(config.ArenaHalfSize/2), 4)

	for _, id := range ecs.OrbIDs() {
		orb, pos := ecs.Orbs[id], ecs.Positions[id]
		if pos == nil {
			continue
		}
		if orb.Unlock != "" {
			rl.DrawCube(toRL(pos.Vec3), 0.8, 0.8, 0.8, rl.Gold)
			rl.DrawCubeWires(toRL(pos.Vec3), 0.8, 0.8, 0.8, rl.White)
			continue
		}
		rl.DrawSphere(toRL(pos.Vec3), 0.4, ui.ColorToRL(config.ResourceColors[string(orb.Resource)]))
	}

	for _, id := range ecs.ActorIDs() {
		a, pos := ecs.Actors[id], ecs.Positions[id]
		if pos == nil || a.Dead {
			continue
		}
		center := toRL(pos.Vec3)
		tint := ui.ColorToRL(config.EnemyColors[a.DefID])
		if a.IsBoss() {
			tint = ui.ColorToRL(config.BossColor)
		}
		if f, ok := ecs.DamageFlashes[id]; ok && f.Timer > 0 {
			tint = rl.White
			if f.Critical {
				tint = rl.Yellow
			}
		}
		if model, ok := s.ctx.Models.GetModel(a.DefID); ok {
			rl.DrawModel(model, center, 1, tint)
		} else {
			rl.DrawSphere(center, float32(a.Radius), tint)
		}
		if a.HasShield() {
			rl.DrawSphereWires(center, float32(a.Radius)*1.3, 8, 8, ui.ColorToRL(config.ShieldColor))
		}
		if a.WeakSpot != nil {
			rl.DrawSphere(toRL(pos.Vec3.Add(a.WeakSpot.Offset)), float32(a.WeakSpot.Radius), rl.Red)
		}
	}

	for _, t := range ecs.Tracers {
		rl.DrawLine3D(toRL(t.From), toRL(t.To), rl.Yellow)
	}
}

func (s *ArenaScreen) DrawUI() {
	g := s.ctx.Game
	ecs := g.ECS
	p := ecs.Player
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	for _, id := range ecs.ActorIDs() {
		a, pos := ecs.Actors[id], ecs.Positions[id]
		if pos == nil || a.Dead {
			continue
		}
		top := pos.Vec3.Add(utils.V3(0, a.Radius+0.5, 0))
		if top.Sub(g.PlayerSystem.Eye()).Dot(p.Forward()) <= 0 {
			continue
		}
		sp := rl.GetWorldToScreen(toRL(top), *s.ctx.Camera)
		drawBar(sp, 50, a.Health.Fraction(), rl.Green)
		if a.Shield != nil && a.Shield.Max > 0 {
			drawBar(rl.NewVector2(sp.X, sp.Y-7), 50, a.Shield.HP/a.Shield.Max, ui.ColorToRL(config.ShieldColor))
		}
	}

	rl.DrawLine(w/2-8, h/2, w/2+8, h/2, rl.White)
	rl.DrawLine(w/2, h/2-8, w/2, h/2+8, rl.White)

	phase := g.Phase()
	s.phaseIndicator.Draw(phase)
	s.pauseButton.Draw()
	s.autoConvert.Draw(g.Rules.AutoConvert)
	s.health.Draw(p.HP, p.MaxHP)

	if run := ecs.Run; run != nil {
		boss := run.Mode == component.ModeRun && run.Level == component.LevelBoss
		s.stage.Draw(run.Level, boss, s.ctx.Font)
		rl.DrawText(fmt.Sprintf("%.1fs  kills %d  robots %d", run.Elapsed, run.Stats.Kills, ecs.LiveActors()), 20, 20, 20, rl.White)
	}

	gauges := make([]ui.AmmoGauge, 0, len(defs.AllWeapons))
	for _, wt := range defs.AllWeapons {
		gauges = append(gauges, ui.AmmoGauge{
			Weapon:   wt,
			Label:    string(wt),
			Ammo:     g.Ledger.Ammo(wt),
			Max:      g.Ledger.MaxAmmo(wt),
			Locked:   g.Ledger.WeaponLocked(wt),
			Selected: p.Weapon == wt,
		})
	}
	s.ammoBars.Draw(gauges)
	rl.DrawText(fmt.Sprintf("%s %d/%d", p.Weapon, g.Ledger.Ammo(p.Weapon), g.Ledger.MaxAmmo(p.Weapon)), w-200, h-170, 20, rl.White)

	for i, r := range defs.AllResources {
		c := ui.ColorToRL(config.ResourceColors[string(r)])
		rl.DrawText(fmt.Sprintf("%s %d", r, g.Ledger.Resource(r)), 20, int32(50+i*22), 18, c)
	}

	switch phase {
	case state.LevelTransition:
		drawCentered("Press Enter to continue", h/2+60, 24, rl.White)
	case state.BossIntro:
		drawCentered("Something approaches...", h/2+60, 24, rl.Red)
	}
	if s.bannerTimer > 0 && s.banner != "" {
		drawCentered(s.banner, h/3, 32, rl.White)
	}
	if s.hurtTimer > 0 {
		alpha := uint8(iutils.Lerp(0, 120, float32(s.hurtTimer/hurtFlashTime)))
		rl.DrawRectangle(0, 0, w, h, rl.NewColor(200, 0, 0, alpha))
	}
}

func drawBar(at rl.Vector2, width float32, fraction float64, c rl.Color) {
	x, y := at.X-width/2, at.Y
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(width, 5), rl.NewColor(0, 0, 0, 160))
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(width*float32(fraction), 5), c)
}

func drawCentered(text string, y, size int32, c rl.Color) {
	tw := rl.MeasureText(text, size)
	rl.DrawText(text, (int32(rl.GetScreenWidth())-tw)/2, y, size, c)
}
