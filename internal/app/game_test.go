package app

import (
	"errors"
	"testing"
	"time"

	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/persistence"
	"go-fps-factory/internal/state"
	"go-fps-factory/internal/system"
	"go-fps-factory/internal/types"
	"go-fps-factory/pkg/logger"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, rules *config.Rules) (*Game, *recorder) {
	t.Helper()
	g := NewGame(Options{
		Rules:  rules,
		Store:  persistence.NewMemoryStore(),
		Seed:   42,
		Logger: logger.Discard(),
		Now:    func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	rec := &recorder{}
	g.EventDispatcher.SubscribeAll(rec)
	return g, rec
}

func manualConvertRules() *config.Rules {
	r := config.DefaultRules()
	r.AutoConvert = false
	return &r
}

// step runs the game for the given number of seconds in small ticks.
func step(g *Game, seconds float64) {
	const dt = 0.05
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		g.Update(dt)
	}
}

// killAll destroys every live robot with overwhelming flux damage. The
// first hit strips any shield, the second lands on the body.
func killAll(t *testing.T, g *Game) {
	t.Helper()
	for _, id := range g.ECS.ActorIDs() {
		for i := 0; i < 2; i++ {
			if _, err := g.ApplyDamage(id, 10000, defs.WeaponFlux, false); err != nil {
				t.Fatalf("Expected damage on %d to succeed, got %v", id, err)
			}
		}
	}
}

func startRun(t *testing.T, g *Game) {
	t.Helper()
	if err := g.EnterHub(); err != nil {
		t.Fatalf("Expected to enter hub, got %v", err)
	}
	if err := g.StartRun(); err != nil {
		t.Fatalf("Expected run to start, got %v", err)
	}
}

func TestStandardRobotDiesOnFifthHit(t *testing.T) {
	g, rec := newTestGame(t, nil)
	id, err := g.SpawnEnemy(defs.EnemyStandard, 0)
	if err != nil {
		t.Fatalf("Expected spawn to succeed, got %v", err)
	}
	for i := 1; i <= 5; i++ {
		out, err := g.ApplyDamage(id, 20, defs.WeaponKinetic, false)
		if err != nil {
			t.Fatalf("Expected hit %d to succeed, got %v", i, err)
		}
		if out.Killed != (i == 5) {
			t.Errorf("Expected killed=%v on hit %d, got %v", i == 5, i, out.Killed)
		}
	}
	if rec.count(event.ActorDied) != 1 {
		t.Errorf("Expected exactly 1 ActorDied, got %d", rec.count(event.ActorDied))
	}
	// Further hits on the corpse do nothing.
	if _, err := g.ApplyDamage(id, 20, defs.WeaponKinetic, false); err != nil {
		t.Errorf("Expected hit on corpse to be ignored, got %v", err)
	}
	if rec.count(event.ActorDied) != 1 {
		t.Errorf("Expected death to stay single, got %d", rec.count(event.ActorDied))
	}

	g.Update(0.01)
	if _, ok := g.ECS.Actors[id]; ok {
		t.Error("Expected corpse to be removed on the next tick")
	}
	if len(g.ECS.Orbs) != 1 {
		t.Errorf("Expected 1 metal orb, got %d", len(g.ECS.Orbs))
	}
}

func TestKineticShieldBreaksWithoutBodyDamage(t *testing.T) {
	g, rec := newTestGame(t, nil)
	id, _ := g.SpawnEnemy(defs.EnemyShielded, 0)
	for i := 1; i <= 49; i++ {
		g.ApplyDamage(id, 20, defs.WeaponKinetic, false)
	}
	a := g.ECS.Actors[id]
	if a.Shield.Broken {
		t.Fatal("Expected shield to hold after 49 hits")
	}
	out, _ := g.ApplyDamage(id, 20, defs.WeaponKinetic, false)
	if !out.ShieldBroken || !a.Shield.Broken {
		t.Error("Expected the 50th hit to break the shield")
	}
	if a.Health.Value != 150 {
		t.Errorf("Expected body HP 150, got %v", a.Health.Value)
	}
	if rec.count(event.ShieldBroken) != 1 {
		t.Errorf("Expected 1 ShieldBroken event, got %d", rec.count(event.ShieldBroken))
	}
}

func TestApplyDamageErrors(t *testing.T) {
	g, _ := newTestGame(t, nil)
	if _, err := g.ApplyDamage(types.EntityID(999), 10, defs.WeaponKinetic, false); !errors.Is(err, system.ErrUnknownActor) {
		t.Errorf("Expected ErrUnknownActor, got %v", err)
	}
	id, _ := g.SpawnEnemy(defs.EnemyStandard, 0)
	if _, err := g.ApplyDamage(id, 10, defs.WeaponType("plasma"), false); !errors.Is(err, system.ErrUnknownType) {
		t.Errorf("Expected ErrUnknownType, got %v", err)
	}
	if _, err := g.SpawnEnemy("dragon", 0); !errors.Is(err, system.ErrUnknownType) {
		t.Errorf("Expected ErrUnknownType for unknown enemy, got %v", err)
	}
}

func TestFullRunReachesSuccess(t *testing.T) {
	g, rec := newTestGame(t, nil)
	startRun(t, g)
	if g.Phase() != state.Level1 {
		t.Fatalf("Expected LEVEL_1, got %s", g.Phase())
	}
	if g.RunSystem.Alive() != 8 {
		t.Errorf("Expected 8 robots in level 1, got %d", g.RunSystem.Alive())
	}

	// Level 1 auto-advances after the transition delay.
	killAll(t, g)
	g.Update(0.01)
	if g.Phase() != state.LevelTransition {
		t.Fatalf("Expected LEVEL_TRANSITION, got %s", g.Phase())
	}
	step(g, config.LevelTransitionDelay+0.1)
	if g.Phase() != state.Level2 {
		t.Fatalf("Expected LEVEL_2, got %s", g.Phase())
	}

	// Level 2 is confirmed manually, which skips the timer.
	killAll(t, g)
	g.Update(0.01)
	if err := g.AdvanceLevel(); err != nil {
		t.Fatalf("Expected manual advance to succeed, got %v", err)
	}
	if g.Phase() != state.Level3 {
		t.Fatalf("Expected LEVEL_3, got %s", g.Phase())
	}
	step(g, config.LevelTransitionDelay+0.1)
	if g.Phase() != state.Level3 {
		t.Fatalf("Expected canceled timer to leave LEVEL_3 alone, got %s", g.Phase())
	}

	killAll(t, g)
	g.Update(0.01)
	step(g, config.LevelTransitionDelay+0.1)
	if g.Phase() != state.BossIntro {
		t.Fatalf("Expected BOSS_INTRO, got %s", g.Phase())
	}
	if g.ECS.LiveActors() != 0 {
		t.Errorf("Expected an empty arena during the intro, got %d", g.ECS.LiveActors())
	}
	step(g, config.BossIntroDelay+0.1)
	if g.Phase() != state.BossFight {
		t.Fatalf("Expected BOSS_FIGHT, got %s", g.Phase())
	}
	bossID, _, ok := g.ECS.Boss()
	if !ok {
		t.Fatal("Expected boss to be in the arena")
	}

	for i := 0; i < 2; i++ {
		g.ApplyDamage(bossID, 10000, defs.WeaponFlux, false)
	}
	g.Update(0.01)
	if g.Phase() != state.BossFight {
		t.Errorf("Expected BOSS_FIGHT to hold until the delay, got %s", g.Phase())
	}

	// Walk onto the blueprint orb.
	var found bool
	for id, orb := range g.ECS.Orbs {
		if orb.Unlock == defs.UnlockThermalPanel {
			g.ECS.Player.Position = g.ECS.Positions[id].Vec3
			found = true
		}
	}
	if !found {
		t.Fatal("Expected the boss to drop the thermal blueprint")
	}
	g.Update(0.01)
	if !g.Unlocks.IsUnlocked(defs.UnlockThermalPanel) {
		t.Error("Expected thermal blueprint to be unlocked")
	}

	step(g, config.BossDeathDelay+0.1)
	if g.Phase() != state.RunSuccess {
		t.Fatalf("Expected RUN_SUCCESS, got %s", g.Phase())
	}
	if rec.count(event.RunSuccess) != 1 {
		t.Errorf("Expected 1 RunSuccess event, got %d", rec.count(event.RunSuccess))
	}
	run := g.ECS.Run
	if !run.Success || !run.Stats.BossDefeated || run.Stats.LevelsCompleted != 3 {
		t.Errorf("Expected a successful 3-level run with the boss down, got %+v", run.Stats)
	}
	if got := g.Career.Stats().RunsCompleted; got != 1 {
		t.Errorf("Expected 1 completed run in career stats, got %d", got)
	}

	if err := g.ReturnToHub(); err != nil {
		t.Fatalf("Expected to return to hub, got %v", err)
	}
	if g.Phase() != state.Hub || len(g.ECS.Orbs) != 0 || len(g.ECS.Actors) != 0 {
		t.Error("Expected a clean hub after the run")
	}
}

func TestPlayerDeathFailsRunAndCancelsTimers(t *testing.T) {
	g, rec := newTestGame(t, nil)
	startRun(t, g)
	killAll(t, g)
	g.Update(0.01)
	if g.Phase() != state.LevelTransition {
		t.Fatalf("Expected LEVEL_TRANSITION, got %s", g.Phase())
	}

	g.PlayerSystem.Damage(1000, "test")
	if g.Phase() != state.RunFailed {
		t.Fatalf("Expected RUN_FAILED, got %s", g.Phase())
	}
	if len(g.RunSystem.Pending()) != 0 {
		t.Errorf("Expected no pending timers, got %v", g.RunSystem.Pending())
	}
	step(g, config.LevelTransitionDelay+1)
	if g.Phase() != state.RunFailed {
		t.Errorf("Expected stale advance to stay canceled, got %s", g.Phase())
	}
	if rec.count(event.RunFailed) != 1 {
		t.Errorf("Expected 1 RunFailed event, got %d", rec.count(event.RunFailed))
	}

	if err := g.StartRun(); !errors.Is(err, state.ErrInvalidTransition) {
		t.Errorf("Expected StartRun from RUN_FAILED to be rejected, got %v", err)
	}
	if err := g.ReturnToHub(); err != nil {
		t.Fatalf("Expected to return to hub, got %v", err)
	}
	if g.ECS.Player.Dead || g.ECS.Player.HP != g.Rules.PlayerMaxHP {
		t.Error("Expected the player to be restored in the hub")
	}
}

func TestBossBlueprintGrantedWhenKilledFromRange(t *testing.T) {
	g, _ := newTestGame(t, nil)
	startRun(t, g)
	for level := 1; level <= 3; level++ {
		killAll(t, g)
		g.Update(0.01)
		if err := g.AdvanceLevel(); err != nil {
			t.Fatalf("Expected advance after level %d, got %v", level, err)
		}
	}
	step(g, config.BossIntroDelay+0.1)
	bossID, _, ok := g.ECS.Boss()
	if !ok {
		t.Fatalf("Expected boss in the arena, phase %s", g.Phase())
	}
	if d := g.ECS.Positions[bossID].Sub(g.ECS.Player.Position).Len(); d < config.OrbAttractRadius*2 {
		t.Fatalf("Expected the boss to be out of orb reach, got distance %v", d)
	}

	for i := 0; i < 2; i++ {
		g.ApplyDamage(bossID, 10000, defs.WeaponFlux, false)
	}
	step(g, config.BossDeathDelay+0.1)
	if g.Phase() != state.RunSuccess {
		t.Fatalf("Expected RUN_SUCCESS, got %s", g.Phase())
	}
	if err := g.ReturnToHub(); err != nil {
		t.Fatalf("Expected to return to hub, got %v", err)
	}
	if !g.Unlocks.IsUnlocked(defs.UnlockThermalPanel) {
		t.Error("Expected thermal blueprint to be unlocked without picking up its orb")
	}
	if g.Ledger.WeaponLocked(defs.WeaponThermal) {
		t.Error("Expected thermal ammo to be available in the hub")
	}
}

func TestPlayerDeathWhilePausedLeavesRunPlayable(t *testing.T) {
	g, _ := newTestGame(t, nil)
	startRun(t, g)
	if err := g.Pause(); err != nil {
		t.Fatalf("Expected pause to succeed, got %v", err)
	}
	if err := g.OnPlayerHealthZero(); !errors.Is(err, state.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition while paused, got %v", err)
	}
	if g.ECS.Player.Dead || g.ECS.Player.HP != g.Rules.PlayerMaxHP {
		t.Errorf("Expected a rejected death to leave the player alone, got dead=%v hp=%d", g.ECS.Player.Dead, g.ECS.Player.HP)
	}

	if err := g.Resume(); err != nil {
		t.Fatalf("Expected resume to succeed, got %v", err)
	}
	if fired, err := g.Fire(); err != nil || !fired {
		t.Errorf("Expected Fire after resume to shoot, got %v (%v)", fired, err)
	}
	if err := g.OnPlayerHealthZero(); err != nil || g.Phase() != state.RunFailed {
		t.Errorf("Expected RUN_FAILED after resuming, got %s (%v)", g.Phase(), err)
	}
}

func TestPauseFreezesTheArena(t *testing.T) {
	g, _ := newTestGame(t, nil)
	startRun(t, g)
	id := g.ECS.ActorIDs()[0]
	before := g.ECS.Positions[id].Vec3

	if err := g.Pause(); err != nil {
		t.Fatalf("Expected pause to succeed, got %v", err)
	}
	if g.TimeScale() != 0 {
		t.Errorf("Expected time scale 0 while paused, got %v", g.TimeScale())
	}
	step(g, 2)
	if g.ECS.Positions[id].Vec3 != before {
		t.Error("Expected robots to stand still while paused")
	}
	if _, err := g.Fire(); !errors.Is(err, system.ErrWrongMode) {
		t.Errorf("Expected Fire while paused to fail, got %v", err)
	}

	if err := g.Resume(); err != nil || g.Phase() != state.Level1 {
		t.Fatalf("Expected resume to LEVEL_1, got %s (%v)", g.Phase(), err)
	}
	step(g, 0.5)
	if g.ECS.Positions[id].Vec3 == before {
		t.Error("Expected robots to move after resuming")
	}

	g.Pause()
	if err := g.QuitToHub(); err != nil {
		t.Fatalf("Expected quit to hub, got %v", err)
	}
	if g.Phase() != state.Hub || len(g.ECS.Actors) != 0 {
		t.Error("Expected an empty hub after quitting")
	}
}

func TestConversionClampsAtMaximum(t *testing.T) {
	g, _ := newTestGame(t, manualConvertRules())
	max := g.Ledger.MaxAmmo(defs.WeaponKinetic)
	g.Ledger.Add(defs.WeaponKinetic, max)
	g.Ledger.Consume(defs.WeaponKinetic, 10)

	if err := g.CollectResource(defs.ResourceMetal, 37); err != nil {
		t.Fatalf("Expected collect to succeed, got %v", err)
	}
	added, err := g.ConvertResource(defs.ResourceMetal, 37)
	if err != nil {
		t.Fatalf("Expected conversion to succeed, got %v", err)
	}
	if added != 10 {
		t.Errorf("Expected 10 rounds added, got %d", added)
	}
	if g.Ledger.Ammo(defs.WeaponKinetic) != max {
		t.Errorf("Expected kinetic at %d, got %d", max, g.Ledger.Ammo(defs.WeaponKinetic))
	}
	if g.Ledger.Resource(defs.ResourceMetal) != 0 {
		t.Errorf("Expected metal 0, got %d", g.Ledger.Resource(defs.ResourceMetal))
	}

	if _, err := g.ConvertResource(defs.ResourceMetal, 1); !errors.Is(err, system.ErrInsufficientResource) {
		t.Errorf("Expected ErrInsufficientResource, got %v", err)
	}
	g.CollectResource(defs.ResourceThermalCore, 3)
	if _, err := g.ConvertAll(defs.ResourceThermalCore); !errors.Is(err, system.ErrLockedFeature) {
		t.Errorf("Expected ErrLockedFeature, got %v", err)
	}
}

func TestFireAndSwitchWeapon(t *testing.T) {
	g, rec := newTestGame(t, nil)
	if _, err := g.Fire(); !errors.Is(err, system.ErrWrongMode) {
		t.Errorf("Expected Fire in the menu to fail, got %v", err)
	}
	startRun(t, g)
	start := g.Ledger.Ammo(defs.WeaponKinetic)

	fired, err := g.Fire()
	if err != nil || !fired {
		t.Fatalf("Expected first shot to fire, got %v (%v)", fired, err)
	}
	if fired, _ := g.Fire(); fired {
		t.Error("Expected the cooldown to block a second shot")
	}
	if g.Ledger.Ammo(defs.WeaponKinetic) != start-1 {
		t.Errorf("Expected %d rounds left, got %d", start-1, g.Ledger.Ammo(defs.WeaponKinetic))
	}
	g.Update(0.01)
	if rec.count(event.ShotFired) != 1 {
		t.Errorf("Expected 1 ShotFired event, got %d", rec.count(event.ShotFired))
	}

	if err := g.SwitchWeapon(defs.WeaponThermal); !errors.Is(err, system.ErrLockedFeature) {
		t.Errorf("Expected ErrLockedFeature, got %v", err)
	}
	if err := g.SwitchWeapon(defs.WeaponFlux); !errors.Is(err, system.ErrNoAmmo) {
		t.Errorf("Expected ErrNoAmmo, got %v", err)
	}
	g.Ledger.Add(defs.WeaponFlux, 5)
	if err := g.SwitchWeapon(defs.WeaponFlux); err != nil {
		t.Errorf("Expected switch to flux, got %v", err)
	}
	if g.ECS.Player.Weapon != defs.WeaponFlux {
		t.Errorf("Expected flux selected, got %s", g.ECS.Player.Weapon)
	}
}

func TestWaveModeReachesVictory(t *testing.T) {
	g, rec := newTestGame(t, nil)
	g.EnterHub()
	if err := g.StartWaveMode(); err != nil {
		t.Fatalf("Expected wave mode to start, got %v", err)
	}
	for wave := 1; wave <= len(g.Lib.Waves); wave++ {
		if g.Phase() != state.Playing || g.WaveSystem.Wave() != wave {
			t.Fatalf("Expected PLAYING wave %d, got %s wave %d", wave, g.Phase(), g.WaveSystem.Wave())
		}
		killAll(t, g)
		g.Update(0.01)
		if wave < len(g.Lib.Waves) {
			if g.Phase() != state.WaveTransition {
				t.Fatalf("Expected WAVE_TRANSITION after wave %d, got %s", wave, g.Phase())
			}
			step(g, float64(config.WaveCountdown)+0.1)
		}
	}
	if g.Phase() != state.Victory {
		t.Fatalf("Expected VICTORY, got %s", g.Phase())
	}
	if got := rec.count(event.WaveCountdown); got != config.WaveCountdown*(len(g.Lib.Waves)-1) {
		t.Errorf("Expected %d countdown ticks, got %d", config.WaveCountdown*(len(g.Lib.Waves)-1), got)
	}
	if rec.count(event.Victory) != 1 {
		t.Errorf("Expected 1 Victory event, got %d", rec.count(event.Victory))
	}
}

func TestResetProgressWipesUnlocks(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Unlocks.Unlock(defs.UnlockThermalPanel)
	if err := g.ResetProgress(); err != nil {
		t.Fatalf("Expected reset from the menu to succeed, got %v", err)
	}
	if g.Phase() != state.Hub {
		t.Errorf("Expected HUB after reset, got %s", g.Phase())
	}
	if g.Unlocks.IsUnlocked(defs.UnlockThermalPanel) {
		t.Error("Expected the blueprint to be locked again")
	}

	g.StartRun()
	if err := g.ResetProgress(); !errors.Is(err, state.ErrInvalidTransition) {
		t.Errorf("Expected reset mid-level to be rejected, got %v", err)
	}
}
