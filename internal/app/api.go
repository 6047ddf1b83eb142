package app

import (
	"fmt"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/state"
	"go-fps-factory/internal/system"
	"go-fps-factory/internal/types"
)

// EnterHub leaves the main menu.
func (g *Game) EnterHub() error {
	return g.StateMachine.SetState(state.Hub)
}

// ExitToMenu goes from the hub back to the main menu.
func (g *Game) ExitToMenu() error {
	if g.Phase() != state.Hub {
		return fmt.Errorf("%w: main menu from %s", state.ErrInvalidTransition, g.Phase())
	}
	return g.StateMachine.SetState(state.MainMenu)
}

// StartRun begins a level-track run from the hub.
func (g *Game) StartRun() error {
	if g.Phase() != state.Hub {
		return fmt.Errorf("%w: start run from %s", state.ErrInvalidTransition, g.Phase())
	}
	g.resetArena()
	return g.RunSystem.Start()
}

// StartWaveMode begins the five-wave mode from the hub.
func (g *Game) StartWaveMode() error {
	if g.Phase() != state.Hub {
		return fmt.Errorf("%w: start waves from %s", state.ErrInvalidTransition, g.Phase())
	}
	g.resetArena()
	return g.WaveSystem.Start()
}

// AdvanceLevel confirms the level transition screen.
func (g *Game) AdvanceLevel() error {
	return g.RunSystem.AdvanceLevel()
}

// OnPlayerHealthZero ends the current run or wave session in failure. The
// player is left untouched when the phase has nothing to fail.
func (g *Game) OnPlayerHealthZero() error {
	var fail func() error
	switch {
	case g.Phase().InRun():
		fail = g.RunSystem.Fail
	case g.Phase().InWaves():
		fail = g.WaveSystem.Fail
	default:
		return fmt.Errorf("%w: player death in %s", state.ErrInvalidTransition, g.Phase())
	}
	p := g.ECS.Player
	p.HP = 0
	p.Dead = true
	return fail()
}

// SpawnEnemy adds a robot of enemyType counted toward level.
func (g *Game) SpawnEnemy(enemyType string, level int) (types.EntityID, error) {
	return g.Spawner.SpawnEnemy(enemyType, level)
}

// ApplyDamage hits actor id directly, bypassing the hitscan.
func (g *Game) ApplyDamage(id types.EntityID, amount float64, weapon defs.WeaponType, critical bool) (component.DamageOutcome, error) {
	if _, ok := g.Lib.Ammo[weapon]; !ok {
		return component.DamageOutcome{}, fmt.Errorf("%w: weapon %q", system.ErrUnknownType, weapon)
	}
	if _, ok := g.ECS.Actors[id]; !ok {
		return component.DamageOutcome{}, fmt.Errorf("%w: %d", system.ErrUnknownActor, id)
	}
	return g.CombatSystem.ApplyDamage(id, component.DamageEvent{Amount: amount, Weapon: weapon, Critical: critical}), nil
}

// CollectResource credits raw resources as if an orb had been picked up.
func (g *Game) CollectResource(r defs.ResourceType, amount int) error {
	if err := g.Ledger.Collect(r, amount); err != nil {
		return err
	}
	if run := g.ECS.Run; run != nil && !run.Finished && amount > 0 {
		run.Stats.ResourcesCollected[r] += amount
	}
	return nil
}

// ConvertResource turns amount of r into ammunition.
func (g *Game) ConvertResource(r defs.ResourceType, amount int) (int, error) {
	return g.Ledger.Convert(r, amount)
}

// ConvertAll turns the whole balance of r into ammunition.
func (g *Game) ConvertAll(r defs.ResourceType) (int, error) {
	return g.Ledger.ConvertAll(r)
}

// SwitchWeapon selects w if it is unlocked and loaded.
func (g *Game) SwitchWeapon(w defs.WeaponType) error {
	if _, ok := g.Lib.Ammo[w]; !ok {
		return fmt.Errorf("%w: weapon %q", system.ErrUnknownType, w)
	}
	if g.Ledger.WeaponLocked(w) {
		return fmt.Errorf("%w: %s", system.ErrLockedFeature, w)
	}
	if g.Ledger.Ammo(w) <= 0 {
		return fmt.Errorf("%w: %s", system.ErrNoAmmo, w)
	}
	g.ECS.Player.Weapon = w
	g.EventDispatcher.Emit(event.WeaponSwitched, event.WeaponSwitchedData{Weapon: w})
	return nil
}

// Fire spends one round of the current weapon and queues a shot along the
// view direction. It reports false while the weapon is cooling down.
func (g *Game) Fire() (bool, error) {
	if !g.Phase().IsCombat() {
		return false, fmt.Errorf("%w: fire in %s", system.ErrWrongMode, g.Phase())
	}
	p := g.ECS.Player
	if p.Dead || p.FireCooldown > 0 {
		return false, nil
	}
	if !g.Ledger.Consume(p.Weapon, 1) {
		return false, fmt.Errorf("%w: %s", system.ErrNoAmmo, p.Weapon)
	}
	p.FireCooldown = config.FireCooldown
	g.AttackSystem.QueueShot(system.Shot{
		Origin: g.PlayerSystem.Eye(),
		Dir:    p.Forward(),
		Weapon: p.Weapon,
		Damage: g.Lib.Ammo[p.Weapon].Damage,
	})
	return true, nil
}

// MovePlayer walks the player during combat phases.
func (g *Game) MovePlayer(forward, strafe, deltaTime float64) {
	if g.Phase().IsCombat() {
		g.PlayerSystem.Move(forward, strafe, deltaTime)
	}
}

// Look sets the view angles.
func (g *Game) Look(yaw, pitch float64) {
	if g.Phase() != state.Paused {
		g.PlayerSystem.Look(yaw, pitch)
	}
}

// Pause freezes a combat phase.
func (g *Game) Pause() error { return g.StateMachine.Pause() }

// Resume returns to the paused phase.
func (g *Game) Resume() error { return g.StateMachine.Resume() }

// QuitToHub abandons the current run or wave session from the pause menu or
// a transition screen. Pending timers are canceled so nothing stale fires.
func (g *Game) QuitToHub() error {
	switch g.Phase() {
	case state.Paused, state.LevelTransition, state.WaveTransition:
	default:
		return fmt.Errorf("%w: quit from %s", state.ErrInvalidTransition, g.Phase())
	}
	if err := g.StateMachine.SetState(state.Hub); err != nil {
		return err
	}
	g.log.Info("run abandoned")
	g.resetArena()
	return nil
}

// ReturnToHub leaves a finished run's result screen.
func (g *Game) ReturnToHub() error {
	if !g.Phase().IsFinal() {
		return fmt.Errorf("%w: return to hub from %s", state.ErrInvalidTransition, g.Phase())
	}
	if err := g.StateMachine.SetState(state.Hub); err != nil {
		return err
	}
	g.resetArena()
	return nil
}

// ResetProgress wipes unlocks and career statistics and returns to the hub.
func (g *Game) ResetProgress() error {
	switch p := g.Phase(); {
	case p == state.Hub:
	case p == state.MainMenu || p.IsFinal():
		if err := g.StateMachine.SetState(state.Hub); err != nil {
			return err
		}
	case p == state.Paused:
		if err := g.QuitToHub(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: reset progress during %s", state.ErrInvalidTransition, p)
	}
	g.Unlocks.Reset()
	g.Career.Reset()
	g.resetArena()
	g.log.Info("progress reset")
	return nil
}
