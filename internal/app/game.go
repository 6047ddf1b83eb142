// internal/app/game.go
package app

import (
	"time"

	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/persistence"
	"go-fps-factory/internal/schedule"
	"go-fps-factory/internal/state"
	"go-fps-factory/internal/stats"
	"go-fps-factory/internal/system"
	"go-fps-factory/internal/utils"
	"go-fps-factory/pkg/logger"
)

// Options configures NewGame. Zero values fall back to defaults.
type Options struct {
	Library *defs.Library
	Rules   *config.Rules
	Store   persistence.Store
	Seed    int64
	Logger  *logger.Logger
	Now     func() time.Time
}

// Game owns all mutable state of a play session and runs the fixed
// per-tick system order. It is not safe for concurrent use.
type Game struct {
	Lib             *defs.Library
	Rules           config.Rules
	ECS             *entity.ECS
	StateMachine    *state.StateMachine
	Scheduler       *schedule.Scheduler
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	Ledger  *system.Ledger
	Unlocks *persistence.UnlockManager
	Career  *persistence.CareerTracker
	Stats   *stats.Tracker

	Spawner         *system.Spawner
	DamageTable     *system.DamageTable
	LifecycleSystem *system.LifecycleSystem
	CombatSystem    *system.CombatSystem
	MovementSystem  *system.MovementSystem
	OrbSystem       *system.OrbSystem
	AttackSystem    *system.AttackSystem
	PlayerSystem    *system.PlayerSystem
	RunSystem       *system.RunSystem
	WaveSystem      *system.WaveSystem

	log *logger.Logger
}

// NewGame wires every system together. The machine starts in MAIN_MENU.
func NewGame(opts Options) *Game {
	lib := opts.Library
	if lib == nil {
		lib = defs.DefaultLibrary()
	}
	if err := lib.Validate(); err != nil {
		panic(err)
	}
	rules := config.DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	store := opts.Store
	if store == nil {
		store = persistence.NewMemoryStore()
	}
	log := opts.Logger
	if log == nil {
		log = logger.New(logger.INFO, "GAME")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ecs := entity.NewECS(rules.PlayerMaxHP)
	dispatcher := event.NewDispatcher()
	g := &Game{
		Lib:             lib,
		Rules:           rules,
		ECS:             ecs,
		StateMachine:    state.NewStateMachine(),
		Scheduler:       schedule.New(),
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
		log:             log,
	}

	g.Unlocks = persistence.NewUnlockManager(store, lib.Unlocks, log.WithPrefix("UNLOCK"))
	g.Career = persistence.NewCareerTracker(store, log.WithPrefix("CAREER"))
	g.Career.Subscribe(dispatcher)
	g.Stats = stats.NewTracker()
	g.Stats.Subscribe(dispatcher)

	g.Ledger = system.NewLedger(lib, g.Unlocks, rules.AutoConvert, dispatcher, log.WithPrefix("LEDGER"))
	g.Spawner = system.NewSpawner(ecs, lib, g.Rng, dispatcher, log.WithPrefix("SPAWN"))
	g.DamageTable = system.NewDamageTable(rules)
	g.LifecycleSystem = system.NewLifecycleSystem(ecs, g.Rng, dispatcher, log.WithPrefix("LIFECYCLE"))
	g.CombatSystem = system.NewCombatSystem(ecs, g.DamageTable, g.LifecycleSystem, dispatcher, log.WithPrefix("COMBAT"))
	g.MovementSystem = system.NewMovementSystem(ecs, dispatcher, log.WithPrefix("MOVE"))
	g.OrbSystem = system.NewOrbSystem(ecs, g.Ledger, g.Unlocks, dispatcher, log.WithPrefix("ORB"))
	g.PlayerSystem = system.NewPlayerSystem(ecs, dispatcher, log.WithPrefix("PLAYER"), g.playerHealthZero)
	g.AttackSystem = system.NewAttackSystem(ecs, g.CombatSystem, g.PlayerSystem, dispatcher)
	g.RunSystem = system.NewRunSystem(ecs, lib, rules, g.StateMachine, g.Scheduler, g.Spawner, g.Ledger, dispatcher, log.WithPrefix("RUN"))
	g.WaveSystem = system.NewWaveSystem(ecs, lib, g.StateMachine, g.Scheduler, g.Spawner, dispatcher, log.WithPrefix("WAVE"))
	g.RunSystem.SetClock(now)
	g.WaveSystem.SetClock(now)

	g.StateMachine.OnChange(func(from, to state.Phase) {
		log.Debug("phase %s -> %s", from, to)
		dispatcher.Emit(event.PhaseChanged, event.PhaseChangedData{From: from.String(), To: to.String(), TimeScale: to.TimeScale()})
	})
	dispatcher.Subscribe(event.UnlockAcquired, event.ListenerFunc(g.onUnlock))

	return g
}

// Update advances the session by dt seconds of wall time in a fixed order:
// timers, movement, attacks, deaths and pickups, completion checks.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	// 0. Delayed transitions run on unscaled time, but not while paused.
	if g.StateMachine.Current() != state.Paused {
		g.Scheduler.Advance(deltaTime)
	}
	scaled := deltaTime * g.StateMachine.TimeScale()
	g.ECS.GameTime += scaled

	// 1. Movement.
	if scaled > 0 {
		g.PlayerSystem.Update(scaled)
		g.MovementSystem.Update(scaled)
		g.OrbSystem.Update(scaled)
	}

	// 2. Queued shots, then contact damage.
	if scaled > 0 {
		g.AttackSystem.Update(scaled)
	}

	// 3. Deaths become orbs, orbs in reach are collected.
	g.LifecycleSystem.Flush()
	if scaled > 0 {
		g.OrbSystem.Collect()
	}

	// 4. Completion.
	g.RunSystem.CheckCompletion()
	g.WaveSystem.CheckCompletion()

	g.RunSystem.Update(scaled)
	g.WaveSystem.Update(scaled)
	g.AttackSystem.UpdateEffects(deltaTime)
}

// Phase is the current state machine phase.
func (g *Game) Phase() state.Phase { return g.StateMachine.Current() }

// TimeScale is the current simulation speed.
func (g *Game) TimeScale() float64 { return g.StateMachine.TimeScale() }

func (g *Game) onUnlock(e event.Event) {
	data, ok := e.Data.(event.UnlockData)
	if !ok {
		return
	}
	if def, known := g.Lib.Unlocks[data.ID]; known {
		g.log.Info("unlock acquired: %s", def.Name)
	}
}

func (g *Game) playerHealthZero() {
	if err := g.OnPlayerHealthZero(); err != nil {
		g.log.Warn("player died outside a run: %v", err)
	}
}

// resetArena clears robots, orbs and pending timers and restores the
// player and ledgers for a fresh attempt.
func (g *Game) resetArena() {
	g.RunSystem.Abort()
	g.WaveSystem.Abort()
	g.Scheduler.CancelAll()
	g.AttackSystem.ClearQueue()
	g.LifecycleSystem.Discard()
	g.ECS.ClearActors()
	g.ECS.ClearOrbs()
	g.PlayerSystem.Reset(g.Rules.PlayerMaxHP)
	g.Ledger.Reset()
	g.ECS.Player.Weapon = defs.WeaponKinetic
}
