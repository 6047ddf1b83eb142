// internal/system/run.go
package system

import (
	"fmt"
	"sort"
	"time"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/schedule"
	"go-fps-factory/internal/state"
	"go-fps-factory/internal/types"
	"go-fps-factory/pkg/logger"
)

// RunSystem drives the level track: levels 1-3, the boss intro and fight,
// and the success or failure that ends a run.
type RunSystem struct {
	ecs        *entity.ECS
	lib        *defs.Library
	rules      config.Rules
	sm         *state.StateMachine
	sched      *schedule.Scheduler
	spawner    *Spawner
	ledger     *Ledger
	dispatcher *event.Dispatcher
	log        *logger.Logger
	now        func() time.Time

	level  int // level whose population is being counted, 0 when none
	alive  int
	boss   types.EntityID
	timers map[string]schedule.TimerID
}

func NewRunSystem(ecs *entity.ECS, lib *defs.Library, rules config.Rules, sm *state.StateMachine, sched *schedule.Scheduler,
	spawner *Spawner, ledger *Ledger, dispatcher *event.Dispatcher, log *logger.Logger) *RunSystem {
	s := &RunSystem{
		ecs:        ecs,
		lib:        lib,
		rules:      rules,
		sm:         sm,
		sched:      sched,
		spawner:    spawner,
		ledger:     ledger,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
		timers:     make(map[string]schedule.TimerID),
	}
	dispatcher.Subscribe(event.ActorSpawned, s)
	dispatcher.Subscribe(event.ActorDied, s)
	return s
}

// Alive is the live population of the current level.
func (s *RunSystem) Alive() int { return s.alive }

// Start begins a new run at level 1. The caller resets the arena first.
func (s *RunSystem) Start() error {
	if !s.sm.CanTransition(state.Level1) {
		return fmt.Errorf("%w: start run from %s", state.ErrInvalidTransition, s.sm.Current())
	}
	s.cancelTimers()
	run := component.NewRun(component.ModeRun, s.now())
	s.ecs.Run = run
	s.log.Info("run %s started", run.ID)
	s.dispatcher.Emit(event.RunStarted, event.RunStartedData{RunID: run.ID, Mode: run.Mode})
	if err := s.sm.SetState(state.Level1); err != nil {
		return err
	}
	return s.startLevel(1)
}

func (s *RunSystem) startLevel(n int) error {
	lvl, ok := s.lib.Level(n)
	if !ok {
		return fmt.Errorf("%w: level %d", ErrUnknownType, n)
	}
	s.ecs.Run.Level = n
	s.level = n
	s.alive = 0
	s.dispatcher.Emit(event.LevelStarted, event.LevelStartedData{Level: n, Title: lvl.Title, Composition: Composition(lvl.Squads)})
	if _, err := s.spawner.SpawnSquads(lvl.Squads, n); err != nil {
		return err
	}
	s.log.Info("level %d started with %d robots", n, s.alive)
	return nil
}

func (s *RunSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ActorSpawned:
		data, ok := e.Data.(event.ActorSpawnedData)
		if ok && !data.Boss && s.level != 0 && data.Level == s.level {
			s.alive++
		}
	case event.ActorDied:
		data, ok := e.Data.(event.ActorDiedData)
		if !ok {
			return
		}
		if data.Boss && data.ID == s.boss {
			s.onBossDeath()
			return
		}
		if s.level != 0 && data.Level == s.level && s.alive > 0 {
			s.alive--
		}
	}
}

// CheckCompletion ends the current level once its population is gone.
func (s *RunSystem) CheckCompletion() {
	if !s.sm.Current().IsLevel() || s.level == 0 || s.alive > 0 {
		return
	}
	s.completeLevel()
}

func (s *RunSystem) completeLevel() {
	n := s.level
	lvl, _ := s.lib.Level(n)
	s.level = 0
	s.ledger.AddResources(lvl.Reward)
	s.ecs.Run.Stats.LevelsCompleted++
	s.log.Info("level %d complete", n)
	s.dispatcher.Emit(event.LevelCompleted, event.LevelCompletedData{Level: n, Rewards: copyRewards(lvl.Reward)})

	if err := s.sm.SetState(state.LevelTransition); err != nil {
		s.log.Error("level %d: %v", n, err)
		return
	}
	if s.rules.Advance == config.AdvanceAuto {
		s.timers["advance"] = s.sched.After(config.LevelTransitionDelay, "level-advance", func() {
			delete(s.timers, "advance")
			if err := s.advance(); err != nil {
				s.log.Error("auto advance: %v", err)
			}
		})
	}
}

// AdvanceLevel leaves the transition screen. Under the automatic policy it
// skips the remaining delay.
func (s *RunSystem) AdvanceLevel() error {
	if s.sm.Current() != state.LevelTransition {
		return fmt.Errorf("%w: advance from %s", state.ErrInvalidTransition, s.sm.Current())
	}
	if id, ok := s.timers["advance"]; ok {
		s.sched.Cancel(id)
		delete(s.timers, "advance")
	}
	return s.advance()
}

func (s *RunSystem) advance() error {
	next := s.sm.LastCleared() + 1
	if p, ok := state.LevelPhase(next); ok {
		if err := s.sm.SetState(p); err != nil {
			return err
		}
		return s.startLevel(next)
	}
	return s.enterBossIntro()
}

func (s *RunSystem) enterBossIntro() error {
	if err := s.sm.SetState(state.BossIntro); err != nil {
		return err
	}
	s.ecs.ClearActors()
	s.ecs.Run.Level = component.LevelBoss
	s.log.Info("boss intro")
	s.timers["boss"] = s.sched.After(config.BossIntroDelay, "boss-spawn", func() {
		delete(s.timers, "boss")
		s.spawnBoss()
	})
	return nil
}

func (s *RunSystem) spawnBoss() {
	id, err := s.spawner.SpawnBoss(s.lib.RunBoss, config.BossSpawnPosition)
	if err != nil {
		s.log.Error("spawn boss: %v", err)
		return
	}
	s.boss = id
	if err := s.sm.SetState(state.BossFight); err != nil {
		s.log.Error("boss fight: %v", err)
	}
}

func (s *RunSystem) onBossDeath() {
	s.boss = 0
	run := s.ecs.Run
	if run == nil || run.Finished {
		return
	}
	run.Stats.BossDefeated = true
	s.dispatcher.Emit(event.BossDefeated, event.RunEndedData{Summary: run.Summarize()})
	s.timers["success"] = s.sched.After(config.BossDeathDelay, "run-success", func() {
		delete(s.timers, "success")
		s.finish(true)
	})
}

// Fail ends the run immediately, whatever level or phase it is in.
func (s *RunSystem) Fail() error {
	if !s.sm.Current().InRun() {
		return fmt.Errorf("%w: fail from %s", state.ErrInvalidTransition, s.sm.Current())
	}
	s.finish(false)
	return nil
}

func (s *RunSystem) finish(success bool) {
	s.cancelTimers()
	target := state.RunFailed
	if success {
		target = state.RunSuccess
	}
	if err := s.sm.SetState(target); err != nil {
		s.log.Error("finish run: %v", err)
		return
	}
	s.level = 0
	run := s.ecs.Run
	run.Finished = true
	run.Success = success
	summary := run.Summarize()
	if success {
		s.log.Info("run %s succeeded in %.1fs", run.ID, run.Elapsed)
		s.dispatcher.Emit(event.RunSuccess, event.RunEndedData{Summary: summary})
	} else {
		s.log.Info("run %s failed at level %d", run.ID, run.Level)
		s.dispatcher.Emit(event.RunFailed, event.RunEndedData{Summary: summary})
	}
}

// Abort drops the run without a result, as when quitting to the hub.
func (s *RunSystem) Abort() {
	s.cancelTimers()
	s.level = 0
	s.alive = 0
	s.boss = 0
}

// Update accumulates run time while combat is running.
func (s *RunSystem) Update(deltaTime float64) {
	if run := s.ecs.Run; run != nil && !run.Finished && run.Mode == component.ModeRun {
		run.Elapsed += deltaTime
	}
}

// Pending lists the labels of timers this system is waiting on.
func (s *RunSystem) Pending() []string {
	var out []string
	for label := range s.timers {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

func (s *RunSystem) cancelTimers() {
	for label, id := range s.timers {
		s.sched.Cancel(id)
		delete(s.timers, label)
	}
}

func copyRewards(in map[defs.ResourceType]int) map[defs.ResourceType]int {
	out := make(map[defs.ResourceType]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// SetClock replaces the wall clock used to stamp run start times.
func (s *RunSystem) SetClock(now func() time.Time) { s.now = now }
