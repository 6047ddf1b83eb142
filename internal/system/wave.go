// internal/system/wave.go
package system

import (
	"fmt"
	"time"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/schedule"
	"go-fps-factory/internal/state"
	"go-fps-factory/pkg/logger"
)

// WaveSystem drives the older five-wave mode: PLAYING, a countdown between
// waves, then VICTORY or DEFEAT.
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	sm              *state.StateMachine
	sched           *schedule.Scheduler
	spawner         *Spawner
	eventDispatcher *event.Dispatcher
	log             *logger.Logger
	now             func() time.Time

	wave          int
	activeEnemies int
	countdown     schedule.TimerID
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, sm *state.StateMachine, sched *schedule.Scheduler,
	spawner *Spawner, eventDispatcher *event.Dispatcher, log *logger.Logger) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		sm:              sm,
		sched:           sched,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
		log:             log,
		now:             time.Now,
	}
	eventDispatcher.Subscribe(event.ActorSpawned, ws)
	eventDispatcher.Subscribe(event.ActorDied, ws)
	return ws
}

// Wave is the current wave number, 0 when none is running.
func (s *WaveSystem) Wave() int { return s.wave }

// ActiveEnemies is the live population of the current wave.
func (s *WaveSystem) ActiveEnemies() int { return s.activeEnemies }

// Start begins wave mode from the hub.
func (s *WaveSystem) Start() error {
	if !s.sm.CanTransition(state.Playing) || s.sm.Current() != state.Hub {
		return fmt.Errorf("%w: start waves from %s", state.ErrInvalidTransition, s.sm.Current())
	}
	s.Abort()
	run := component.NewRun(component.ModeWaves, s.now())
	s.ecs.Run = run
	s.log.Info("wave mode %s started", run.ID)
	s.eventDispatcher.Emit(event.RunStarted, event.RunStartedData{RunID: run.ID, Mode: run.Mode})
	if err := s.sm.SetState(state.Playing); err != nil {
		return err
	}
	return s.StartWave(1)
}

// StartWave spawns the composition of wave n.
func (s *WaveSystem) StartWave(waveNumber int) error {
	def, ok := s.lib.Wave(waveNumber)
	if !ok {
		return fmt.Errorf("%w: wave %d", ErrUnknownType, waveNumber)
	}
	s.wave = waveNumber
	s.activeEnemies = 0
	s.ecs.Run.Level = waveNumber
	s.eventDispatcher.Emit(event.WaveStarted, event.WaveData{Wave: waveNumber, Composition: Composition(def.Squads)})
	if _, err := s.spawner.SpawnSquads(def.Squads, waveNumber); err != nil {
		return err
	}
	s.log.Info("wave %d started with %d robots", waveNumber, s.activeEnemies)
	return nil
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if s.wave == 0 {
		return
	}
	switch e.Type {
	case event.ActorSpawned:
		if data, ok := e.Data.(event.ActorSpawnedData); ok && !data.Boss && data.Level == s.wave {
			s.activeEnemies++
		}
	case event.ActorDied:
		if data, ok := e.Data.(event.ActorDiedData); ok && data.Level == s.wave && s.activeEnemies > 0 {
			s.activeEnemies--
		}
	}
}

// CheckCompletion moves on once the current wave is cleared.
func (s *WaveSystem) CheckCompletion() {
	if s.sm.Current() != state.Playing || s.wave == 0 || s.activeEnemies > 0 {
		return
	}
	done := s.wave
	s.wave = 0
	s.eventDispatcher.Emit(event.WaveCompleted, event.WaveData{Wave: done})
	s.log.Info("wave %d cleared", done)

	if done >= len(s.lib.Waves) {
		s.finish(true)
		return
	}
	if err := s.sm.SetState(state.WaveTransition); err != nil {
		s.log.Error("wave transition: %v", err)
		return
	}
	s.tick(done+1, config.WaveCountdown)
}

func (s *WaveSystem) tick(next, remaining int) {
	if remaining <= 0 {
		s.countdown = 0
		if err := s.sm.SetState(state.Playing); err != nil {
			s.log.Error("next wave: %v", err)
			return
		}
		if err := s.StartWave(next); err != nil {
			s.log.Error("next wave: %v", err)
		}
		return
	}
	s.eventDispatcher.Emit(event.WaveCountdown, event.WaveCountdownData{NextWave: next, Remaining: remaining})
	s.countdown = s.sched.After(1, "wave-countdown", func() { s.tick(next, remaining-1) })
}

// Fail ends wave mode in defeat.
func (s *WaveSystem) Fail() error {
	if !s.sm.Current().InWaves() {
		return fmt.Errorf("%w: defeat from %s", state.ErrInvalidTransition, s.sm.Current())
	}
	s.finish(false)
	return nil
}

func (s *WaveSystem) finish(victory bool) {
	s.Abort()
	target, evt := state.Defeat, event.Defeat
	if victory {
		target, evt = state.Victory, event.Victory
	}
	if err := s.sm.SetState(target); err != nil {
		s.log.Error("finish waves: %v", err)
		return
	}
	run := s.ecs.Run
	run.Finished = true
	run.Success = victory
	s.eventDispatcher.Emit(evt, event.RunEndedData{Summary: run.Summarize()})
}

// Abort stops counting and cancels the countdown.
func (s *WaveSystem) Abort() {
	if s.countdown != 0 {
		s.sched.Cancel(s.countdown)
		s.countdown = 0
	}
	s.wave = 0
	s.activeEnemies = 0
}

// Update accumulates session time while a wave is being fought.
func (s *WaveSystem) Update(deltaTime float64) {
	if run := s.ecs.Run; run != nil && !run.Finished && run.Mode == component.ModeWaves {
		run.Elapsed += deltaTime
	}
}

// SetClock replaces the wall clock used to stamp session start times.
func (s *WaveSystem) SetClock(now func() time.Time) { s.now = now }
