// internal/state/machine.go
package state

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for any move the transition table does
// not allow. The machine stays in its current phase.
var ErrInvalidTransition = errors.New("invalid state transition")

var transitions = map[Phase][]Phase{
	MainMenu:        {Hub},
	Hub:             {Level1, Playing, MainMenu},
	Level1:          {LevelTransition, Paused, RunFailed},
	Level2:          {LevelTransition, Paused, RunFailed},
	Level3:          {LevelTransition, Paused, RunFailed},
	LevelTransition: {Level2, Level3, BossIntro, RunFailed, Hub},
	BossIntro:       {BossFight, Paused, RunFailed},
	BossFight:       {RunSuccess, Paused, RunFailed},
	RunSuccess:      {Hub},
	RunFailed:       {Hub},
	Paused:          {Hub, MainMenu},
	Playing:         {WaveTransition, Victory, Defeat, Paused},
	WaveTransition:  {Playing, Defeat, Hub},
	Victory:         {Hub},
	Defeat:          {Hub},
}

// Hook runs on a phase change. from is the phase being left.
type Hook func(from, to Phase)

// StateMachine tracks the single active phase of a play session.
type StateMachine struct {
	current     Phase
	interrupted Phase // phase Paused returns to
	lastCleared int   // level most recently completed in the current run
	onEnter     map[Phase][]Hook
	onExit      map[Phase][]Hook
	onChange    []Hook
}

// NewStateMachine starts in MainMenu.
func NewStateMachine() *StateMachine {
	return &StateMachine{
		current: MainMenu,
		onEnter: make(map[Phase][]Hook),
		onExit:  make(map[Phase][]Hook),
	}
}

func (sm *StateMachine) Current() Phase { return sm.current }

// TimeScale is the simulation speed of the current phase.
func (sm *StateMachine) TimeScale() float64 { return sm.current.TimeScale() }

// Interrupted returns the phase Resume would go back to.
func (sm *StateMachine) Interrupted() (Phase, bool) {
	if sm.current != Paused {
		return MainMenu, false
	}
	return sm.interrupted, true
}

// LastCleared is the last level completed in the current run.
func (sm *StateMachine) LastCleared() int { return sm.lastCleared }

// OnEnter registers a hook for entering p.
func (sm *StateMachine) OnEnter(p Phase, h Hook) { sm.onEnter[p] = append(sm.onEnter[p], h) }

// OnExit registers a hook for leaving p.
func (sm *StateMachine) OnExit(p Phase, h Hook) { sm.onExit[p] = append(sm.onExit[p], h) }

// OnChange registers a hook for every phase change.
func (sm *StateMachine) OnChange(h Hook) { sm.onChange = append(sm.onChange, h) }

// CanTransition reports whether SetState(to) would succeed.
func (sm *StateMachine) CanTransition(to Phase) bool {
	return sm.check(to) == nil
}

func (sm *StateMachine) check(to Phase) error {
	from := sm.current
	if from == Paused && to == sm.interrupted {
		return nil
	}
	allowed := false
	for _, p := range transitions[from] {
		if p == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	if from == LevelTransition {
		switch {
		case to.IsLevel() && to.LevelNumber() != sm.lastCleared+1:
			return fmt.Errorf("%w: %s -> %s after level %d", ErrInvalidTransition, from, to, sm.lastCleared)
		case to == BossIntro && sm.lastCleared != 3:
			return fmt.Errorf("%w: boss before level 3 is cleared", ErrInvalidTransition)
		}
	}
	return nil
}

// SetState moves to the given phase, running exit hooks of the old phase
// and enter hooks of the new one.
func (sm *StateMachine) SetState(to Phase) error {
	if err := sm.check(to); err != nil {
		return err
	}
	from := sm.current

	switch {
	case to == Paused:
		sm.interrupted = from
	case from.IsLevel() && to == LevelTransition:
		sm.lastCleared = from.LevelNumber()
	case to == Level1 || to == Hub || to == MainMenu || to == Playing && from == Hub:
		sm.lastCleared = 0
	}

	for _, h := range sm.onExit[from] {
		h(from, to)
	}
	sm.current = to
	for _, h := range sm.onEnter[to] {
		h(from, to)
	}
	for _, h := range sm.onChange {
		h(from, to)
	}
	return nil
}

// Pause interrupts the current combat phase.
func (sm *StateMachine) Pause() error {
	return sm.SetState(Paused)
}

// Resume returns to the phase Pause interrupted.
func (sm *StateMachine) Resume() error {
	if sm.current != Paused {
		return fmt.Errorf("%w: resume while %s", ErrInvalidTransition, sm.current)
	}
	return sm.SetState(sm.interrupted)
}
