package system

import (
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/schedule"
	"go-fps-factory/internal/state"
	"go-fps-factory/internal/utils"
	"go-fps-factory/pkg/logger"
)

type fakeUnlocks map[defs.UnlockID]bool

func (f fakeUnlocks) IsUnlocked(id defs.UnlockID) bool { return f[id] }

func (f fakeUnlocks) Unlock(id defs.UnlockID) bool {
	if f[id] {
		return false
	}
	f[id] = true
	return true
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type harness struct {
	lib        *defs.Library
	rules      config.Rules
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	sm         *state.StateMachine
	sched      *schedule.Scheduler
	unlocks    fakeUnlocks
	ledger     *Ledger
	spawner    *Spawner
	lifecycle  *LifecycleSystem
	combat     *CombatSystem
	movement   *MovementSystem
	orbs       *OrbSystem
	player     *PlayerSystem
	attack     *AttackSystem
	log        *eventLog
	zeroCalls  int
}

func newHarness(rules config.Rules) *harness {
	h := &harness{
		lib:        defs.DefaultLibrary(),
		rules:      rules,
		ecs:        entity.NewECS(rules.PlayerMaxHP),
		dispatcher: event.NewDispatcher(),
		sm:         state.NewStateMachine(),
		sched:      schedule.New(),
		unlocks:    fakeUnlocks{},
		log:        &eventLog{},
	}
	h.dispatcher.SubscribeAll(h.log)
	discard := logger.Discard()
	prng := utils.NewPRNGService(7)
	h.ledger = NewLedger(h.lib, h.unlocks, rules.AutoConvert, h.dispatcher, discard)
	h.spawner = NewSpawner(h.ecs, h.lib, prng, h.dispatcher, discard)
	h.lifecycle = NewLifecycleSystem(h.ecs, prng, h.dispatcher, discard)
	h.combat = NewCombatSystem(h.ecs, NewDamageTable(rules), h.lifecycle, h.dispatcher, discard)
	h.movement = NewMovementSystem(h.ecs, h.dispatcher, discard)
	h.orbs = NewOrbSystem(h.ecs, h.ledger, h.unlocks, h.dispatcher, discard)
	h.player = NewPlayerSystem(h.ecs, h.dispatcher, discard, func() { h.zeroCalls++ })
	h.attack = NewAttackSystem(h.ecs, h.combat, h.player, h.dispatcher)
	return h
}

func defaultHarness() *harness { return newHarness(config.DefaultRules()) }
