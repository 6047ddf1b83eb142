// internal/system/combat.go
package system

import (
	"fmt"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/types"
	"go-fps-factory/pkg/logger"
)

// CombatSystem applies damage events to actors and hands the dead over to
// the lifecycle system.
type CombatSystem struct {
	ecs        *entity.ECS
	table      *DamageTable
	lifecycle  *LifecycleSystem
	dispatcher *event.Dispatcher
	log        *logger.Logger
}

func NewCombatSystem(ecs *entity.ECS, table *DamageTable, lifecycle *LifecycleSystem, dispatcher *event.Dispatcher, log *logger.Logger) *CombatSystem {
	return &CombatSystem{
		ecs:        ecs,
		table:      table,
		lifecycle:  lifecycle,
		dispatcher: dispatcher,
		log:        log,
	}
}

// ApplyDamage resolves ev against actor id. Hits on dead actors are ignored.
// An id that was never spawned is a programming error.
func (s *CombatSystem) ApplyDamage(id types.EntityID, ev component.DamageEvent) component.DamageOutcome {
	a, ok := s.ecs.Actors[id]
	if !ok {
		panic(fmt.Sprintf("combat: damage applied to unknown actor %d", id))
	}
	if a.Dead {
		return component.DamageOutcome{}
	}

	out := s.table.Resolve(a, ev)
	if out.Amount <= 0 {
		return out
	}

	if out.ToShield {
		a.Shield.HP -= out.Amount
		if a.Shield.HP <= 0 {
			a.Shield.HP = 0
			a.Shield.Broken = true
			out.ShieldBroken = true
		}
	} else {
		a.Health.Value -= out.Amount
		if a.Health.Value <= 0 {
			a.Health.Value = 0
			out.Killed = true
		}
	}
	checkActorInvariants(id, a)

	s.ecs.DamageFlashes[id] = &component.DamageFlash{Timer: 0.15, Duration: 0.15, Critical: out.Critical}

	s.dispatcher.Emit(event.ActorDamaged, event.ActorDamagedData{
		ID:      id,
		DefID:   a.DefID,
		Weapon:  ev.Weapon,
		Outcome: out,
		HP:      a.Health.Value,
		Shield:  shieldHP(a),
	})
	if out.ShieldBroken {
		s.log.Debug("shield broken on %s #%d", a.DefID, id)
		s.dispatcher.Emit(event.ShieldBroken, event.ShieldBrokenData{ID: id, DefID: a.DefID})
	}
	if out.Killed {
		s.lifecycle.Die(id)
	}
	return out
}

func shieldHP(a *component.Actor) float64 {
	if a.Shield == nil {
		return 0
	}
	return a.Shield.HP
}

func checkActorInvariants(id types.EntityID, a *component.Actor) {
	if a.Health.Value < 0 {
		panic(fmt.Sprintf("combat: actor %d persisted negative hp %v", id, a.Health.Value))
	}
	if a.Shield != nil && a.Shield.HP < 0 {
		panic(fmt.Sprintf("combat: actor %d persisted negative shield %v", id, a.Shield.HP))
	}
	if a.Shield != nil && a.Shield.Broken && a.Shield.HP > 0 {
		panic(fmt.Sprintf("combat: actor %d has a broken shield with %v hp", id, a.Shield.HP))
	}
}
