// internal/system/movement.go
package system

import (
	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/types"
	"go-fps-factory/pkg/logger"
	vec "go-fps-factory/pkg/utils"
)

// MovementSystem steers live robots toward the player on the ground plane
// and applies boss phase changes.
type MovementSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	log        *logger.Logger
}

func NewMovementSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, log *logger.Logger) *MovementSystem {
	return &MovementSystem{ecs: ecs, dispatcher: dispatcher, log: log}
}

func (s *MovementSystem) Update(deltaTime float64) {
	target := s.ecs.Player.Position
	for _, id := range s.ecs.ActorIDs() {
		a := s.ecs.Actors[id]
		if a.Dead {
			continue
		}
		if a.IsBoss() {
			s.updateBossPhase(id, a)
		}
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		to := target.Sub(pos.Vec3).Flat()
		dist := to.Len()
		stop := a.Radius + config.EnemyStopDistance
		if dist <= stop {
			vel.Vec3 = vec.Vec3{}
			continue
		}
		step := a.Speed * deltaTime
		if step > dist-stop {
			step = dist - stop
		}
		dir := to.Normalize()
		vel.Vec3 = dir.Scale(a.Speed)
		pos.Vec3 = pos.Vec3.Add(dir.Scale(step))
	}
}

func (s *MovementSystem) updateBossPhase(id types.EntityID, a *component.Actor) {
	if len(a.Phases) == 0 {
		return
	}
	idx := defs.PhaseIndex(a.Phases, a.Health.Fraction())
	if idx <= a.Phase {
		return
	}
	a.Phase = idx
	p := a.Phases[idx]
	a.Speed = a.BaseSpeed * p.SpeedMultiplier
	a.ContactDamage = int(float64(a.BaseContact) * p.ContactMultiplier)
	s.log.Info("boss %s entered phase %s", a.DefID, p.Name)
	s.dispatcher.Emit(event.BossPhaseChanged, event.BossPhaseData{ID: id, Phase: idx, Name: p.Name})
}
