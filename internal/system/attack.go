// internal/system/attack.go
package system

import (
	"math"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/types"
	vec "go-fps-factory/pkg/utils"
)

// Shot is a hitscan ray fired by the player.
type Shot struct {
	Origin vec.Vec3
	Dir    vec.Vec3
	Weapon defs.WeaponType
	Damage float64
}

// Hit describes what a shot struck.
type Hit struct {
	Target   types.EntityID
	Distance float64
	Critical bool
	Outcome  component.DamageOutcome
}

// AttackSystem resolves queued player shots, then robot contact damage.
type AttackSystem struct {
	ecs        *entity.ECS
	combat     *CombatSystem
	player     *PlayerSystem
	dispatcher *event.Dispatcher
	queue      []Shot
}

func NewAttackSystem(ecs *entity.ECS, combat *CombatSystem, player *PlayerSystem, dispatcher *event.Dispatcher) *AttackSystem {
	return &AttackSystem{ecs: ecs, combat: combat, player: player, dispatcher: dispatcher}
}

// QueueShot defers a shot to the attack step of the next tick.
func (s *AttackSystem) QueueShot(shot Shot) {
	shot.Dir = shot.Dir.Normalize()
	s.queue = append(s.queue, shot)
}

// Pending is the number of shots waiting for resolution.
func (s *AttackSystem) Pending() int { return len(s.queue) }

// ClearQueue drops unresolved shots.
func (s *AttackSystem) ClearQueue() { s.queue = s.queue[:0] }

// Update resolves shots first so a robot killed this tick cannot touch the
// player in the same tick.
func (s *AttackSystem) Update(deltaTime float64) []Hit {
	var hits []Hit
	for _, shot := range s.queue {
		if h, ok := s.resolve(shot); ok {
			hits = append(hits, h)
		}
	}
	s.queue = s.queue[:0]
	s.contact(deltaTime)
	return hits
}

// Raycast returns the nearest live actor the ray crosses and whether the
// ray also crosses that actor's weak spot.
func (s *AttackSystem) Raycast(origin, dir vec.Vec3) (types.EntityID, float64, bool, bool) {
	var (
		best     types.EntityID
		bestDist = math.Inf(1)
		crit     bool
	)
	for _, id := range s.ecs.ActorIDs() {
		a := s.ecs.Actors[id]
		pos, ok := s.ecs.Positions[id]
		if a.Dead || !ok {
			continue
		}
		d, hit := vec.RaySphere(origin, dir, pos.Vec3, a.Radius)
		if !hit || d > config.MaxShotRange || d >= bestDist {
			continue
		}
		best, bestDist = id, d
		crit = false
		if a.WeakSpot != nil {
			_, crit = vec.RaySphere(origin, dir, pos.Vec3.Add(a.WeakSpot.Offset), a.WeakSpot.Radius)
		}
	}
	if best == 0 {
		return 0, 0, false, false
	}
	return best, bestDist, crit, true
}

func (s *AttackSystem) resolve(shot Shot) (Hit, bool) {
	id, dist, crit, ok := s.Raycast(shot.Origin, shot.Dir)
	end := shot.Origin.Add(shot.Dir.Scale(config.MaxShotRange))
	if ok {
		end = shot.Origin.Add(shot.Dir.Scale(dist))
	}
	s.ecs.Tracers[s.ecs.NewEntity()] = &component.Tracer{From: shot.Origin, To: end, Timer: 0.08, Duration: 0.08}
	s.dispatcher.Emit(event.ShotFired, event.ShotFiredData{
		Weapon: shot.Weapon, Hit: ok, Target: id, Critical: ok && crit, From: shot.Origin, To: end,
	})
	if !ok {
		return Hit{}, false
	}
	out := s.combat.ApplyDamage(id, component.DamageEvent{Amount: shot.Damage, Weapon: shot.Weapon, Critical: crit})
	return Hit{Target: id, Distance: dist, Critical: out.Critical, Outcome: out}, true
}

func (s *AttackSystem) contact(deltaTime float64) {
	p := s.ecs.Player
	for _, id := range s.ecs.ActorIDs() {
		a := s.ecs.Actors[id]
		if a.Dead {
			continue
		}
		if a.ContactCooldown > 0 {
			a.ContactCooldown -= deltaTime
		}
		pos, ok := s.ecs.Positions[id]
		if !ok || p.Dead {
			continue
		}
		reach := a.Radius + config.EnemyStopDistance + 0.1
		if p.Position.Sub(pos.Vec3).Flat().Len() > reach || a.ContactCooldown > 0 {
			continue
		}
		a.ContactCooldown = config.ContactCooldown
		s.player.Damage(a.ContactDamage, a.DefID)
	}
}

// UpdateEffects ages damage flashes and tracers.
func (s *AttackSystem) UpdateEffects(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
	for id, tr := range s.ecs.Tracers {
		tr.Timer -= deltaTime
		if tr.Timer <= 0 {
			delete(s.ecs.Tracers, id)
		}
	}
}
