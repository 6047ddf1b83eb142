// internal/system/ore.go
package system

import (
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/types"
	"go-fps-factory/pkg/logger"
)

// Unlocker records a one-way unlock and reports whether it was new.
type Unlocker interface {
	Unlock(id defs.UnlockID) bool
}

// OrbSystem pulls resource orbs toward the player and collects them.
type OrbSystem struct {
	ecs        *entity.ECS
	ledger     *Ledger
	unlocks    Unlocker
	dispatcher *event.Dispatcher
	log        *logger.Logger
}

func NewOrbSystem(ecs *entity.ECS, ledger *Ledger, unlocks Unlocker, dispatcher *event.Dispatcher, log *logger.Logger) *OrbSystem {
	s := &OrbSystem{ecs: ecs, ledger: ledger, unlocks: unlocks, dispatcher: dispatcher, log: log}
	dispatcher.Subscribe(event.ActorDied, s)
	return s
}

// OnEvent grants blueprint drops the moment their carrier dies. The orb
// stays in the arena as a marker only.
func (s *OrbSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.ActorDiedData)
	if !ok || e.Type != event.ActorDied {
		return
	}
	for _, d := range data.Loot {
		if d.Unlock != "" {
			s.grant(d.Unlock)
		}
	}
}

func (s *OrbSystem) grant(id defs.UnlockID) {
	if s.unlocks == nil || !s.unlocks.Unlock(id) {
		return
	}
	s.log.Info("unlocked %s", id)
	s.dispatcher.Emit(event.UnlockAcquired, event.UnlockData{ID: id})
	s.ledger.RecheckAutoConvert()
}

// Update moves orbs inside the attraction radius toward the player. Resource
// orbs left lying for OrbLifetime seconds disappear; blueprints stay.
func (s *OrbSystem) Update(deltaTime float64) {
	player := s.ecs.Player.Position
	for _, id := range s.ecs.OrbIDs() {
		orb := s.ecs.Orbs[id]
		orb.Age += deltaTime
		if orb.Unlock == "" && orb.Age >= config.OrbLifetime {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		to := player.Sub(pos.Vec3).Flat()
		dist := to.Len()
		if dist >= config.OrbAttractRadius {
			orb.Attracted = false
			continue
		}
		orb.Attracted = true
		step := config.OrbAttractSpeed * deltaTime
		if step > dist {
			step = dist
		}
		pos.Vec3 = pos.Vec3.Add(to.Normalize().Scale(step))
	}
}

// Collect picks up every orb within the collection radius and returns the ids taken.
func (s *OrbSystem) Collect() []types.EntityID {
	player := s.ecs.Player.Position
	var taken []types.EntityID
	for _, id := range s.ecs.OrbIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok || player.Sub(pos.Vec3).Flat().Len() >= config.OrbCollectRadius {
			continue
		}
		s.pickUp(id)
		taken = append(taken, id)
	}
	return taken
}

func (s *OrbSystem) pickUp(id types.EntityID) {
	orb := s.ecs.Orbs[id]
	s.ecs.RemoveEntity(id)

	if orb.Unlock != "" {
		s.grant(orb.Unlock)
	} else {
		if err := s.ledger.Collect(orb.Resource, orb.Amount); err != nil {
			s.log.Warn("orb %d: %v", id, err)
			return
		}
		if run := s.ecs.Run; run != nil {
			run.Stats.ResourcesCollected[orb.Resource] += orb.Amount
		}
	}
	s.dispatcher.Emit(event.OrbCollected, event.OrbCollectedData{ID: id, Resource: orb.Resource, Amount: orb.Amount, Unlock: orb.Unlock})
}
