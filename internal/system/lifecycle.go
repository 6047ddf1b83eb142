// internal/system/lifecycle.go
package system

import (
	"fmt"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/types"
	"go-fps-factory/internal/utils"
	"go-fps-factory/pkg/logger"
	vec "go-fps-factory/pkg/utils"
)

// LifecycleSystem marks actors dead, rolls their loot and later turns the
// drops into orbs and removes the corpses.
type LifecycleSystem struct {
	ecs        *entity.ECS
	prng       *utils.PRNGService
	dispatcher *event.Dispatcher
	log        *logger.Logger
	pending    []event.LootDrop
}

func NewLifecycleSystem(ecs *entity.ECS, prng *utils.PRNGService, dispatcher *event.Dispatcher, log *logger.Logger) *LifecycleSystem {
	return &LifecycleSystem{ecs: ecs, prng: prng, dispatcher: dispatcher, log: log}
}

// Die kills actor id and returns its loot. A second call returns nil.
func (s *LifecycleSystem) Die(id types.EntityID) []event.LootDrop {
	a, ok := s.ecs.Actors[id]
	if !ok {
		panic(fmt.Sprintf("lifecycle: die called for unknown actor %d", id))
	}
	if a.LootDropped {
		return nil
	}
	a.Dead = true
	a.LootDropped = true
	a.Health.Value = 0

	var at vec.Vec3
	if p, ok := s.ecs.Positions[id]; ok {
		at = p.Vec3
	}
	loot := s.RollLoot(a, at)
	s.pending = append(s.pending, loot...)

	s.log.Debug("%s #%d died, %d drops", a.DefID, id, len(loot))
	s.dispatcher.Emit(event.ActorDied, event.ActorDiedData{ID: id, DefID: a.DefID, Level: a.Level, Boss: a.IsBoss(), Loot: loot})
	return loot
}

// RollLoot builds the drop list for a dead actor. Regular entries are
// rolled independently against their chance. Bosses add their guaranteed
// unlock and every reward entry without rolling.
func (s *LifecycleSystem) RollLoot(a *component.Actor, at vec.Vec3) []event.LootDrop {
	var drops []event.LootDrop
	for _, entry := range a.Loot {
		if !s.prng.Roll(entry.Chance) {
			continue
		}
		drops = append(drops, event.LootDrop{
			Resource: entry.Resource,
			Amount:   entry.Amount,
			Position: s.prng.Scatter(at, config.LootScatter),
		})
	}
	if !a.IsBoss() {
		return drops
	}
	if a.Guaranteed != "" {
		drops = append(drops, event.LootDrop{Unlock: a.Guaranteed, Position: at})
	}
	for _, r := range a.Rewards {
		for i := 0; i < r.Count; i++ {
			drops = append(drops, event.LootDrop{
				Resource: r.Resource,
				Amount:   r.Amount,
				Position: s.prng.Scatter(at, config.LootScatter*3),
			})
		}
	}
	return drops
}

// Flush spawns orbs for every drop queued since the last call and removes
// dead actors from the arena.
func (s *LifecycleSystem) Flush() []types.EntityID {
	var orbs []types.EntityID
	for _, d := range s.pending {
		id := s.ecs.NewEntity()
		s.ecs.Orbs[id] = &component.Orb{Resource: d.Resource, Amount: d.Amount, Unlock: d.Unlock}
		s.ecs.Positions[id] = &component.Position{Vec3: d.Position}
		orbs = append(orbs, id)
	}
	s.pending = s.pending[:0]

	for _, id := range s.ecs.ActorIDs() {
		if s.ecs.Actors[id].Dead {
			s.ecs.RemoveEntity(id)
		}
	}
	return orbs
}

// Discard drops queued loot without spawning it.
func (s *LifecycleSystem) Discard() {
	s.pending = s.pending[:0]
}
