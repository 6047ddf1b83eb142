// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/types"
)

// ECS owns every actor and orb in the arena. Systems receive it explicitly.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Actors        map[types.EntityID]*component.Actor
	Orbs          map[types.EntityID]*component.Orb
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Tracers       map[types.EntityID]*component.Tracer
	Player        *component.PlayerState
	Run           *component.Run
}

func NewECS(playerMaxHP int) *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Actors:        make(map[types.EntityID]*component.Actor),
		Orbs:          make(map[types.EntityID]*component.Orb),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Tracers:       make(map[types.EntityID]*component.Tracer),
		Player:        component.NewPlayerState(playerMaxHP),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops id from every component map.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Actors, id)
	delete(ecs.Orbs, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Tracers, id)
}

// ClearActors removes every robot and boss, dead or alive.
func (ecs *ECS) ClearActors() {
	for id := range ecs.Actors {
		ecs.RemoveEntity(id)
	}
}

// ClearOrbs removes every pickup left in the arena.
func (ecs *ECS) ClearOrbs() {
	for id := range ecs.Orbs {
		ecs.RemoveEntity(id)
	}
}

// ActorIDs returns actor ids in ascending order so iteration is deterministic.
func (ecs *ECS) ActorIDs() []types.EntityID {
	return sortedKeys(ecs.Actors)
}

// OrbIDs returns orb ids in ascending order.
func (ecs *ECS) OrbIDs() []types.EntityID {
	return sortedKeys(ecs.Orbs)
}

// LiveActors counts actors that are not dead.
func (ecs *ECS) LiveActors() int {
	n := 0
	for _, a := range ecs.Actors {
		if a.IsAlive() {
			n++
		}
	}
	return n
}

// Boss returns the live boss, if any.
func (ecs *ECS) Boss() (types.EntityID, *component.Actor, bool) {
	for _, id := range ecs.ActorIDs() {
		a := ecs.Actors[id]
		if a.IsBoss() && a.IsAlive() {
			return id, a, true
		}
	}
	return 0, nil, false
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
