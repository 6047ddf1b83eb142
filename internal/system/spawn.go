// internal/system/spawn.go
package system

import (
	"fmt"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/types"
	"go-fps-factory/internal/utils"
	"go-fps-factory/pkg/logger"
	vec "go-fps-factory/pkg/utils"
)

// Spawner creates actors from library definitions.
type Spawner struct {
	ecs        *entity.ECS
	lib        *defs.Library
	prng       *utils.PRNGService
	dispatcher *event.Dispatcher
	log        *logger.Logger
}

func NewSpawner(ecs *entity.ECS, lib *defs.Library, prng *utils.PRNGService, dispatcher *event.Dispatcher, log *logger.Logger) *Spawner {
	return &Spawner{ecs: ecs, lib: lib, prng: prng, dispatcher: dispatcher, log: log}
}

// SpawnEnemy places a robot of enemyType on the spawn ring, tagged with level.
func (s *Spawner) SpawnEnemy(enemyType string, level int) (types.EntityID, error) {
	pos := s.prng.OnRing(vec.V3(0, 0, 0), config.SpawnRingRadius, config.SpawnRingJitter)
	return s.SpawnEnemyAt(enemyType, level, pos)
}

// SpawnEnemyAt places a robot at an explicit position.
func (s *Spawner) SpawnEnemyAt(enemyType string, level int, pos vec.Vec3) (types.EntityID, error) {
	def, ok := s.lib.Enemies[enemyType]
	if !ok {
		return 0, fmt.Errorf("%w: enemy %q", ErrUnknownType, enemyType)
	}
	pos.Y = def.Radius
	id := s.ecs.NewEntity()
	s.ecs.Actors[id] = component.NewActor(def, level)
	s.ecs.Positions[id] = &component.Position{Vec3: pos}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.dispatcher.Emit(event.ActorSpawned, event.ActorSpawnedData{ID: id, DefID: def.ID, Level: level, Position: pos})
	return id, nil
}

// SpawnSquads spawns every robot of a level or wave composition.
func (s *Spawner) SpawnSquads(squads []defs.Squad, level int) (int, error) {
	n := 0
	for _, sq := range squads {
		for i := 0; i < sq.Count; i++ {
			if _, err := s.SpawnEnemy(sq.Enemy, level); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// SpawnBoss places the boss bossID at pos.
func (s *Spawner) SpawnBoss(bossID string, pos vec.Vec3) (types.EntityID, error) {
	def, ok := s.lib.Bosses[bossID]
	if !ok {
		return 0, fmt.Errorf("%w: boss %q", ErrUnknownType, bossID)
	}
	id := s.ecs.NewEntity()
	s.ecs.Actors[id] = component.NewBoss(def)
	s.ecs.Positions[id] = &component.Position{Vec3: pos}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.log.Info("boss %s spawned at (%.0f, %.0f, %.0f)", def.Name, pos.X, pos.Y, pos.Z)
	s.dispatcher.Emit(event.ActorSpawned, event.ActorSpawnedData{ID: id, DefID: def.ID, Boss: true, Position: pos})
	s.dispatcher.Emit(event.BossSpawned, event.ActorSpawnedData{ID: id, DefID: def.ID, Boss: true, Position: pos})
	return id, nil
}

// Composition counts robots per type in a squad list.
func Composition(squads []defs.Squad) map[string]int {
	out := make(map[string]int, len(squads))
	for _, sq := range squads {
		out[sq.Enemy] += sq.Count
	}
	return out
}
