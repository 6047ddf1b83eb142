// internal/system/player_system.go
package system

import (
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/event"
	"go-fps-factory/pkg/logger"
	vec "go-fps-factory/pkg/utils"
)

// PlayerSystem owns the player's health, movement and run kill tally.
type PlayerSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	log        *logger.Logger
	onZero     func()
}

// NewPlayerSystem subscribes to deaths for the run kill tally. onZero runs
// once when health reaches zero.
func NewPlayerSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, log *logger.Logger, onZero func()) *PlayerSystem {
	s := &PlayerSystem{ecs: ecs, dispatcher: dispatcher, log: log, onZero: onZero}
	dispatcher.Subscribe(event.ActorDied, s)
	return s
}

func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.ActorDied {
		return
	}
	data, ok := e.Data.(event.ActorDiedData)
	run := s.ecs.Run
	if !ok || run == nil || run.Finished {
		return
	}
	run.Stats.Kills++
	run.Stats.KillsByType[data.DefID]++
}

// Damage removes amount from the player's health.
func (s *PlayerSystem) Damage(amount int, source string) {
	p := s.ecs.Player
	if p.Dead || amount <= 0 {
		return
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	if s.ecs.Run != nil {
		s.ecs.Run.Stats.DamageTaken += amount
	}
	s.dispatcher.Emit(event.PlayerDamaged, event.PlayerDamagedData{Amount: amount, HP: p.HP, Source: source})
	if p.HP == 0 {
		p.Dead = true
		s.log.Info("player killed by %s", source)
		if s.onZero != nil {
			s.onZero()
		}
	}
}

// Reset restores full health at the arena origin.
func (s *PlayerSystem) Reset(maxHP int) {
	p := s.ecs.Player
	p.MaxHP = maxHP
	p.HP = maxHP
	p.Dead = false
	p.Position = vec.V3(0, 0, 0)
	p.Yaw, p.Pitch = 0, 0
	p.FireCooldown = 0
}

// Move walks the player by a view-relative offset: forward along the view
// direction, strafe to the right of it. The result stays inside the arena.
func (s *PlayerSystem) Move(forward, strafe, deltaTime float64) {
	p := s.ecs.Player
	if p.Dead {
		return
	}
	fwd := vec.FromAngles(p.Yaw, 0)
	right := vec.V3(-fwd.Z, 0, fwd.X)
	step := fwd.Scale(forward).Add(right.Scale(strafe))
	if l := step.Len(); l > 1 {
		step = step.Scale(1 / l)
	}
	p.Position = p.Position.Add(step.Scale(config.PlayerSpeed * deltaTime))
	p.Position.X = vec.Clamp(p.Position.X, -config.ArenaHalfSize, config.ArenaHalfSize)
	p.Position.Z = vec.Clamp(p.Position.Z, -config.ArenaHalfSize, config.ArenaHalfSize)
}

// Look sets the view angles.
func (s *PlayerSystem) Look(yaw, pitch float64) {
	s.ecs.Player.Yaw = yaw
	s.ecs.Player.Pitch = vec.Clamp(pitch, -1.5, 1.5)
}

// Update counts down the weapon cooldown.
func (s *PlayerSystem) Update(deltaTime float64) {
	if p := s.ecs.Player; p.FireCooldown > 0 {
		p.FireCooldown -= deltaTime
	}
}

// Eye is the shot origin.
func (s *PlayerSystem) Eye() vec.Vec3 {
	return s.ecs.Player.Position.Add(vec.V3(0, config.PlayerEyeHeight, 0))
}
