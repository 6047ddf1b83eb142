// internal/component/player.go
package component

import (
	"go-fps-factory/internal/defs"
	"go-fps-factory/pkg/utils"
)

// PlayerState holds everything specific to the player avatar.
type PlayerState struct {
	Position     utils.Vec3
	Yaw, Pitch   float64
	HP           int
	MaxHP        int
	Weapon       defs.WeaponType
	FireCooldown float64
	Dead         bool
}

// NewPlayerState returns a player at the arena origin with full health.
func NewPlayerState(maxHP int) *PlayerState {
	return &PlayerState{
		Position: utils.V3(0, 0, 0),
		HP:       maxHP,
		MaxHP:    maxHP,
		Weapon:   defs.WeaponKinetic,
	}
}

// Forward is the unit view direction derived from yaw and pitch.
func (p *PlayerState) Forward() utils.Vec3 {
	return utils.FromAngles(p.Yaw, p.Pitch)
}
