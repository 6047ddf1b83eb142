// internal/component/combat.go
package component

import (
	"go-fps-factory/internal/defs"
	"go-fps-factory/pkg/utils"
)

// Health is the body hit-point pool of an actor.
type Health struct {
	Value float64
	Max   float64
}

// Fraction returns Value/Max, or 0 for an empty pool.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Shield absorbs damage until it breaks. Broken never goes back to false.
type Shield struct {
	HP         float64
	Max        float64
	Resistance defs.Multipliers
	Broken     bool
}

// Intact reports whether the shield still routes damage.
func (s *Shield) Intact() bool {
	return s != nil && !s.Broken
}

// WeakSpot is the critical-hit sphere, offset from the actor position.
type WeakSpot struct {
	Offset      utils.Vec3
	Radius      float64
	Multipliers defs.Multipliers
}

// DamageEvent is one hit as produced by the attack resolver.
type DamageEvent struct {
	Amount   float64
	Weapon   defs.WeaponType
	Critical bool
}

// DamageOutcome reports what a hit did.
type DamageOutcome struct {
	Amount       float64 // damage actually removed from shield or body
	ToShield     bool
	Effective    bool
	Critical     bool
	ShieldBroken bool
	Killed       bool
}
