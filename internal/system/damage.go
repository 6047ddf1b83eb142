// internal/system/damage.go
package system

import (
	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
)

// ResolveDamage applies the weakness and, for critical hits, the weak-spot
// multiplier to base. A weapon without a crit entry gets no crit bonus.
// effective is true when the weakness multiplier is at least 1.
func ResolveDamage(base float64, weapon defs.WeaponType, weakness defs.Multipliers, isCritical bool, crit defs.Multipliers) (float64, bool) {
	if base <= 0 {
		return 0, false
	}
	w := weakness.Get(weapon)
	dmg := base * w
	if isCritical {
		if c, ok := crit.Lookup(weapon); ok {
			dmg *= c
		}
	}
	return dmg, w >= 1.0
}

// DamageTable turns a hit into the amount and destination of damage for a
// given actor state. It does not mutate the actor.
type DamageTable struct {
	postBreak            config.PostBreakPolicy
	postBreakMultipliers defs.Multipliers
}

func NewDamageTable(rules config.Rules) *DamageTable {
	return &DamageTable{
		postBreak:            rules.PostBreak,
		postBreakMultipliers: rules.PostBreakMultipliers.Clone(),
	}
}

// Resolve computes the outcome of ev against a. While a shield is intact the
// hit goes to the shield, scaled by its resistance, and cannot crit.
func (t *DamageTable) Resolve(a *component.Actor, ev component.DamageEvent) component.DamageOutcome {
	if ev.Amount <= 0 {
		return component.DamageOutcome{}
	}
	if a.HasShield() {
		res := a.Shield.Resistance.Get(ev.Weapon)
		return component.DamageOutcome{
			Amount:    ev.Amount * res,
			ToShield:  true,
			Effective: res >= 1.0,
		}
	}

	var crit defs.Multipliers
	if a.WeakSpot != nil {
		crit = a.WeakSpot.Multipliers
	}
	dmg, effective := ResolveDamage(ev.Amount, ev.Weapon, t.WeaknessFor(a), ev.Critical, crit)
	_, hasCrit := crit.Lookup(ev.Weapon)
	return component.DamageOutcome{
		Amount:    dmg,
		Effective: effective,
		Critical:  ev.Critical && hasCrit,
	}
}

// WeaknessFor returns the multiplier table that applies to body hits on a.
func (t *DamageTable) WeaknessFor(a *component.Actor) defs.Multipliers {
	if a.Shield != nil && a.Shield.Broken && t.postBreak == config.PostBreakFixedTable {
		return t.postBreakMultipliers
	}
	return a.Weaknesses
}
