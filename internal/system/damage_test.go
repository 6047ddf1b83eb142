package system

import (
	"math"
	"testing"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
)

func TestResolveDamageCriticalWeakSpot(t *testing.T) {
	weak := defs.Multipliers{defs.WeaponKinetic: 0.5}
	crit := defs.Multipliers{defs.WeaponKinetic: 3}
	dmg, effective := ResolveDamage(20, defs.WeaponKinetic, weak, true, crit)
	if dmg != 30 {
		t.Errorf("Expected 30, got %v", dmg)
	}
	if effective {
		t.Error("Expected a 0.5 weakness to be ineffective")
	}

	dmg, _ = ResolveDamage(20, defs.WeaponFlux, weak, true, crit)
	if dmg != 20 {
		t.Errorf("Expected missing entries to default to 1 and skip crit, got %v", dmg)
	}
}

func TestResolveDamageIsLinear(t *testing.T) {
	weak := defs.Multipliers{defs.WeaponFlux: 1.5}
	crit := defs.Multipliers{defs.WeaponFlux: 2}
	one, _ := ResolveDamage(10, defs.WeaponFlux, weak, true, crit)
	two, _ := ResolveDamage(20, defs.WeaponFlux, weak, true, crit)
	if math.Abs(two-2*one) > 1e-9 {
		t.Errorf("Expected doubling base to double damage, got %v and %v", one, two)
	}
	for _, base := range []float64{0, -5} {
		if dmg, _ := ResolveDamage(base, defs.WeaponFlux, weak, true, crit); dmg != 0 {
			t.Errorf("Expected 0 damage for base %v, got %v", base, dmg)
		}
	}
}

func TestDamageTableRoutesToShield(t *testing.T) {
	table := NewDamageTable(config.DefaultRules())
	a := component.NewActor(defs.DefaultLibrary().Enemies[defs.EnemyShielded], 1)

	out := table.Resolve(a, component.DamageEvent{Amount: 20, Weapon: defs.WeaponKinetic, Critical: true})
	if !out.ToShield || out.Critical {
		t.Errorf("Expected a non-critical shield hit, got %+v", out)
	}
	if math.Abs(out.Amount-2) > 1e-9 {
		t.Errorf("Expected 2 shield damage, got %v", out.Amount)
	}
	if a.Shield.HP != 100 {
		t.Errorf("Expected Resolve to leave the actor alone, got shield %v", a.Shield.HP)
	}
}

func TestDamageTablePostBreakPolicies(t *testing.T) {
	def := defs.DefaultLibrary().Enemies[defs.EnemyShielded]

	fixed := NewDamageTable(config.DefaultRules())
	a := component.NewActor(def, 1)
	a.Shield.Broken = true
	a.Shield.HP = 0
	if out := fixed.Resolve(a, component.DamageEvent{Amount: 20, Weapon: defs.WeaponFlux}); out.Amount != 10 {
		t.Errorf("Expected fixed table flux 0.5 to give 10, got %v", out.Amount)
	}

	rules := config.DefaultRules()
	rules.PostBreak = config.PostBreakBaseWeakness
	base := NewDamageTable(rules)
	if out := base.Resolve(a, component.DamageEvent{Amount: 20, Weapon: defs.WeaponFlux}); out.Amount != 20 {
		t.Errorf("Expected base weakness flux 1.0 to give 20, got %v", out.Amount)
	}
}
