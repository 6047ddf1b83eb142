// internal/defs/enemies.go
package defs

import "go-fps-factory/pkg/utils"

// ShieldDefinition configures a breakable damage-absorbing layer.
type ShieldDefinition struct {
	HP         float64     `json:"hp"`
	Resistance Multipliers `json:"resistance"`
}

// WeakSpotDefinition configures the critical-hit zone relative to the actor origin.
type WeakSpotDefinition struct {
	Offset      utils.Vec3  `json:"offset"`
	Radius      float64     `json:"radius"`
	Multipliers Multipliers `json:"multipliers"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	HP            float64             `json:"hp"`
	Speed         float64             `json:"speed"`
	Radius        float64             `json:"radius"`
	ContactDamage int                 `json:"contact_damage"`
	Weaknesses    Multipliers         `json:"weaknesses"`
	Shield        *ShieldDefinition   `json:"shield,omitempty"`
	WeakSpot      *WeakSpotDefinition `json:"weak_spot,omitempty"`
	Drops         []LootEntry         `json:"drops"`
}

const (
	EnemyStandard = "standard"
	EnemyShielded = "shielded"
	EnemyHeavy    = "heavy"
)

func defaultEnemies() map[string]EnemyDefinition {
	return map[string]EnemyDefinition{
		EnemyStandard: {
			ID:            EnemyStandard,
			Name:          "Standard Robot",
			HP:            100,
			Speed:         2.0,
			Radius:        1.0,
			ContactDamage: 25,
			Weaknesses:    Multipliers{WeaponKinetic: 1.0, WeaponFlux: 1.5},
			WeakSpot: &WeakSpotDefinition{
				Offset:      utils.V3(0, 0, 0),
				Radius:      0.4,
				Multipliers: Multipliers{WeaponKinetic: 2.0, WeaponFlux: 1.5},
			},
			Drops: []LootEntry{{Resource: ResourceMetal, Amount: 10, Chance: 1.0}},
		},
		EnemyShielded: {
			ID:            EnemyShielded,
			Name:          "Shielded Robot",
			HP:            150,
			Speed:         1.5,
			Radius:        1.0,
			ContactDamage: 30,
			Weaknesses:    Multipliers{WeaponKinetic: 0.5, WeaponFlux: 1.0},
			Shield: &ShieldDefinition{
				HP:         100,
				Resistance: Multipliers{WeaponKinetic: 0.1, WeaponFlux: 1.0, WeaponThermal: 0.5},
			},
			WeakSpot: &WeakSpotDefinition{
				Offset:      utils.V3(0, 0, 0),
				Radius:      0.4,
				Multipliers: Multipliers{WeaponKinetic: 2.0},
			},
			Drops: []LootEntry{{Resource: ResourceEnergy, Amount: 10, Chance: 1.0}},
		},
		EnemyHeavy: {
			ID:            EnemyHeavy,
			Name:          "Heavy Robot",
			HP:            300,
			Speed:         1.0,
			Radius:        1.4,
			ContactDamage: 50,
			Weaknesses:    Multipliers{WeaponKinetic: 0.7, WeaponFlux: 1.2, WeaponThermal: 1.5},
			WeakSpot: &WeakSpotDefinition{
				Offset:      utils.V3(0, 0.5, 0),
				Radius:      0.6,
				Multipliers: Multipliers{WeaponKinetic: 1.5, WeaponThermal: 2.0},
			},
			Drops: []LootEntry{
				{Resource: ResourceMetal, Amount: 20, Chance: 1.0},
				{Resource: ResourceThermalCore, Amount: 1, Chance: 0.3},
			},
		},
	}
}
