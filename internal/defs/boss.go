package defs

// BossPhase switches boss behaviour once its HP fraction drops to HPFraction or below.
type BossPhase struct {
	Name              string  `json:"name"`
	HPFraction        float64 `json:"hp_fraction"`
	SpeedMultiplier   float64 `json:"speed_multiplier"`
	ContactMultiplier float64 `json:"contact_multiplier"`
}

// BossDefinition extends the enemy data with drops that are never rolled.
type BossDefinition struct {
	EnemyDefinition
	Guaranteed UnlockID      `json:"guaranteed"`
	Rewards    []RewardEntry `json:"rewards"`
	Phases     []BossPhase   `json:"phases"`
}

const BossFluxWarden = "flux_warden"

func defaultBosses() map[string]BossDefinition {
	return map[string]BossDefinition{
		BossFluxWarden: {
			EnemyDefinition: EnemyDefinition{
				ID:            BossFluxWarden,
				Name:          "FLUX WARDEN",
				HP:            500,
				Speed:         1.5,
				Radius:        2.5,
				ContactDamage: 20,
				Weaknesses:    Multipliers{WeaponKinetic: 1.0, WeaponFlux: 0.5, WeaponThermal: 0.8},
				Shield: &ShieldDefinition{
					HP:         200,
					Resistance: Multipliers{WeaponKinetic: 0.1, WeaponFlux: 1.0, WeaponThermal: 0.5},
				},
				WeakSpot: &WeakSpotDefinition{
					Radius:      0.6,
					Multipliers: Multipliers{WeaponKinetic: 1.5, WeaponThermal: 1.25},
				},
			},
			Guaranteed: UnlockThermalPanel,
			Rewards: []RewardEntry{
				{Resource: ResourceMetal, Amount: 20, Count: 5},
				{Resource: ResourceEnergy, Amount: 100, Count: 1},
			},
			Phases: []BossPhase{
				{Name: "guarded", HPFraction: 1.0, SpeedMultiplier: 1.0, ContactMultiplier: 1.0},
				{Name: "enraged", HPFraction: 0.5, SpeedMultiplier: 1.5, ContactMultiplier: 1.5},
			},
		},
	}
}

// PhaseFor returns the index of the deepest phase reached at the given HP fraction.
func (b BossDefinition) PhaseFor(fraction float64) int {
	return PhaseIndex(b.Phases, fraction)
}

// PhaseIndex returns the deepest phase in phases reached at fraction.
func PhaseIndex(phases []BossPhase, fraction float64) int {
	idx := 0
	for i, p := range phases {
		if fraction <= p.HPFraction {
			idx = i
		}
	}
	return idx
}
