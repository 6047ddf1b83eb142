// internal/defs/types.go
package defs

import "fmt"

// WeaponType identifies an ammunition family and the damage it deals.
type WeaponType string

const (
	WeaponKinetic WeaponType = "kinetic"
	WeaponFlux    WeaponType = "flux"
	WeaponThermal WeaponType = "thermal"
)

// AllWeapons lists weapon types in slot order (keys 1, 2, 3).
var AllWeapons = []WeaponType{WeaponKinetic, WeaponFlux, WeaponThermal}

// ResourceType identifies a raw material dropped by robots.
type ResourceType string

const (
	ResourceMetal       ResourceType = "metal"
	ResourceEnergy      ResourceType = "energy"
	ResourceThermalCore ResourceType = "thermal_core"
)

// AllResources lists resource types in display order.
var AllResources = []ResourceType{ResourceMetal, ResourceEnergy, ResourceThermalCore}

// UnlockID is the key of a persisted one-way unlock flag.
type UnlockID string

const (
	UnlockThermalPanel UnlockID = "thermal_panel_blueprint"
)

// Tier separates regular robots from bosses.
type Tier string

const (
	TierNormal Tier = "normal"
	TierBoss   Tier = "boss"
)

// ParseWeapon validates a weapon name coming from config or input.
func ParseWeapon(s string) (WeaponType, error) {
	for _, w := range AllWeapons {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown weapon type %q", s)
}

// ParseResource validates a resource name coming from config or input.
func ParseResource(s string) (ResourceType, error) {
	for _, r := range AllResources {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown resource type %q", s)
}

// Multipliers maps a weapon to a damage factor. A missing entry means 1.0.
type Multipliers map[WeaponType]float64

// Get returns the factor for w, defaulting to 1.0.
func (m Multipliers) Get(w WeaponType) float64 {
	if v, ok := m[w]; ok {
		return v
	}
	return 1.0
}

// Lookup returns the factor for w and whether it was configured.
func (m Multipliers) Lookup(w WeaponType) (float64, bool) {
	v, ok := m[w]
	return v, ok
}

// Clone returns an independent copy.
func (m Multipliers) Clone() Multipliers {
	if m == nil {
		return nil
	}
	out := make(Multipliers, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
