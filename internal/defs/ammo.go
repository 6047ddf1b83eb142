package defs

// AmmoDefinition holds the static data for one weapon type.
type AmmoDefinition struct {
	Type           WeaponType   `json:"type"`
	Name           string       `json:"name"`
	Damage         float64      `json:"damage"`
	MaxAmmo        int          `json:"max_ammo"`
	StartingAmmo   int          `json:"starting_ammo"`
	Resource       ResourceType `json:"resource"`
	RequiresUnlock UnlockID     `json:"requires_unlock,omitempty"`
	Description    string       `json:"description"`
}

// ResourceDefinition describes a raw material and the ammo it converts into.
type ResourceDefinition struct {
	Type ResourceType `json:"type"`
	Name string       `json:"name"`
	Ammo WeaponType   `json:"ammo"`
}

func defaultAmmo() map[WeaponType]AmmoDefinition {
	return map[WeaponType]AmmoDefinition{
		WeaponKinetic: {
			Type:         WeaponKinetic,
			Name:         "Kinetic Rounds",
			Damage:       25,
			MaxAmmo:      100,
			StartingAmmo: 50,
			Resource:     ResourceMetal,
			Description:  "Standard ballistic ammunition. Effective against most targets.",
		},
		WeaponFlux: {
			Type:         WeaponFlux,
			Name:         "Flux Energy",
			Damage:       30,
			MaxAmmo:      50,
			StartingAmmo: 0,
			Resource:     ResourceEnergy,
			Description:  "Experimental energy weapon. Bypasses most shielding.",
		},
		WeaponThermal: {
			Type:           WeaponThermal,
			Name:           "Thermal Charges",
			Damage:         35,
			MaxAmmo:        30,
			StartingAmmo:   0,
			Resource:       ResourceThermalCore,
			RequiresUnlock: UnlockThermalPanel,
			Description:    "Superheated slugs. Melts heavy plating.",
		},
	}
}

func defaultResources() map[ResourceType]ResourceDefinition {
	return map[ResourceType]ResourceDefinition{
		ResourceMetal:       {Type: ResourceMetal, Name: "Metal Scrap", Ammo: WeaponKinetic},
		ResourceEnergy:      {Type: ResourceEnergy, Name: "Energy Cell", Ammo: WeaponFlux},
		ResourceThermalCore: {Type: ResourceThermalCore, Name: "Thermal Core", Ammo: WeaponThermal},
	}
}
