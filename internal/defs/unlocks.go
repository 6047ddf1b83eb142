package defs

// UnlockDefinition is catalog metadata for a persisted unlock.
type UnlockDefinition struct {
	ID          UnlockID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
}

func defaultUnlocks() map[UnlockID]UnlockDefinition {
	return map[UnlockID]UnlockDefinition{
		UnlockThermalPanel: {
			ID:          UnlockThermalPanel,
			Name:        "Thermal Panel",
			Description: "Produce Thermal ammunition from collected resources",
			Type:        "panel",
		},
	}
}
