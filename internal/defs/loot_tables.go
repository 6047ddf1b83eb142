// internal/defs/loot_tables.go
package defs

// LootEntry is one independent drop roll: Amount of Resource with probability Chance.
type LootEntry struct {
	Resource ResourceType `json:"resource"`
	Amount   int          `json:"amount"`
	Chance   float64      `json:"chance"`
}

// RewardEntry is a fixed, unrolled reward. Count orbs of Amount each are emitted.
type RewardEntry struct {
	Resource ResourceType `json:"resource"`
	Amount   int          `json:"amount"`
	Count    int          `json:"count"`
}
