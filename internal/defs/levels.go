package defs

// Squad is a count of one enemy type inside a level or wave.
type Squad struct {
	Enemy string `json:"enemy"`
	Count int    `json:"count"`
}

// LevelDefinition is the fixed composition and clear reward of a run level.
type LevelDefinition struct {
	Number      int                  `json:"number"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Squads      []Squad              `json:"squads"`
	Reward      map[ResourceType]int `json:"reward"`
}

// EnemyCount is the number of robots the level spawns.
func (l LevelDefinition) EnemyCount() int {
	n := 0
	for _, s := range l.Squads {
		n += s.Count
	}
	return n
}

func defaultLevels() []LevelDefinition {
	return []LevelDefinition{
		{
			Number:      1,
			Title:       "LEVEL 1",
			Description: "Industrial Zone - First Contact",
			Squads:      []Squad{{EnemyStandard, 5}, {EnemyShielded, 3}},
			Reward:      map[ResourceType]int{ResourceMetal: 50, ResourceEnergy: 30},
		},
		{
			Number:      2,
			Title:       "LEVEL 2",
			Description: "Industrial Zone - Heavy Resistance",
			Squads:      []Squad{{EnemyStandard, 4}, {EnemyShielded, 4}, {EnemyHeavy, 2}},
			Reward:      map[ResourceType]int{ResourceMetal: 75, ResourceEnergy: 50},
		},
		{
			Number:      3,
			Title:       "LEVEL 3",
			Description: "Industrial Zone - Final Approach",
			Squads:      []Squad{{EnemyStandard, 4}, {EnemyShielded, 6}, {EnemyHeavy, 4}},
			Reward:      map[ResourceType]int{ResourceMetal: 100, ResourceEnergy: 75},
		},
	}
}
