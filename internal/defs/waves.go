package defs

// WaveDefinition describes one wave of the endless-style wave mode.
type WaveDefinition struct {
	Number int     `json:"number"`
	Label  string  `json:"label"`
	Squads []Squad `json:"squads"`
}

// EnemyCount is the number of robots in the wave.
func (w WaveDefinition) EnemyCount() int {
	n := 0
	for _, s := range w.Squads {
		n += s.Count
	}
	return n
}

func defaultWaves() []WaveDefinition {
	return []WaveDefinition{
		{1, "Wave 1: Scout Units", []Squad{{EnemyStandard, 3}, {EnemyShielded, 2}}},
		{2, "Wave 2: Strike Force", []Squad{{EnemyStandard, 4}, {EnemyShielded, 4}}},
		{3, "Wave 3: Heavy Assault", []Squad{{EnemyStandard, 6}, {EnemyShielded, 6}}},
		{4, "Wave 4: Elite Squadron", []Squad{{EnemyStandard, 7}, {EnemyShielded, 8}}},
		{5, "Wave 5: Final Siege", []Squad{{EnemyStandard, 10}, {EnemyShielded, 10}}},
	}
}
