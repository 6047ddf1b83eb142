package defs

import (
	"errors"
	"fmt"
)

// Library is the complete set of static game data. It is built once at
// startup and passed to the systems that need it.
type Library struct {
	Ammo      map[WeaponType]AmmoDefinition       `json:"ammo"`
	Resources map[ResourceType]ResourceDefinition `json:"resources"`
	Enemies   map[string]EnemyDefinition          `json:"enemies"`
	Bosses    map[string]BossDefinition           `json:"bosses"`
	Levels    []LevelDefinition                   `json:"levels"`
	Waves     []WaveDefinition                    `json:"waves"`
	Unlocks   map[UnlockID]UnlockDefinition       `json:"unlocks"`
	RunBoss   string                              `json:"run_boss"`
}

// DefaultLibrary returns the built-in balance tables.
func DefaultLibrary() *Library {
	return &Library{
		Ammo:      defaultAmmo(),
		Resources: defaultResources(),
		Enemies:   defaultEnemies(),
		Bosses:    defaultBosses(),
		Levels:    defaultLevels(),
		Waves:     defaultWaves(),
		Unlocks:   defaultUnlocks(),
		RunBoss:   BossFluxWarden,
	}
}

// RunLevels is the number of levels played before the boss.
const RunLevels = 3

// ErrInvalidLibrary is wrapped by every Validate failure.
var ErrInvalidLibrary = errors.New("invalid definitions")

// Validate checks cross references between tables.
func (l *Library) Validate() error {
	for _, w := range AllWeapons {
		a, ok := l.Ammo[w]
		if !ok {
			return fmt.Errorf("%w: missing ammo %q", ErrInvalidLibrary, w)
		}
		if a.MaxAmmo < 0 || a.StartingAmmo < 0 || a.StartingAmmo > a.MaxAmmo {
			return fmt.Errorf("%w: ammo %q starting %d outside [0, %d]", ErrInvalidLibrary, w, a.StartingAmmo, a.MaxAmmo)
		}
	}
	for _, r := range AllResources {
		res, ok := l.Resources[r]
		if !ok {
			return fmt.Errorf("%w: missing resource %q", ErrInvalidLibrary, r)
		}
		if _, ok := l.Ammo[res.Ammo]; !ok {
			return fmt.Errorf("%w: resource %q converts to unknown ammo %q", ErrInvalidLibrary, r, res.Ammo)
		}
	}
	for id, e := range l.Enemies {
		if e.HP <= 0 {
			return fmt.Errorf("%w: enemy %q has non-positive hp", ErrInvalidLibrary, id)
		}
		if err := l.validateDrops(id, e.Drops); err != nil {
			return err
		}
	}
	if len(l.Levels) != RunLevels {
		return fmt.Errorf("%w: a run needs %d levels, got %d", ErrInvalidLibrary, RunLevels, len(l.Levels))
	}
	for i, lvl := range l.Levels {
		if lvl.Number != i+1 {
			return fmt.Errorf("%w: level at index %d numbered %d", ErrInvalidLibrary, i, lvl.Number)
		}
		if err := l.validateSquads(lvl.Title, lvl.Squads); err != nil {
			return err
		}
	}
	for _, w := range l.Waves {
		if err := l.validateSquads(w.Label, w.Squads); err != nil {
			return err
		}
	}
	boss, ok := l.Bosses[l.RunBoss]
	if !ok {
		return fmt.Errorf("%w: run boss %q not defined", ErrInvalidLibrary, l.RunBoss)
	}
	if boss.Guaranteed != "" {
		if _, ok := l.Unlocks[boss.Guaranteed]; !ok {
			return fmt.Errorf("%w: boss %q guarantees unknown unlock %q", ErrInvalidLibrary, boss.ID, boss.Guaranteed)
		}
	}
	return nil
}

func (l *Library) validateDrops(owner string, drops []LootEntry) error {
	for _, d := range drops {
		if _, ok := l.Resources[d.Resource]; !ok {
			return fmt.Errorf("%w: %q drops unknown resource %q", ErrInvalidLibrary, owner, d.Resource)
		}
		if d.Chance < 0 || d.Chance > 1 {
			return fmt.Errorf("%w: %q drop chance %v outside [0, 1]", ErrInvalidLibrary, owner, d.Chance)
		}
	}
	return nil
}

func (l *Library) validateSquads(owner string, squads []Squad) error {
	for _, s := range squads {
		if _, ok := l.Enemies[s.Enemy]; !ok {
			return fmt.Errorf("%w: %q references unknown enemy %q", ErrInvalidLibrary, owner, s.Enemy)
		}
	}
	return nil
}

// Level returns the definition of the 1-based level n.
func (l *Library) Level(n int) (LevelDefinition, bool) {
	if n < 1 || n > len(l.Levels) {
		return LevelDefinition{}, false
	}
	return l.Levels[n-1], true
}

// Wave returns the definition of the 1-based wave n.
func (l *Library) Wave(n int) (WaveDefinition, bool) {
	if n < 1 || n > len(l.Waves) {
		return WaveDefinition{}, false
	}
	return l.Waves[n-1], true
}

// AmmoFor returns the weapon a resource converts into.
func (l *Library) AmmoFor(r ResourceType) (WeaponType, bool) {
	res, ok := l.Resources[r]
	if !ok {
		return "", false
	}
	return res.Ammo, true
}
