package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadLibrary starts from the built-in tables and overrides every table for
// which a JSON file exists in dir: ammo.json, enemies.json, bosses.json,
// levels.json, waves.json. Missing files keep the defaults.
func LoadLibrary(dir string) (*Library, error) {
	lib := DefaultLibrary()

	var ammo []AmmoDefinition
	found, err := readJSON(filepath.Join(dir, "ammo.json"), &ammo)
	if err != nil {
		return nil, err
	}
	if found {
		lib.Ammo = make(map[WeaponType]AmmoDefinition, len(ammo))
		for _, a := range ammo {
			lib.Ammo[a.Type] = a
		}
	}

	var enemies []EnemyDefinition
	if found, err = readJSON(filepath.Join(dir, "enemies.json"), &enemies); err != nil {
		return nil, err
	}
	if found {
		lib.Enemies = make(map[string]EnemyDefinition, len(enemies))
		for _, e := range enemies {
			lib.Enemies[e.ID] = e
		}
	}

	var bosses []BossDefinition
	if found, err = readJSON(filepath.Join(dir, "bosses.json"), &bosses); err != nil {
		return nil, err
	}
	if found {
		lib.Bosses = make(map[string]BossDefinition, len(bosses))
		for _, b := range bosses {
			lib.Bosses[b.ID] = b
		}
		if _, ok := lib.Bosses[lib.RunBoss]; !ok && len(bosses) > 0 {
			lib.RunBoss = bosses[0].ID
		}
	}

	var levels []LevelDefinition
	if found, err = readJSON(filepath.Join(dir, "levels.json"), &levels); err != nil {
		return nil, err
	}
	if found {
		lib.Levels = levels
	}

	var waves []WaveDefinition
	if found, err = readJSON(filepath.Join(dir, "waves.json"), &waves); err != nil {
		return nil, err
	}
	if found {
		lib.Waves = waves
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
