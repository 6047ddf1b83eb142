package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLibraryValidates(t *testing.T) {
	if err := DefaultLibrary().Validate(); err != nil {
		t.Fatalf("Expected default library to validate, got %v", err)
	}
}

func TestLevelCompositionCounts(t *testing.T) {
	lib := DefaultLibrary()
	want := map[int]int{1: 8, 2: 10, 3: 14}
	for n, count := range want {
		lvl, ok := lib.Level(n)
		if !ok {
			t.Fatalf("Expected level %d to exist", n)
		}
		if got := lvl.EnemyCount(); got != count {
			t.Errorf("Level %d: expected %d enemies, got %d", n, count, got)
		}
	}
	if _, ok := lib.Level(4); ok {
		t.Error("Expected no fourth level; the boss follows level 3")
	}
}

func TestValidateRejectsUnknownEnemy(t *testing.T) {
	lib := DefaultLibrary()
	lib.Levels[0].Squads = append(lib.Levels[0].Squads, Squad{Enemy: "drone", Count: 1})
	err := lib.Validate()
	if !errors.Is(err, ErrInvalidLibrary) {
		t.Fatalf("Expected ErrInvalidLibrary, got %v", err)
	}
}

func TestValidateRejectsStartingAboveMax(t *testing.T) {
	lib := DefaultLibrary()
	a := lib.Ammo[WeaponFlux]
	a.StartingAmmo = a.MaxAmmo + 1
	lib.Ammo[WeaponFlux] = a
	if err := lib.Validate(); !errors.Is(err, ErrInvalidLibrary) {
		t.Fatalf("Expected ErrInvalidLibrary, got %v", err)
	}
}

func TestBossPhaseFor(t *testing.T) {
	boss := DefaultLibrary().Bosses[BossFluxWarden]
	tests := []struct {
		fraction float64
		want     int
	}{
		{1.0, 0},
		{0.75, 0},
		{0.5, 1},
		{0.1, 1},
	}
	for _, tt := range tests {
		if got := boss.PhaseFor(tt.fraction); got != tt.want {
			t.Errorf("PhaseFor(%v) = %d, want %d", tt.fraction, got, tt.want)
		}
	}
}

func TestLoadLibraryOverridesLevels(t *testing.T) {
	dir := t.TempDir()
	levels := `[
		{"number":1,"title":"ONLY","squads":[{"enemy":"standard","count":2}],"reward":{"metal":5}},
		{"number":2,"title":"TWO","squads":[{"enemy":"shielded","count":1}]},
		{"number":3,"title":"THREE","squads":[{"enemy":"heavy","count":1}]}
	]`
	if err := os.WriteFile(filepath.Join(dir, "levels.json"), []byte(levels), 0644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadLibrary(dir)
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	if len(lib.Levels) != 3 || lib.Levels[0].Title != "ONLY" {
		t.Fatalf("Expected overridden level table, got %+v", lib.Levels)
	}
	if lib.Levels[0].Reward[ResourceMetal] != 5 {
		t.Errorf("Expected reward 5 metal, got %d", lib.Levels[0].Reward[ResourceMetal])
	}
	if _, ok := lib.Enemies[EnemyHeavy]; !ok {
		t.Error("Expected enemy defaults to survive a partial override")
	}
}

func TestLoadLibraryBadJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "waves.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLibrary(dir); err == nil {
		t.Fatal("Expected an error for malformed waves.json")
	}
}

func TestMultipliersDefault(t *testing.T) {
	m := Multipliers{WeaponFlux: 1.5}
	if m.Get(WeaponKinetic) != 1.0 {
		t.Errorf("Expected missing entry to default to 1.0, got %v", m.Get(WeaponKinetic))
	}
	if _, ok := m.Lookup(WeaponKinetic); ok {
		t.Error("Expected Lookup to report a missing entry")
	}
	var nilMap Multipliers
	if nilMap.Get(WeaponThermal) != 1.0 {
		t.Error("Expected nil multipliers to default to 1.0")
	}
}

func TestValidateRequiresThreeLevels(t *testing.T) {
	lib := DefaultLibrary()
	lib.Levels = lib.Levels[:2]
	if err := lib.Validate(); !errors.Is(err, ErrInvalidLibrary) {
		t.Fatalf("Expected ErrInvalidLibrary for a two-level run, got %v", err)
	}
}
