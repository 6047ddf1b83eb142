package stats

import (
	"testing"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/event"
)

func TestAccuracyAndFavorite(t *testing.T) {
	d := event.NewDispatcher()
	tr := NewTracker()
	tr.Subscribe(d)

	if tr.Accuracy() != 0 {
		t.Errorf("Expected 0 accuracy before shooting, got %v", tr.Accuracy())
	}
	d.Emit(event.ShotFired, event.ShotFiredData{Weapon: defs.WeaponKinetic, Hit: true})
	d.Emit(event.ShotFired, event.ShotFiredData{Weapon: defs.WeaponKinetic, Hit: false})
	d.Emit(event.ShotFired, event.ShotFiredData{Weapon: defs.WeaponKinetic, Hit: true, Critical: true})
	d.Emit(event.ShotFired, event.ShotFiredData{Weapon: defs.WeaponFlux, Hit: true})

	if got := tr.Accuracy(); got != 0.75 {
		t.Errorf("Expected accuracy 0.75, got %v", got)
	}
	if got := tr.FavoriteAmmo(); got != defs.WeaponKinetic {
		t.Errorf("Expected favourite kinetic, got %s", got)
	}
	if got := tr.Snapshot().Weapons[defs.WeaponKinetic].Crits; got != 1 {
		t.Errorf("Expected 1 kinetic crit, got %d", got)
	}
}

func TestKillCreditGoesToLastWeapon(t *testing.T) {
	d := event.NewDispatcher()
	tr := NewTracker()
	tr.Subscribe(d)

	d.Emit(event.ActorDamaged, event.ActorDamagedData{ID: 4, Weapon: defs.WeaponKinetic, Outcome: component.DamageOutcome{Amount: 20}})
	d.Emit(event.ActorDamaged, event.ActorDamagedData{ID: 4, Weapon: defs.WeaponFlux, Outcome: component.DamageOutcome{Amount: 45}})
	d.Emit(event.ActorDied, event.ActorDiedData{ID: 4, DefID: defs.EnemyStandard})

	s := tr.Snapshot()
	if s.Weapons[defs.WeaponFlux].Kills != 1 || s.Weapons[defs.WeaponKinetic].Kills != 0 {
		t.Errorf("Expected the kill credited to flux, got %+v", s.Weapons)
	}
	if s.KillsByType[defs.EnemyStandard] != 1 {
		t.Errorf("Expected 1 standard kill, got %d", s.KillsByType[defs.EnemyStandard])
	}
}

func TestRunStartResets(t *testing.T) {
	d := event.NewDispatcher()
	tr := NewTracker()
	tr.Subscribe(d)
	d.Emit(event.ShotFired, event.ShotFiredData{Weapon: defs.WeaponFlux})
	d.Emit(event.WaveCompleted, event.WaveData{Wave: 1})
	d.Emit(event.RunStarted, event.RunStartedData{})

	s := tr.Snapshot()
	if s.Weapons[defs.WeaponFlux].Shots != 0 || s.WavesCompleted != 0 {
		t.Errorf("Expected counters reset on run start, got %+v", s)
	}
	if s.FavoriteAmmo != "" {
		t.Errorf("Expected no favourite ammo, got %s", s.FavoriteAmmo)
	}
}
