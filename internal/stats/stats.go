// Package stats tracks gameplay numbers for the current session: shots,
// hits, accuracy and the weapon the player leans on.
package stats

import (
	"sort"

	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/event"
)

// WeaponStats are shot counters for one weapon.
type WeaponStats struct {
	Shots    int
	Hits     int
	Crits    int
	Kills    int
	DamageIn float64
}

// Snapshot is a copy of the session counters.
type Snapshot struct {
	Weapons         map[defs.WeaponType]WeaponStats
	KillsByType     map[string]int
	WavesCompleted  int
	LevelsCompleted int
	Accuracy        float64
	FavoriteAmmo    defs.WeaponType
}

// Tracker listens to combat events.
type Tracker struct {
	weapons     map[defs.WeaponType]*WeaponStats
	killsByType map[string]int
	waves       int
	levels      int
	lastWeapon  map[uint64]defs.WeaponType
}

func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Subscribe registers the tracker with d.
func (t *Tracker) Subscribe(d *event.Dispatcher) {
	for _, et := range []event.EventType{
		event.RunStarted, event.ShotFired, event.ActorDamaged, event.ActorDied,
		event.WaveCompleted, event.LevelCompleted,
	} {
		d.Subscribe(et, t)
	}
}

// Reset clears every counter.
func (t *Tracker) Reset() {
	t.weapons = make(map[defs.WeaponType]*WeaponStats)
	for _, w := range defs.AllWeapons {
		t.weapons[w] = &WeaponStats{}
	}
	t.killsByType = make(map[string]int)
	t.lastWeapon = make(map[uint64]defs.WeaponType)
	t.waves, t.levels = 0, 0
}

func (t *Tracker) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunStarted:
		t.Reset()
	case event.ShotFired:
		d, ok := e.Data.(event.ShotFiredData)
		if !ok {
			return
		}
		ws := t.weapon(d.Weapon)
		ws.Shots++
		if d.Hit {
			ws.Hits++
		}
		if d.Critical {
			ws.Crits++
		}
	case event.ActorDamaged:
		if d, ok := e.Data.(event.ActorDamagedData); ok {
			t.weapon(d.Weapon).DamageIn += d.Outcome.Amount
			t.lastWeapon[uint64(d.ID)] = d.Weapon
		}
	case event.ActorDied:
		d, ok := e.Data.(event.ActorDiedData)
		if !ok {
			return
		}
		t.killsByType[d.DefID]++
		if w, ok := t.lastWeapon[uint64(d.ID)]; ok {
			t.weapon(w).Kills++
			delete(t.lastWeapon, uint64(d.ID))
		}
	case event.WaveCompleted:
		t.waves++
	case event.LevelCompleted:
		t.levels++
	}
}

func (t *Tracker) weapon(w defs.WeaponType) *WeaponStats {
	ws, ok := t.weapons[w]
	if !ok {
		ws = &WeaponStats{}
		t.weapons[w] = ws
	}
	return ws
}

// Accuracy is hits over shots across all weapons, 0 before the first shot.
func (t *Tracker) Accuracy() float64 {
	shots, hits := 0, 0
	for _, ws := range t.weapons {
		shots += ws.Shots
		hits += ws.Hits
	}
	if shots == 0 {
		return 0
	}
	return float64(hits) / float64(shots)
}

// FavoriteAmmo is the weapon with the most shots. Ties go to slot order.
func (t *Tracker) FavoriteAmmo() defs.WeaponType {
	var best defs.WeaponType
	bestN := 0
	for _, w := range defs.AllWeapons {
		if n := t.weapons[w].Shots; n > bestN {
			best, bestN = w, n
		}
	}
	return best
}

// Snapshot copies the counters.
func (t *Tracker) Snapshot() Snapshot {
	s := Snapshot{
		Weapons:         make(map[defs.WeaponType]WeaponStats, len(t.weapons)),
		KillsByType:     make(map[string]int, len(t.killsByType)),
		WavesCompleted:  t.waves,
		LevelsCompleted: t.levels,
		Accuracy:        t.Accuracy(),
		FavoriteAmmo:    t.FavoriteAmmo(),
	}
	for w, ws := range t.weapons {
		s.Weapons[w] = *ws
	}
	for k, v := range t.killsByType {
		s.KillsByType[k] = v
	}
	return s
}

// KillTypes lists enemy types killed this session in name order.
func (s Snapshot) KillTypes() []string {
	out := make([]string, 0, len(s.KillsByType))
	for k := range s.KillsByType {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
