package persistence

import (
	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/event"
	"go-fps-factory/pkg/logger"
)

// CareerKey is the store key of the cumulative statistics.
const CareerKey = "fps_factory_persistent_stats"

// CareerStats are totals across every run ever played.
type CareerStats struct {
	RunsAttempted  int            `json:"runsAttempted"`
	RunsCompleted  int            `json:"runsCompleted"`
	BossesDefeated int            `json:"bossesDefeated"`
	TotalKills     int            `json:"totalKills"`
	BestTime       *float64       `json:"bestTime"`
	TotalPlayTime  float64        `json:"totalPlayTime"`
	FavoriteAmmo   *string        `json:"favoriteAmmo"`
	AmmoUsage      map[string]int `json:"ammoUsage,omitempty"`
}

// CareerTracker updates CareerStats from game events and saves them.
type CareerTracker struct {
	store Store
	stats CareerStats
	log   *logger.Logger
}

func NewCareerTracker(store Store, log *logger.Logger) *CareerTracker {
	t := &CareerTracker{store: store, log: log}
	t.stats = defaultCareer()
	var saved CareerStats
	ok, err := getJSON(store, CareerKey, &saved)
	switch {
	case err != nil:
		log.Warn("failed to load career stats, using defaults: %v", err)
	case ok:
		if saved.AmmoUsage == nil {
			saved.AmmoUsage = make(map[string]int)
		}
		t.stats = saved
	}
	return t
}

func defaultCareer() CareerStats {
	return CareerStats{AmmoUsage: make(map[string]int)}
}

// Subscribe wires the tracker to the events it counts.
func (t *CareerTracker) Subscribe(d *event.Dispatcher) {
	for _, et := range []event.EventType{
		event.RunStarted, event.RunSuccess, event.RunFailed, event.Victory, event.Defeat,
		event.BossDefeated, event.ActorDied, event.ShotFired,
	} {
		d.Subscribe(et, t)
	}
}

func (t *CareerTracker) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunStarted:
		t.stats.RunsAttempted++
		t.save()
	case event.RunSuccess, event.Victory:
		if data, ok := e.Data.(event.RunEndedData); ok {
			t.completed(data.Summary)
		}
	case event.RunFailed, event.Defeat:
		if data, ok := e.Data.(event.RunEndedData); ok {
			t.stats.TotalPlayTime += data.Summary.Duration
			t.save()
		}
	case event.BossDefeated:
		t.stats.BossesDefeated++
		t.save()
	case event.ActorDied:
		t.stats.TotalKills++
		if t.stats.TotalKills%config.KillsPerCareerSave == 0 {
			t.save()
		}
	case event.ShotFired:
		if data, ok := e.Data.(event.ShotFiredData); ok {
			t.stats.AmmoUsage[string(data.Weapon)]++
			t.updateFavorite()
		}
	}
}

func (t *CareerTracker) completed(s component.Summary) {
	t.stats.RunsCompleted++
	if s.Mode == component.ModeRun && (t.stats.BestTime == nil || s.Duration < *t.stats.BestTime) {
		best := s.Duration
		t.stats.BestTime = &best
	}
	t.stats.TotalPlayTime += s.Duration
	t.save()
}

func (t *CareerTracker) updateFavorite() {
	best, bestN := "", 0
	for ammo, n := range t.stats.AmmoUsage {
		if n > bestN || n == bestN && ammo < best {
			best, bestN = ammo, n
		}
	}
	if best != "" {
		t.stats.FavoriteAmmo = &best
	}
}

// Stats returns a copy of the current totals.
func (t *CareerTracker) Stats() CareerStats {
	out := t.stats
	out.AmmoUsage = make(map[string]int, len(t.stats.AmmoUsage))
	for k, v := range t.stats.AmmoUsage {
		out.AmmoUsage[k] = v
	}
	return out
}

// Flush saves unconditionally, e.g. on shutdown.
func (t *CareerTracker) Flush() { t.save() }

// Reset clears every total and removes the stored value.
func (t *CareerTracker) Reset() {
	t.stats = defaultCareer()
	if err := t.store.Delete(CareerKey); err != nil {
		t.log.Error("failed to clear career stats: %v", err)
	}
}

func (t *CareerTracker) save() {
	if err := setJSON(t.store, CareerKey, t.stats); err != nil {
		t.log.Error("failed to save career stats: %v", err)
	}
}
