// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"go-fps-factory/internal/defs"
	vec "go-fps-factory/pkg/utils"
)

// PRNGService wraps a seeded generator so every random roll in the game
// (drop chances, loot scatter, spawn points) is reproducible.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. Seed 0 uses the clock.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Roll succeeds with the given probability. Chance 1 always succeeds and
// chance 0 never does.
func (s *PRNGService) Roll(chance float64) bool {
	if chance >= 1 {
		return true
	}
	if chance <= 0 {
		return false
	}
	return s.rng.Float64() < chance
}

// Scatter returns center moved by up to radius on the ground plane.
func (s *PRNGService) Scatter(center vec.Vec3, radius float64) vec.Vec3 {
	return center.Add(vec.V3(s.Range(-radius, radius), 0, s.Range(-radius, radius)))
}

// OnRing returns a point on the ground ring around center with the radius
// jittered by up to jitter.
func (s *PRNGService) OnRing(center vec.Vec3, radius, jitter float64) vec.Vec3 {
	angle := s.rng.Float64() * 2 * math.Pi
	r := radius + s.rng.Float64()*jitter
	return center.Add(vec.V3(math.Cos(angle)*r, 0, math.Sin(angle)*r))
}

// ChooseWeighted picks a loot entry using Chance as relative weight. It
// returns false for an empty table.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) (defs.LootEntry, bool) {
	if len(entries) == 0 {
		return defs.LootEntry{}, false
	}
	total := 0.0
	for _, e := range entries {
		total += e.Chance
	}
	if total <= 0 {
		return entries[0], true
	}
	r := s.rng.Float64() * total
	upto := 0.0
	for _, e := range entries {
		if upto+e.Chance > r {
			return e, true
		}
		upto += e.Chance
	}
	return entries[len(entries)-1], true
}
