// internal/component/game_state.go
package component

import (
	"time"

	"github.com/google/uuid"

	"go-fps-factory/internal/defs"
)

// Mode selects which of the two mutually exclusive play tracks is active.
type Mode int

const (
	ModeNone Mode = iota
	ModeRun
	ModeWaves
)

func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "run"
	case ModeWaves:
		return "waves"
	default:
		return "none"
	}
}

// RunStats accumulates per-run counters.
type RunStats struct {
	Kills              int
	KillsByType        map[string]int
	ResourcesCollected map[defs.ResourceType]int
	DamageTaken        int
	LevelsCompleted    int
	BossDefeated       bool
}

// Run is one playthrough attempt from level 1 through the boss.
type Run struct {
	ID        string
	Mode      Mode
	StartedAt time.Time
	Elapsed   float64 // game seconds
	Level     int     // current level, LevelBoss once the boss is reached
	Stats     RunStats
	Finished  bool
	Success   bool
}

// LevelBoss marks the boss stage in Run.Level.
const LevelBoss = 4

// NewRun returns a fresh run with a random id.
func NewRun(mode Mode, now time.Time) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Mode:      mode,
		StartedAt: now,
		Level:     1,
		Stats: RunStats{
			KillsByType:        make(map[string]int),
			ResourcesCollected: make(map[defs.ResourceType]int),
		},
	}
}

// Summary is the immutable record handed to listeners when a run ends.
type Summary struct {
	RunID           string
	Mode            Mode
	Success         bool
	Duration        float64
	Kills           int
	KillsByType     map[string]int
	Resources       map[defs.ResourceType]int
	DamageTaken     int
	LevelsCompleted int
	BossDefeated    bool
}

// Summarize copies the run into a Summary.
func (r *Run) Summarize() Summary {
	kills := make(map[string]int, len(r.Stats.KillsByType))
	for k, v := range r.Stats.KillsByType {
		kills[k] = v
	}
	res := make(map[defs.ResourceType]int, len(r.Stats.ResourcesCollected))
	for k, v := range r.Stats.ResourcesCollected {
		res[k] = v
	}
	return Summary{
		RunID:           r.ID,
		Mode:            r.Mode,
		Success:         r.Success,
		Duration:        r.Elapsed,
		Kills:           r.Stats.Kills,
		KillsByType:     kills,
		Resources:       res,
		DamageTaken:     r.Stats.DamageTaken,
		LevelsCompleted: r.Stats.LevelsCompleted,
		BossDefeated:    r.Stats.BossDefeated,
	}
}
