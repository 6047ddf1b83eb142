// internal/state/phase.go
package state

import "fmt"

// Phase is one node of the run/level state machine.
type Phase int

const (
	MainMenu Phase = iota
	Hub
	Level1
	Level2
	Level3
	LevelTransition
	BossIntro
	BossFight
	RunSuccess
	RunFailed
	Paused

	// Wave-mode track, never mixed with the level track within one run.
	Playing
	WaveTransition
	Victory
	Defeat
)

var phaseNames = map[Phase]string{
	MainMenu:        "MAIN_MENU",
	Hub:             "HUB",
	Level1:          "LEVEL_1",
	Level2:          "LEVEL_2",
	Level3:          "LEVEL_3",
	LevelTransition: "LEVEL_TRANSITION",
	BossIntro:       "BOSS_INTRO",
	BossFight:       "BOSS_FIGHT",
	RunSuccess:      "RUN_SUCCESS",
	RunFailed:       "RUN_FAILED",
	Paused:          "PAUSED",
	Playing:         "PLAYING",
	WaveTransition:  "WAVE_TRANSITION",
	Victory:         "VICTORY",
	Defeat:          "DEFEAT",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// LevelPhase maps a 1-based level number to its phase.
func LevelPhase(n int) (Phase, bool) {
	switch n {
	case 1:
		return Level1, true
	case 2:
		return Level2, true
	case 3:
		return Level3, true
	}
	return MainMenu, false
}

// LevelNumber returns 1..3 for level phases and 0 otherwise.
func (p Phase) LevelNumber() int {
	switch p {
	case Level1:
		return 1
	case Level2:
		return 2
	case Level3:
		return 3
	}
	return 0
}

// IsLevel reports whether p is one of the three combat levels.
func (p Phase) IsLevel() bool { return p.LevelNumber() != 0 }

// InRun reports whether p belongs to an unfinished level-track run.
func (p Phase) InRun() bool {
	switch p {
	case Level1, Level2, Level3, LevelTransition, BossIntro, BossFight:
		return true
	}
	return false
}

// InWaves reports whether p belongs to an unfinished wave-mode session.
func (p Phase) InWaves() bool {
	return p == Playing || p == WaveTransition
}

// IsCombat reports whether robots move and the player can be hurt in p.
func (p Phase) IsCombat() bool {
	switch p {
	case Level1, Level2, Level3, BossIntro, BossFight, Playing:
		return true
	}
	return false
}

// IsFinal reports whether p ends a run and waits for the player to leave.
func (p Phase) IsFinal() bool {
	switch p {
	case RunSuccess, RunFailed, Victory, Defeat:
		return true
	}
	return false
}

// TimeScale is the simulation speed while p is active. Pause and every
// transitional or end screen freeze the world.
func (p Phase) TimeScale() float64 {
	if p.IsCombat() {
		return 1.0
	}
	return 0.0
}
