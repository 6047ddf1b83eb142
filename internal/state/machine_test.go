package state

import (
	"errors"
	"testing"
)

func mustSet(t *testing.T, sm *StateMachine, phases ...Phase) {
	t.Helper()
	for _, p := range phases {
		if err := sm.SetState(p); err != nil {
			t.Fatalf("SetState(%s) from %s failed: %v", p, sm.Current(), err)
		}
	}
}

func TestFullRunPath(t *testing.T) {
	sm := NewStateMachine()
	mustSet(t, sm, Hub, Level1, LevelTransition, Level2, LevelTransition, Level3,
		LevelTransition, BossIntro, BossFight, RunSuccess, Hub)
	if sm.Current() != Hub {
		t.Errorf("Expected HUB, got %s", sm.Current())
	}
}

func TestInvalidTransitionLeavesStateUnchanged(t *testing.T) {
	sm := NewStateMachine()
	err := sm.SetState(Level2)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}
	if sm.Current() != MainMenu {
		t.Errorf("Expected MAIN_MENU, got %s", sm.Current())
	}
}

func TestLevelTransitionGuard(t *testing.T) {
	sm := NewStateMachine()
	mustSet(t, sm, Hub, Level1, LevelTransition)

	if err := sm.SetState(Level3); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected skipping to level 3 to fail, got %v", err)
	}
	if err := sm.SetState(BossIntro); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected boss after level 1 to fail, got %v", err)
	}
	mustSet(t, sm, Level2)
}

func TestLevelThreeOnlyLeadsToBoss(t *testing.T) {
	sm := NewStateMachine()
	mustSet(t, sm, Hub, Level1, LevelTransition, Level2, LevelTransition, Level3, LevelTransition)
	if sm.CanTransition(Level3) {
		t.Error("Expected level 3 to be unreachable after clearing it")
	}
	if !sm.CanTransition(BossIntro) {
		t.Error("Expected BOSS_INTRO to be reachable after level 3")
	}
}

func TestPauseResumeReturnsToInterruptedPhase(t *testing.T) {
	sm := NewStateMachine()
	mustSet(t, sm, Hub, Level1, LevelTransition, Level2)
	if err := sm.Pause(); err != nil {
		t.Fatal(err)
	}
	if sm.TimeScale() != 0 {
		t.Errorf("Expected frozen time while paused, got %v", sm.TimeScale())
	}
	if p, ok := sm.Interrupted(); !ok || p != Level2 {
		t.Errorf("Expected interrupted LEVEL_2, got %s ok=%v", p, ok)
	}
	if sm.CanTransition(Level3) {
		t.Error("Expected paused machine to refuse a different level")
	}
	if err := sm.Resume(); err != nil {
		t.Fatal(err)
	}
	if sm.Current() != Level2 || sm.TimeScale() != 1 {
		t.Errorf("Expected LEVEL_2 at full speed, got %s at %v", sm.Current(), sm.TimeScale())
	}
	if sm.LastCleared() != 1 {
		t.Errorf("Expected pause to keep level progress, got %d", sm.LastCleared())
	}
}

func TestPauseNotAllowedOutsideCombat(t *testing.T) {
	sm := NewStateMachine()
	if err := sm.Pause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected pause from MAIN_MENU to fail, got %v", err)
	}
	if err := sm.Resume(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected resume without pause to fail, got %v", err)
	}
}

func TestQuitFromPauseResetsProgress(t *testing.T) {
	sm := NewStateMachine()
	mustSet(t, sm, Hub, Level1, LevelTransition, Level2, Paused, Hub)
	if sm.LastCleared() != 0 {
		t.Errorf("Expected quit to reset progress, got %d", sm.LastCleared())
	}
	mustSet(t, sm, Level1)
}

func TestRunFailedFromAnyInRunPhase(t *testing.T) {
	for _, p := range []Phase{Level1, LevelTransition, BossIntro, BossFight} {
		if !containsPhase(transitions[p], RunFailed) {
			t.Errorf("Expected %s -> RUN_FAILED to be allowed", p)
		}
	}
	if containsPhase(transitions[Playing], RunFailed) {
		t.Error("Expected wave mode to end in DEFEAT, not RUN_FAILED")
	}
}

func TestEndStatesRequireExplicitReturn(t *testing.T) {
	for _, p := range []Phase{RunSuccess, RunFailed, Victory, Defeat} {
		if got := transitions[p]; len(got) != 1 || got[0] != Hub {
			t.Errorf("Expected %s to lead only to HUB, got %v", p, got)
		}
	}
}

func TestWaveTrack(t *testing.T) {
	sm := NewStateMachine()
	mustSet(t, sm, Hub, Playing, WaveTransition, Playing, Victory, Hub)
	if sm.CanTransition(Level2) {
		t.Error("Expected the level track to be unreachable from HUB except via LEVEL_1")
	}
}

func TestHooksOrder(t *testing.T) {
	sm := NewStateMachine()
	var got []string
	sm.OnExit(MainMenu, func(from, to Phase) { got = append(got, "exit "+from.String()) })
	sm.OnEnter(Hub, func(from, to Phase) { got = append(got, "enter "+to.String()) })
	sm.OnChange(func(from, to Phase) { got = append(got, "change") })
	mustSet(t, sm, Hub)
	want := []string{"exit MAIN_MENU", "enter HUB", "change"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Hook %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTimeScaleTable(t *testing.T) {
	tests := []struct {
		p    Phase
		want float64
	}{
		{Level1, 1}, {Level3, 1}, {BossIntro, 1}, {BossFight, 1}, {Playing, 1},
		{Paused, 0}, {LevelTransition, 0}, {WaveTransition, 0},
		{RunSuccess, 0}, {RunFailed, 0}, {Victory, 0}, {Defeat, 0}, {Hub, 0}, {MainMenu, 0},
	}
	for _, tt := range tests {
		if got := tt.p.TimeScale(); got != tt.want {
			t.Errorf("%s: expected time scale %v, got %v", tt.p, tt.want, got)
		}
	}
}

func containsPhase(list []Phase, p Phase) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}
