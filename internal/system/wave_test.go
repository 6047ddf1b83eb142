package system

import (
	"testing"

	"go-fps-factory/internal/config"
	"go-fps-factory/internal/event"
	"go-fps-factory/internal/state"
	"go-fps-factory/pkg/logger"
)

func newWaveHarness() (*harness, *WaveSystem) {
	h := defaultHarness()
	ws := NewWaveSystem(h.ecs, h.lib, h.sm, h.sched, h.spawner, h.dispatcher, logger.Discard())
	h.sm.SetState(state.Hub)
	return h, ws
}

func TestWaveCountdownStartsNextWave(t *testing.T) {
	h, ws := newWaveHarness()
	if err := ws.Start(); err != nil {
		t.Fatalf("Expected wave mode to start, got %v", err)
	}
	first, _ := h.lib.Wave(1)
	if ws.ActiveEnemies() != first.EnemyCount() {
		t.Errorf("Expected %d enemies, got %d", first.EnemyCount(), ws.ActiveEnemies())
	}

	clearLevel(h)
	ws.CheckCompletion()
	if h.sm.Current() != state.WaveTransition {
		t.Fatalf("Expected WAVE_TRANSITION, got %s", h.sm.Current())
	}
	for i := 0; i < config.WaveCountdown; i++ {
		h.sched.Advance(1)
	}
	if h.sm.Current() != state.Playing || ws.Wave() != 2 {
		t.Fatalf("Expected PLAYING wave 2, got %s wave %d", h.sm.Current(), ws.Wave())
	}

	var remaining []int
	for _, e := range h.log.events {
		if e.Type == event.WaveCountdown {
			remaining = append(remaining, e.Data.(event.WaveCountdownData).Remaining)
		}
	}
	if len(remaining) != config.WaveCountdown || remaining[0] != config.WaveCountdown || remaining[len(remaining)-1] != 1 {
		t.Errorf("Expected a countdown from %d to 1, got %v", config.WaveCountdown, remaining)
	}
}

func TestWaveDefeatCancelsCountdown(t *testing.T) {
	h, ws := newWaveHarness()
	ws.Start()
	clearLevel(h)
	ws.CheckCompletion()
	if err := ws.Fail(); err != nil {
		t.Fatalf("Expected Fail, got %v", err)
	}
	h.sched.Advance(10)
	if h.sm.Current() != state.Defeat {
		t.Errorf("Expected DEFEAT to stick, got %s", h.sm.Current())
	}
	if h.log.count(event.Defeat) != 1 {
		t.Errorf("Expected 1 Defeat, got %d", h.log.count(event.Defeat))
	}
}
