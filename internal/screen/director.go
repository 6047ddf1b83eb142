package screen

import (
	"go-fps-factory/internal/state"
)

// Director keeps the active screen in step with the game phase. The arena
// screen survives level transitions and pauses so its banners and camera
// carry over.
type Director struct {
	sm      *StateMachine
	ctx     *Context
	arena   *ArenaScreen
	phase   state.Phase
	started bool
}

func NewDirector(sm *StateMachine, ctx *Context) *Director {
	return &Director{sm: sm, ctx: ctx}
}

// Sync switches screens if the phase changed since the last call.
func (d *Director) Sync() {
	p := d.ctx.Game.Phase()
	if d.started && p == d.phase {
		return
	}
	prev := d.phase
	d.phase, d.started = p, true

	switch {
	case p == state.MainMenu:
		d.arena = nil
		d.sm.SetState(NewMenuScreen(d.ctx, false))
	case p == state.Hub:
		d.arena = nil
		d.sm.SetState(NewMenuScreen(d.ctx, true))
	case p == state.Paused:
		d.sm.SetState(NewPauseScreen(d.ctx, d.arenaScreen()))
	case p.IsFinal():
		d.sm.SetState(NewResultScreen(d.ctx, p))
	default:
		if prev == state.Hub {
			d.arena = nil
		}
		if a := d.arenaScreen(); d.sm.Current() != State(a) {
			d.sm.SetState(a)
		}
	}
}

func (d *Director) arenaScreen() *ArenaScreen {
	if d.arena == nil {
		d.arena = NewArenaScreen(d.ctx)
	}
	return d.arena
}
