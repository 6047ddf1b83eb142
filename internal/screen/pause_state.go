// internal/screen/pause_state.go
package screen

import (
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseScreen draws the frozen arena under a dimmed overlay.
type PauseScreen struct {
	ctx     *Context
	arena   *ArenaScreen
	buttons []*ui.Button
}

func NewPauseScreen(ctx *Context, arena *ArenaScreen) *PauseScreen {
	return &PauseScreen{
		ctx:     ctx,
		arena:   arena,
		buttons: ui.ButtonColumn(ctx.Font, rl.GetScreenWidth(), rl.GetScreenHeight()/2+20, "Resume", "Quit to Hub"),
	}
}

func (s *PauseScreen) Enter() {
	rl.EnableCursor()
	s.arena.pauseButton.SetPaused(true)
}

func (s *PauseScreen) Update(deltaTime float64) {
	g := s.ctx.Game
	g.Update(deltaTime)

	mousePos := rl.GetMousePosition()
	switch {
	case rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) || s.buttons[0].IsClicked(mousePos) || s.arena.pauseButton.IsClicked(mousePos):
		_ = g.Resume()
	case rl.IsKeyPressed(rl.KeyQ) || s.buttons[1].IsClicked(mousePos):
		_ = g.QuitToHub()
	}
}

func (s *PauseScreen) Draw() {
	s.arena.Draw()
}

func (s *PauseScreen) DrawUI() {
	s.arena.DrawUI()

	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), rl.NewColor(0, 0, 0, 128))

	pauseText := "PAUSED"
	fontSize := float32(40)
	textWidth := rl.MeasureTextEx(s.ctx.Font, pauseText, fontSize, 1)
	rl.DrawTextEx(s.ctx.Font, pauseText, rl.NewVector2((float32(rl.GetScreenWidth())-textWidth.X)/2, float32(rl.GetScreenHeight())/2-60), fontSize, 1, ui.ColorToRL(config.PausedStateColor))

	mousePos := rl.GetMousePosition()
	for _, b := range s.buttons {
		b.Draw(mousePos)
	}
}

func (s *PauseScreen) Exit() {
	s.arena.pauseButton.SetPaused(false)
}
