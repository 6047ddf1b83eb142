package screen

import (
	"fmt"

	"go-fps-factory/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MenuScreen is the main menu and, with hub set, the hub between runs.
type MenuScreen struct {
	ctx     *Context
	hub     bool
	buttons []*ui.Button
	status  string
}

func NewMenuScreen(ctx *Context, hub bool) *MenuScreen {
	top := rl.GetScreenHeight()/2 - 40
	labels := []string{"Play", "Quit"}
	if hub {
		labels = []string{"Start Run", "Wave Mode", "Reset Progress", "Main Menu"}
	}
	return &MenuScreen{
		ctx:     ctx,
		hub:     hub,
		buttons: ui.ButtonColumn(ctx.Font, rl.GetScreenWidth(), top, labels...),
	}
}

func (s *MenuScreen) Enter() {
	rl.EnableCursor()
}

func (s *MenuScreen) Update(deltaTime float64) {
	s.ctx.Game.Update(deltaTime)
	mousePos := rl.GetMousePosition()
	for i, b := range s.buttons {
		if b.IsClicked(mousePos) {
			s.click(i)
			return
		}
	}
	if !s.hub && rl.IsKeyPressed(rl.KeyEnter) {
		s.click(0)
	}
}

func (s *MenuScreen) click(i int) {
	g := s.ctx.Game
	var err error
	if !s.hub {
		switch i {
		case 0:
			err = g.EnterHub()
		case 1:
			s.ctx.Quit()
		}
	} else {
		switch i {
		case 0:
			err = g.StartRun()
		case 1:
			err = g.StartWaveMode()
		case 2:
			err = g.ResetProgress()
			if err == nil {
				s.status = "Progress reset"
			}
		case 3:
			err = g.ExitToMenu()
		}
	}
	if err != nil {
		s.status = err.Error()
	}
}

func (s *MenuScreen) Draw() {}

func (s *MenuScreen) DrawUI() {
	title := "FPS Factory"
	if s.hub {
		title = "Hub"
	}
	titleFontSize := float32(60)
	titleWidth := rl.MeasureTextEx(s.ctx.Font, title, titleFontSize, 1).X
	rl.DrawTextEx(s.ctx.Font, title, rl.NewVector2((float32(rl.GetScreenWidth())-titleWidth)/2, float32(rl.GetScreenHeight()/2-200)), titleFontSize, 1, rl.White)

	mousePos := rl.GetMousePosition()
	for _, b := range s.buttons {
		b.Draw(mousePos)
	}

	if s.hub {
		s.drawCareer()
	}
	if s.status != "" {
		rl.DrawText(s.status, 20, int32(rl.GetScreenHeight()-40), 20, rl.Yellow)
	}
}

func (s *MenuScreen) drawCareer() {
	g := s.ctx.Game
	c := g.Career.Stats()
	unlocked, total := g.Unlocks.Progress()
	lines := []string{
		fmt.Sprintf("Runs: %d/%d completed", c.RunsCompleted, c.RunsAttempted),
		fmt.Sprintf("Bosses defeated: %d", c.BossesDefeated),
		fmt.Sprintf("Total kills: %d", c.TotalKills),
		fmt.Sprintf("Unlocks: %d/%d", unlocked, total),
	}
	if c.BestTime != nil {
		lines = append(lines, fmt.Sprintf("Best time: %.1fs", *c.BestTime))
	}
	if c.FavoriteAmmo != nil {
		lines = append(lines, "Favorite ammo: "+*c.FavoriteAmmo)
	}
	for i, line := range lines {
		rl.DrawText(line, 20, int32(20+i*24), 20, rl.LightGray)
	}
}

func (s *MenuScreen) Exit() {}
