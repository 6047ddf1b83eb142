package screen

import (
	"fmt"
	"sort"

	"go-fps-factory/internal/state"
	"go-fps-factory/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ResultScreen shows the summary of a finished run or wave session.
type ResultScreen struct {
	ctx    *Context
	phase  state.Phase
	button *ui.Button
}

func NewResultScreen(ctx *Context, phase state.Phase) *ResultScreen {
	buttons := ui.ButtonColumn(ctx.Font, rl.GetScreenWidth(), rl.GetScreenHeight()-140, "Return to Hub")
	return &ResultScreen{ctx: ctx, phase: phase, button: buttons[0]}
}

func (s *ResultScreen) Enter() {
	rl.EnableCursor()
}

func (s *ResultScreen) Update(deltaTime float64) {
	s.ctx.Game.Update(deltaTime)
	if s.button.IsClicked(rl.GetMousePosition()) || rl.IsKeyPressed(rl.KeyEnter) {
		_ = s.ctx.Game.ReturnToHub()
	}
}

func (s *ResultScreen) Draw() {}

func (s *ResultScreen) DrawUI() {
	title, c := "RUN COMPLETE", rl.Green
	switch s.phase {
	case state.RunFailed:
		title, c = "RUN FAILED", rl.Red
	case state.Victory:
		title, c = "VICTORY", rl.Green
	case state.Defeat:
		title, c = "DEFEAT", rl.Red
	}
	size := float32(60)
	w := rl.MeasureTextEx(s.ctx.Font, title, size, 1).X
	rl.DrawTextEx(s.ctx.Font, title, rl.NewVector2((float32(rl.GetScreenWidth())-w)/2, 80), size, 1, c)

	if run := s.ctx.Game.ECS.Run; run != nil {
		sum := run.Summarize()
		lines := []string{
			fmt.Sprintf("Time: %.1fs", sum.Duration),
			fmt.Sprintf("Kills: %d", sum.Kills),
			fmt.Sprintf("Damage taken: %d", sum.DamageTaken),
			fmt.Sprintf("Levels completed: %d", sum.LevelsCompleted),
			fmt.Sprintf("Accuracy: %.0f%%", s.ctx.Game.Stats.Accuracy()*100),
		}
		if sum.BossDefeated {
			lines = append(lines, "Boss defeated")
		}
		types := make([]string, 0, len(sum.KillsByType))
		for t := range sum.KillsByType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			lines = append(lines, fmt.Sprintf("  %s: %d", t, sum.KillsByType[t]))
		}
		x := int32(rl.GetScreenWidth()/2 - 150)
		for i, line := range lines {
			rl.DrawText(line, x, int32(180+i*28), 22, rl.White)
		}
	}
	s.button.Draw(rl.GetMousePosition())
}

func (s *ResultScreen) Exit() {}
