// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-fps-factory/internal/config"
	"go-fps-factory/internal/state"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhaseIndicator is a colored dot that pulses whenever the phase changes.
type PhaseIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	last       state.Phase
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor picks the indicator color: red while fighting, yellow while
// paused, blue everywhere else.
func PhaseColor(p state.Phase) color.RGBA {
	switch {
	case p == state.Paused:
		return config.PausedStateColor
	case p.IsCombat():
		return config.PlayStateColor
	}
	return config.RestStateColor
}

func (i *PhaseIndicator) Draw(p state.Phase) {
	if p != i.last {
		i.last = p
		i.LastChange = time.Now()
	}
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), r, ColorToRL(PhaseColor(p)))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), r, ColorToRL(config.IndicatorStroke))
}

// IsClicked reports whether the cursor is over the indicator.
func (i *PhaseIndicator) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(i.X, i.Y), i.Radius)
}
