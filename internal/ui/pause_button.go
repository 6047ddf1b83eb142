// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButton draws two bars while running and a play triangle while paused.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		c := ColorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-s, b.Y-s*1.2)
		p2 := rl.NewVector2(b.X-s, b.Y+s*1.2)
		p3 := rl.NewVector2(b.X+s, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}
	c := ColorToRL(b.PauseColor)
	width := s * 0.6
	height := s * 2.0
	spacing := s * 0.4
	rl.DrawRectangleV(rl.NewVector2(b.X-width-spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
	rl.DrawRectangleLines(int32(b.X-width-spacing/2), int32(b.Y-height/2), int32(width), int32(height), rl.White)
	rl.DrawRectangleV(rl.NewVector2(b.X+spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
	rl.DrawRectangleLines(int32(b.X+spacing/2), int32(b.Y-height/2), int32(width), int32(height), rl.White)
}

func (b *PauseButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// SetPaused updates the icon, pulsing when it changes.
func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
