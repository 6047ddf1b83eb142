// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthPerPip        = 10
	HealthCols          = 10
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator draws the player's health as a row of pips, one per
// HealthPerPip points.
type PlayerHealthIndicator struct {
	Position rl.Vector2
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{Position: rl.NewVector2(x, y)}
}

func (i *PlayerHealthIndicator) Draw(health, maxHealth int) {
	pips := (maxHealth + HealthPerPip - 1) / HealthPerPip
	filled := (health + HealthPerPip - 1) / HealthPerPip
	low := health*4 <= maxHealth

	for j := 0; j < pips; j++ {
		row := j / HealthCols
		col := j % HealthCols
		x := i.Position.X + float32(col)*(HealthCircleRadius*2+HealthCircleSpacing)
		y := i.Position.Y + float32(row)*(HealthCircleRadius*2+HealthCircleSpacing)

		c := rl.Black
		if j < filled {
			c = rl.Green
			if low {
				c = rl.Red
			}
		}
		rl.DrawCircle(int32(x+HealthCircleRadius), int32(y+HealthCircleRadius), HealthCircleRadius, c)
		rl.DrawCircleLines(int32(x+HealthCircleRadius), int32(y+HealthCircleRadius), HealthCircleRadius, rl.White)
	}

	text := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	rl.DrawText(text, int32(i.Position.X), int32(i.Position.Y)-25, 20, rl.White)
}
