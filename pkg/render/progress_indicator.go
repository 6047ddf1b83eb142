// pkg/render/progress_indicator.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	barWidth    = 118
	barHeight   = 12
	stageWidth  = 24
	stageHeight = 12
	stageGap    = 7
	borderWidth = 1
)

var (
	barColorFill = color.RGBA{70, 100, 120, 220}
	bossFill     = color.RGBA{180, 50, 230, 220}
	borderColor  = color.White
)

// ProgressIndicator shows how far a run has got: one box per stage with the
// last box for the boss, and a bar for the current stage's clear ratio.
type ProgressIndicator struct {
	X, Y float32
}

func NewProgressIndicator(x, y float32) *ProgressIndicator {
	return &ProgressIndicator{X: x, Y: y}
}

// Draw renders the indicator. cleared counts finished stages out of stages,
// and killed/total describe the stage being fought.
func (i *ProgressIndicator) Draw(screen *ebiten.Image, cleared, stages, killed, total int, withBoss bool) {
	vector.StrokeRect(screen, i.X, i.Y, barWidth, barHeight, borderWidth, borderColor, true)
	ratio := 0.0
	if total > 0 {
		ratio = float64(killed) / float64(total)
	}
	if ratio > 1 {
		ratio = 1
	}
	if w := float32(float64(barWidth-borderWidth*2) * ratio); w > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, w, barHeight-borderWidth*2, barColorFill, true)
	}

	boxes := stages
	if withBoss {
		boxes++
	}
	y := i.Y + barHeight + 10
	for j := 0; j < boxes; j++ {
		x := i.X + float32(j)*(stageWidth+stageGap)
		vector.StrokeRect(screen, x, y, stageWidth, stageHeight, borderWidth, borderColor, true)
		if j < cleared {
			fill := barColorFill
			if withBoss && j == stages {
				fill = bossFill
			}
			vector.DrawFilledRect(screen, x+borderWidth, y+borderWidth, stageWidth-borderWidth*2, stageHeight-borderWidth*2, fill, true)
		}
	}
}
