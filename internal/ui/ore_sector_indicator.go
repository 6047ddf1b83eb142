// internal/ui/ore_sector_indicator.go
package ui

import (
	"go-fps-factory/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AmmoGauge is one weapon's reading for AmmoBars.
type AmmoGauge struct {
	Weapon   defs.WeaponType
	Label    string
	Ammo     int
	Max      int
	Locked   bool
	Selected bool
}

// AmmoBars draws one vertical bar per weapon, filled by ammo over maximum.
type AmmoBars struct {
	X, Y          float32
	Width, Height float32
	Spacing       float32
}

func NewAmmoBars(x, y, width, height float32) *AmmoBars {
	return &AmmoBars{X: x, Y: y, Width: width, Height: height, Spacing: 10}
}

func (i *AmmoBars) Draw(gauges []AmmoGauge) {
	if len(gauges) == 0 {
		return
	}
	barWidth := (i.Width - i.Spacing*float32(len(gauges)-1)) / float32(len(gauges))
	x := i.X
	for _, g := range gauges {
		rl.DrawRectangle(int32(x), int32(i.Y), int32(barWidth), int32(i.Height), rl.NewColor(30, 30, 40, 220))

		pct := float32(0)
		if g.Max > 0 {
			pct = float32(g.Ammo) / float32(g.Max)
		}
		if pct > 0 {
			fillHeight := i.Height * pct
			var fill rl.Color
			switch {
			case pct > 0.66:
				fill = rl.Blue
			case pct > 0.33:
				fill = rl.Yellow
			default:
				fill = rl.Red
			}
			rl.DrawRectangle(int32(x), int32(i.Y+i.Height-fillHeight), int32(barWidth), int32(fillHeight), fill)
		}

		border := rl.LightGray
		if g.Selected {
			border = rl.White
		}
		rl.DrawRectangleLinesEx(rl.NewRectangle(x, i.Y, barWidth, i.Height), 2, border)
		if g.Locked {
			rl.DrawLineEx(rl.NewVector2(x, i.Y+i.Height), rl.NewVector2(x+barWidth, i.Y), 2, rl.Red)
		}
		rl.DrawText(g.Label, int32(x), int32(i.Y+i.Height)+4, 10, rl.White)

		x += barWidth + i.Spacing
	}
}
