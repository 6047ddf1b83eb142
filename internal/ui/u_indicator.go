// internal/ui/u_indicator.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AutoConvertIndicator shows an "A" that is struck through while automatic
// resource conversion is off.
type AutoConvertIndicator struct {
	X, Y float32
	Size float32
	Font rl.Font
}

func NewAutoConvertIndicator(x, y, size float32, font rl.Font) *AutoConvertIndicator {
	return &AutoConvertIndicator{X: x, Y: y, Size: size, Font: font}
}

func (i *AutoConvertIndicator) Draw(enabled bool) {
	text := "A"
	c := rl.NewColor(120, 120, 120, 255)
	if enabled {
		c = rl.NewColor(80, 220, 120, 255)
	}
	size := rl.MeasureTextEx(i.Font, text, i.Size, 1.0)
	rl.DrawTextEx(i.Font, text, rl.NewVector2(i.X-size.X/2, i.Y-size.Y/2), i.Size, 1.0, c)

	if !enabled {
		from := rl.NewVector2(i.X-size.X/2, i.Y+size.Y/2)
		to := rl.NewVector2(i.X+size.X/2, i.Y-size.Y/2)
		rl.DrawLineEx(from, to, 2, rl.Red)
	}
}
