package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColorToRL converts a standard color to a raylib one.
func ColorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
