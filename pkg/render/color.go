// pkg/render/color.go
package render

import (
	"image/color"

	"go-fps-factory/internal/config"
)

// ArenaColors holds every color the top-down view draws with.
type ArenaColors struct {
	Background  color.RGBA
	Floor       color.RGBA
	Grid        color.RGBA
	Player      color.RGBA
	Shield      color.RGBA
	Boss        color.RGBA
	TextLight   color.RGBA
	TextDark    color.RGBA
	Flash       color.RGBA
	Critical    color.RGBA
	Tracer      color.RGBA
	Enemies     map[string]color.RGBA
	Resources   map[string]color.RGBA
	StrokeWidth float32
}

// DefaultArenaColors builds the palette from the game config.
func DefaultArenaColors() *ArenaColors {
	return &ArenaColors{
		Background:  config.BackgroundColor,
		Floor:       config.FloorColor,
		Grid:        config.GridColor,
		Player:      config.PlayerColor,
		Shield:      config.ShieldColor,
		Boss:        config.BossColor,
		TextLight:   config.TextLightColor,
		TextDark:    config.TextDarkColor,
		Flash:       color.RGBA{255, 255, 255, 255},
		Critical:    color.RGBA{255, 215, 0, 255},
		Tracer:      color.RGBA{255, 240, 150, 200},
		Enemies:     config.EnemyColors,
		Resources:   config.ResourceColors,
		StrokeWidth: 2,
	}
}

// Enemy returns the body color for a robot type, gray when unknown.
func (c *ArenaColors) Enemy(defID string) color.RGBA {
	if col, ok := c.Enemies[defID]; ok {
		return col
	}
	return color.RGBA{128, 128, 128, 255}
}

// Resource returns the orb color for a resource type.
func (c *ArenaColors) Resource(r string) color.RGBA {
	if col, ok := c.Resources[r]; ok {
		return col
	}
	return c.TextLight
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
