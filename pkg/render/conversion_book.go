// pkg/render/conversion_book.go
package render

import (
	"fmt"
	"image/color"

	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ConversionBook lists every resource to ammo conversion with the current
// balances. Rows that cannot convert right now are grayed out.
type ConversionBook struct {
	IsVisible bool
	X, Y      float32
	Width     float32
	Height    float32
	fontFace  font.Face
	lib       *defs.Library
}

func NewConversionBook(x, y, width, height float32, face font.Face, lib *defs.Library) *ConversionBook {
	return &ConversionBook{X: x, Y: y, Width: width, Height: height, fontFace: face, lib: lib}
}

// Toggle flips the book's visibility.
func (cb *ConversionBook) Toggle() {
	cb.IsVisible = !cb.IsVisible
}

// Draw renders the book if it is open.
func (cb *ConversionBook) Draw(screen *ebiten.Image, ledger *system.Ledger) {
	if !cb.IsVisible {
		return
	}
	white := color.RGBA{255, 255, 255, 255}
	gray := color.RGBA{100, 100, 100, 255}

	vector.DrawFilledRect(screen, cb.X, cb.Y, cb.Width, cb.Height, color.RGBA{20, 20, 30, 230}, false)
	vector.StrokeRect(screen, cb.X, cb.Y, cb.Width, cb.Height, 2, color.RGBA{70, 100, 120, 255}, false)

	title := "Conversions"
	tb := text.BoundString(cb.fontFace, title)
	titleY := int(cb.Y) + 30
	text.Draw(screen, title, cb.fontFace, int(cb.X+(cb.Width-float32(tb.Dx()))/2), titleY, white)

	lh := cb.fontFace.Metrics().Height.Ceil()
	y := titleY + lh*2
	for i, r := range defs.AllResources {
		res, ok := cb.lib.Resources[r]
		if !ok {
			continue
		}
		ammo := cb.lib.Ammo[res.Ammo]
		locked := ledger.WeaponLocked(res.Ammo)
		have := ledger.Resource(r)
		full := ledger.Ammo(res.Ammo) >= ledger.MaxAmmo(res.Ammo)

		c := white
		if locked || have == 0 || full {
			c = gray
		}
		row := fmt.Sprintf("%3d %-12s = %-15s %3d/%d", have, res.Name, ammo.Name, ledger.Ammo(res.Ammo), ledger.MaxAmmo(res.Ammo))
		if locked {
			row += "  LOCKED"
		}
		text.Draw(screen, fmt.Sprintf("[%d] %s", i+1, row), cb.fontFace, int(cb.X)+20, y+i*lh*3/2, c)
	}
}
