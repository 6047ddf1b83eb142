// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button is a clickable labeled rectangle for menus and result screens.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
	Disabled   bool
}

func NewButton(rect rl.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  rl.Black,
		BgColor:    rl.LightGray,
		HoverColor: rl.Gray,
		Font:       font,
		FontSize:   24,
	}
}

// IsClicked reports a left click inside the button this frame.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return !b.Disabled && rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	switch {
	case b.Disabled:
		bgColor = rl.DarkGray
	case rl.CheckCollisionPointRec(mousePos, b.Rect):
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2
	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}

// ButtonColumn lays out buttons of equal size centered on the screen.
func ButtonColumn(font rl.Font, screenWidth, top int, labels ...string) []*Button {
	const w, h, gap = 320, 50, 16
	out := make([]*Button, len(labels))
	for i, label := range labels {
		rect := rl.NewRectangle(float32(screenWidth-w)/2, float32(top+i*(h+gap)), w, h)
		out[i] = NewButton(rect, label, font)
	}
	return out
}
