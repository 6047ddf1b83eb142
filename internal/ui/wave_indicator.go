package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StageIndicator shows the current level or wave in roman numerals, or BOSS.
type StageIndicator struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	BossColor        rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

func NewStageIndicator(x, y, fontSize float32) *StageIndicator {
	return &StageIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            rl.NewColor(70, 130, 180, 255),
		BossColor:        rl.Red,
		OutlineColor:     rl.White,
		OutlineThickness: 2,
	}
}

func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders stage n. boss replaces the numeral.
func (i *StageIndicator) Draw(n int, boss bool, font rl.Font) {
	text, c := toRoman(n), i.Color
	if boss {
		text, c = "BOSS", i.BossColor
	}
	if text == "" {
		return
	}

	size := rl.MeasureTextEx(font, text, i.FontSize, 1)
	x := i.X - size.X/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(x+float32(dx), i.Y+float32(dy)), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(x, i.Y), i.FontSize, 1, c)
}
