// pkg/render/actor_panel.go
package render

import (
	"fmt"
	"image/color"
	"sort"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
)

// ActorPanel slides up from the bottom edge and shows the selected robot.
type ActorPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	screenWidth  int
	screenHeight int
	currentY     float64
	targetY      float64
}

func NewActorPanel(face font.Face, screenWidth, screenHeight int) *ActorPanel {
	return &ActorPanel{
		fontFace:     face,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		currentY:     float64(screenHeight),
		targetY:      float64(screenHeight),
	}
}

// Show selects id and starts the slide-in.
func (p *ActorPanel) Show(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetY = float64(p.screenHeight - panelHeight)
}

// Hide starts the slide-out.
func (p *ActorPanel) Hide() {
	p.IsVisible = false
	p.targetY = float64(p.screenHeight)
}

// Update animates the panel and hides it once the robot is gone.
func (p *ActorPanel) Update(deltaTime float64, ecs *entity.ECS) {
	if p.IsVisible {
		if a, ok := ecs.Actors[p.TargetEntity]; !ok || a.Dead {
			p.Hide()
		}
	}
	p.currentY += (p.targetY - p.currentY) * min(1, animationSpeed*deltaTime)
}

// Draw renders the panel if any part of it is on screen.
func (p *ActorPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if p.currentY >= float64(p.screenHeight)-1 {
		return
	}
	a, ok := ecs.Actors[p.TargetEntity]
	if !ok {
		return
	}
	y := float32(p.currentY)
	w := float32(p.screenWidth - 2*panelMargin)
	vector.DrawFilledRect(screen, panelMargin, y, w, panelHeight-panelMargin, color.RGBA{20, 20, 30, 230}, false)
	vector.StrokeRect(screen, panelMargin, y, w, panelHeight-panelMargin, 2, color.RGBA{70, 100, 120, 255}, false)

	white := color.RGBA{255, 255, 255, 255}
	gray := color.RGBA{150, 150, 150, 255}
	x := panelMargin + 15
	line := int(y) + 25

	title := a.Name
	if a.IsBoss() && len(a.Phases) > 0 {
		title = fmt.Sprintf("%s [%s]", a.Name, a.Phases[a.Phase].Name)
	}
	text.Draw(screen, title, p.fontFace, x, line, white)
	line += lineHeight
	text.Draw(screen, fmt.Sprintf("HP %.0f / %.0f", a.Health.Value, a.Health.Max), p.fontFace, x, line, white)
	line += lineHeight
	if a.Shield != nil {
		status := fmt.Sprintf("Shield %.0f / %.0f", a.Shield.HP, a.Shield.Max)
		c := white
		if a.Shield.Broken {
			status, c = "Shield BROKEN", gray
		}
		text.Draw(screen, status, p.fontFace, x, line, c)
		line += lineHeight
	}
	text.Draw(screen, "Weak to: "+formatMultipliers(a.Weaknesses), p.fontFace, x, line, gray)

	col := x + 320
	line = int(y) + 25
	text.Draw(screen, fmt.Sprintf("Speed %.1f  Contact %d", a.Speed, a.ContactDamage), p.fontFace, col, line, gray)
	line += lineHeight
	if a.WeakSpot != nil {
		text.Draw(screen, "Weak spot: "+formatMultipliers(a.WeakSpot.Multipliers), p.fontFace, col, line, gray)
		line += lineHeight
	}
	text.Draw(screen, "Drops: "+formatLoot(a), p.fontFace, col, line, gray)
}

func formatMultipliers(m defs.Multipliers) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for w := range m {
		keys = append(keys, string(w))
	}
	sort.Strings(keys)
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s x%.1f", k, m[defs.WeaponType(k)])
	}
	return out
}

func formatLoot(a *component.Actor) string {
	if len(a.Loot) == 0 && a.Guaranteed == "" {
		return "-"
	}
	out := ""
	for i, l := range a.Loot {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d %s (%.0f%%)", l.Amount, l.Resource, l.Chance*100)
	}
	if a.Guaranteed != "" {
		if out != "" {
			out += ", "
		}
		out += string(a.Guaranteed)
	}
	return out
}
