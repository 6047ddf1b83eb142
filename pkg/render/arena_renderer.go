package render

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/entity"
	"go-fps-factory/internal/types"
	vec "go-fps-factory/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ArenaRenderer draws the arena from above: world X to the right, world -Z up.
type ArenaRenderer struct {
	pixelsPerUnit float64
	screenWidth   int
	screenHeight  int
	colors        *ArenaColors
	fontFace      font.Face
	floorImage    *ebiten.Image // pre-rendered floor and grid
}

// LoadFontFace reads a TTF file. It falls back to the built-in bitmap face
// when the file is missing or unreadable.
func LoadFontFace(path string, size float64) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

func NewArenaRenderer(pixelsPerUnit float64, screenWidth, screenHeight int, face font.Face, colors *ArenaColors) *ArenaRenderer {
	if face == nil {
		face = basicfont.Face7x13
	}
	if colors == nil {
		colors = DefaultArenaColors()
	}
	r := &ArenaRenderer{
		pixelsPerUnit: pixelsPerUnit,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
		colors:        colors,
		fontFace:      face,
	}
	r.RenderFloor()
	return r
}

// FontFace is the face used for labels.
func (r *ArenaRenderer) FontFace() font.Face { return r.fontFace }

// WorldToScreen projects a world position onto the screen.
func (r *ArenaRenderer) WorldToScreen(p vec.Vec3) (float32, float32) {
	x := float64(r.screenWidth)/2 + p.X*r.pixelsPerUnit
	y := float64(r.screenHeight)/2 + p.Z*r.pixelsPerUnit
	return float32(x), float32(y)
}

// ScreenToWorld maps a screen pixel back onto the floor plane.
func (r *ArenaRenderer) ScreenToWorld(x, y int) vec.Vec3 {
	wx := (float64(x) - float64(r.screenWidth)/2) / r.pixelsPerUnit
	wz := (float64(y) - float64(r.screenHeight)/2) / r.pixelsPerUnit
	return vec.V3(wx, 0, wz)
}

// RenderFloor draws the arena floor into the cached image.
func (r *ArenaRenderer) RenderFloor() {
	img := ebiten.NewImage(r.screenWidth, r.screenHeight)
	img.Fill(r.colors.Background)

	half := config.ArenaHalfSize
	x0, y0 := r.WorldToScreen(vec.V3(-half, 0, -half))
	x1, y1 := r.WorldToScreen(vec.V3(half, 0, half))
	vector.DrawFilledRect(img, x0, y0, x1-x0, y1-y0, r.colors.Floor, false)

	for g := -half; g <= half; g += 10 {
		gx, _ := r.WorldToScreen(vec.V3(g, 0, 0))
		_, gy := r.WorldToScreen(vec.V3(0, 0, g))
		vector.StrokeLine(img, gx, y0, gx, y1, 1, r.colors.Grid, false)
		vector.StrokeLine(img, x0, gy, x1, gy, 1, r.colors.Grid, false)
	}
	vector.StrokeRect(img, x0, y0, x1-x0, y1-y0, r.colors.StrokeWidth, r.colors.TextLight, false)

	ringX, ringY := r.WorldToScreen(vec.V3(0, 0, 0))
	vector.StrokeCircle(img, ringX, ringY, float32(config.SpawnRingRadius*r.pixelsPerUnit), 1, DarkenColor(r.colors.Grid), true)
	r.floorImage = img
}

// Draw renders one frame of the arena.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, selected types.EntityID) {
	screen.DrawImage(r.floorImage, nil)

	for _, id := range ecs.OrbIDs() {
		r.drawOrb(screen, ecs, id)
	}
	for _, id := range ecs.ActorIDs() {
		r.drawActor(screen, ecs, id, id == selected)
	}
	for _, tr := range ecs.Tracers {
		fx, fy := r.WorldToScreen(tr.From)
		tx, ty := r.WorldToScreen(tr.To)
		c := r.colors.Tracer
		if tr.Duration > 0 {
			c.A = uint8(float64(c.A) * math.Max(0, tr.Timer/tr.Duration))
		}
		vector.StrokeLine(screen, fx, fy, tx, ty, 1.5, c, true)
	}
	r.drawPlayer(screen, ecs.Player)
}

func (r *ArenaRenderer) drawOrb(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	orb := ecs.Orbs[id]
	pos, ok := ecs.Positions[id]
	if !ok {
		return
	}
	x, y := r.WorldToScreen(pos.Vec3)
	if orb.Unlock != "" {
		vector.DrawFilledRect(screen, x-5, y-5, 10, 10, r.colors.Boss, true)
		vector.StrokeRect(screen, x-5, y-5, 10, 10, 1, r.colors.TextLight, true)
		return
	}
	c := r.colors.Resource(string(orb.Resource))
	radius := float32(3)
	if orb.Attracted {
		radius = 4
	}
	vector.DrawFilledCircle(screen, x, y, radius, c, true)
}

func (r *ArenaRenderer) drawActor(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, selected bool) {
	a := ecs.Actors[id]
	pos, ok := ecs.Positions[id]
	if !ok {
		return
	}
	x, y := r.WorldToScreen(pos.Vec3)
	radius := float32(a.Radius * r.pixelsPerUnit)

	body := r.colors.Enemy(a.DefID)
	if a.IsBoss() {
		body = r.colors.Boss
	}
	if a.Dead {
		body = DarkenColor(body)
	}
	if flash, ok := ecs.DamageFlashes[id]; ok && flash.Timer > 0 {
		body = r.colors.Flash
		if flash.Critical {
			body = r.colors.Critical
		}
	}
	vector.DrawFilledCircle(screen, x, y, radius, body, true)

	if a.HasShield() {
		vector.StrokeCircle(screen, x, y, radius+3, r.colors.StrokeWidth, r.colors.Shield, true)
	}
	if selected {
		vector.StrokeCircle(screen, x, y, radius+6, 1, r.colors.TextLight, true)
	}
	r.drawHealthBar(screen, a, x, y-radius-8, radius*2)
}

func (r *ArenaRenderer) drawHealthBar(screen *ebiten.Image, a *component.Actor, cx, y, width float32) {
	if width < 12 {
		width = 12
	}
	x := cx - width/2
	vector.DrawFilledRect(screen, x, y, width, 3, r.colors.TextDark, false)
	vector.DrawFilledRect(screen, x, y, width*float32(a.Health.Fraction()), 3, color.RGBA{220, 60, 60, 255}, false)
	if a.Shield != nil && a.Shield.Max > 0 && !a.Shield.Broken {
		vector.DrawFilledRect(screen, x, y-4, width*float32(a.Shield.HP/a.Shield.Max), 2, r.colors.Shield, false)
	}
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, p *component.PlayerState) {
	x, y := r.WorldToScreen(p.Position)
	fwd := vec.FromAngles(p.Yaw, 0)
	tipX, tipY := r.WorldToScreen(p.Position.Add(fwd.Scale(3)))
	c := r.colors.Player
	if p.Dead {
		c = DarkenColor(c)
	}
	vector.DrawFilledCircle(screen, x, y, 5, c, true)
	vector.StrokeLine(screen, x, y, tipX, tipY, 2, c, true)
}

// PickActor returns the live actor under a screen pixel.
func (r *ArenaRenderer) PickActor(ecs *entity.ECS, x, y int) (types.EntityID, bool) {
	p := r.ScreenToWorld(x, y)
	for _, id := range ecs.ActorIDs() {
		a := ecs.Actors[id]
		pos, ok := ecs.Positions[id]
		if !ok || a.Dead {
			continue
		}
		if pos.Vec3.Sub(p).Flat().Len() <= a.Radius {
			return id, true
		}
	}
	return 0, false
}

// DrawLabel writes a line of text at a screen position.
func (r *ArenaRenderer) DrawLabel(screen *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(screen, s, r.fontFace, x, y, c)
}

// DrawBanner centers a large message, e.g. a phase name.
func (r *ArenaRenderer) DrawBanner(screen *ebiten.Image, s string) {
	bounds := text.BoundString(r.fontFace, s)
	x := (r.screenWidth - bounds.Dx()) / 2
	y := r.screenHeight / 3
	vector.DrawFilledRect(screen, float32(x-10), float32(y-bounds.Dy()-8), float32(bounds.Dx()+20), float32(bounds.Dy()+16), color.RGBA{0, 0, 0, 160}, false)
	text.Draw(screen, s, r.fontFace, x, y, r.colors.TextLight)
}

// Status is a one-line HUD summary.
func Status(phase string, hp, maxHP int, weapon string, ammo, maxAmmo int) string {
	return fmt.Sprintf("%s  HP %d/%d  %s %d/%d", phase, hp, maxHP, weapon, ammo, maxAmmo)
}
