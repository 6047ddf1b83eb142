// cmd/arena-tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"go-fps-factory/internal/app"
	"go-fps-factory/internal/audio"
	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/state"
	iutils "go-fps-factory/internal/utils"
	"go-fps-factory/pkg/logger"
	"go-fps-factory/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const (
	tickInterval = 16 * time.Millisecond
	moveBurst    = 0.15 // seconds of movement per key press
	turnStep     = 0.15 // radians
	hudRows      = 3
)

// Terminal is a top-down text rendering of the arena.
type Terminal struct {
	screen tcell.Screen
	game   *app.Game
	sound  *audio.SoundBoard
	status string

	forward, strafe float64
	moveTimer       float64
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	g := t.game
	phase := g.Phase()
	var err error

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		g.Look(float64(iutils.NormalizeAngle(float32(g.ECS.Player.Yaw+turnStep))), 0)
	case tcell.KeyRight:
		g.Look(float64(iutils.NormalizeAngle(float32(g.ECS.Player.Yaw-turnStep))), 0)
	case tcell.KeyEnter:
		switch {
		case phase == state.MainMenu:
			err = g.EnterHub()
		case phase == state.Hub:
			err = g.StartRun()
		case phase == state.LevelTransition:
			err = g.AdvanceLevel()
		case phase.IsFinal():
			err = g.ReturnToHub()
		}
	case tcell.KeyRune:
		err = t.handleRune(ev.Rune())
	}
	if err != nil {
		t.status = err.Error()
	}
	return true
}

func (t *Terminal) handleRune(r rune) error {
	g := t.game
	switch r {
	case 'w', 's', 'a', 'd':
		t.forward, t.strafe = 0, 0
		switch r {
		case 'w':
			t.forward = 1
		case 's':
			t.forward = -1
		case 'a':
			t.strafe = -1
		case 'd':
			t.strafe = 1
		}
		t.moveTimer = moveBurst
	case ' ':
		_, err := g.Fire()
		return err
	case '1', '2', '3':
		return g.SwitchWeapon(defs.AllWeapons[r-'1'])
	case 'z', 'x', 'c':
		idx := map[rune]int{'z': 0, 'x': 1, 'c': 2}[r]
		n, err := g.ConvertAll(defs.AllResources[idx])
		if err == nil {
			t.status = fmt.Sprintf("converted %d", n)
		}
		return err
	case 'v':
		return g.StartWaveMode()
	case 'p':
		if g.Phase() == state.Paused {
			return g.Resume()
		}
		return g.Pause()
	case 'q':
		return g.QuitToHub()
	case 'R':
		return g.ResetProgress()
	case 'm':
		t.sound.SetMuted(!t.sound.Muted())
	}
	return nil
}

func (t *Terminal) update(deltaTime float64) {
	if t.moveTimer > 0 {
		t.game.MovePlayer(t.forward, t.strafe, deltaTime)
		t.moveTimer -= deltaTime
	}
	t.game.Update(deltaTime)
}

// cell maps a floor position to a screen cell inside the map area.
func (t *Terminal) cell(p utils.Vec3) (int, int, bool) {
	w, h := t.screen.Size()
	h -= hudRows
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	size := config.ArenaHalfSize * 2
	x := int((p.X + config.ArenaHalfSize) / size * float64(w))
	y := int((p.Z + config.ArenaHalfSize) / size * float64(h))
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}
	return x, y + hudRows, true
}

func (t *Terminal) put(p utils.Vec3, r rune, style tcell.Style) {
	if x, y, ok := t.cell(p); ok {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func rgb(c interface{ RGBA() (r, g, b, a uint32) }) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (t *Terminal) draw() {
	g := t.game
	ecs := g.ECS
	t.screen.Clear()
	base := tcell.StyleDefault

	for _, id := range ecs.OrbIDs() {
		orb, pos := ecs.Orbs[id], ecs.Positions[id]
		if pos == nil {
			continue
		}
		if orb.Unlock != "" {
			t.put(pos.Vec3, '$', base.Foreground(tcell.ColorGold).Bold(true))
			continue
		}
		t.put(pos.Vec3, '*', base.Foreground(rgb(config.ResourceColors[string(orb.Resource)])))
	}

	for _, id := range ecs.ActorIDs() {
		a, pos := ecs.Actors[id], ecs.Positions[id]
		if pos == nil || a.Dead {
			continue
		}
		r := rune(a.DefID[0])
		style := base.Foreground(rgb(config.EnemyColors[a.DefID]))
		if a.IsBoss() {
			r, style = 'B', base.Foreground(rgb(config.BossColor)).Bold(true)
		}
		if a.HasShield() {
			style = style.Underline(true)
		}
		if f, ok := ecs.DamageFlashes[id]; ok && f.Timer > 0 {
			style = style.Reverse(true)
		}
		t.put(pos.Vec3, r, style)
	}

	p := ecs.Player
	aim := p.Position.Add(utils.FromAngles(p.Yaw, 0).Scale(3))
	t.put(aim, '+', base.Foreground(tcell.ColorYellow))
	t.put(p.Position, '@', base.Foreground(rgb(config.PlayerColor)).Bold(true))

	hud := fmt.Sprintf("%s  HP %d/%d  %s %d/%d", g.Phase(), p.HP, p.MaxHP, p.Weapon, g.Ledger.Ammo(p.Weapon), g.Ledger.MaxAmmo(p.Weapon))
	if run := ecs.Run; run != nil {
		hud += fmt.Sprintf("  stage %d  kills %d  %.0fs", run.Level, run.Stats.Kills, run.Elapsed)
	}
	t.text(0, 0, hud, base.Foreground(tcell.ColorWhite).Bold(true))

	res := ""
	for _, r := range defs.AllResources {
		res += fmt.Sprintf("%s %d  ", r, g.Ledger.Resource(r))
	}
	t.text(0, 1, res, base.Foreground(tcell.ColorSilver))
	t.text(0, 2, t.status, base.Foreground(tcell.ColorYellow))
	t.screen.Show()
}

func (t *Terminal) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case now := <-ticker.C:
			deltaTime := math.Min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			t.update(deltaTime)
			t.draw()
		}
	}
}

func main() {
	dataDir := flag.String("data", "", "Directory with JSON definition overrides")
	rulesPath := flag.String("rules", "", "JSON rules file")
	savePath := flag.String("save", config.DefaultSaveFileName, "Save file; empty keeps progress in memory")
	seed := flag.Int64("seed", 0, "PRNG seed; 0 picks one from the clock")
	logFile := flag.String("log-file", "arena-tui.log", "Log file; the terminal is taken by the arena")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	mute := flag.Bool("mute", false, "Start without sound")
	flag.Parse()

	level, err := logger.ParseLevel(*logLevel)
	log := logger.New(level, "TUI")
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, ferr := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if ferr != nil {
			fmt.Fprintln(os.Stderr, ferr)
		} else {
			defer f.Close()
			log.SetOutput(f)
		}
	}
	if err != nil {
		log.Warn("%v", err)
	}

	opts, err := app.LoadOptions(*dataDir, *rulesPath, *savePath, *seed, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	game := app.NewGame(opts)
	defer game.Career.Flush()

	sound := audio.NewSoundBoard(log.WithPrefix("AUDIO"))
	if err := sound.Initialize(); err != nil {
		log.Warn("audio disabled: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)
	sound.Subscribe(game.EventDispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	t := &Terminal{
		screen: screen,
		game:   game,
		sound:  sound,
		status: "Enter: hub / start run   v: waves   wasd move   arrows turn   space fire   1-3 weapon   zxc convert   p pause   q hub   m mute   Esc exit",
	}
	t.run()
}
