// internal/screen/state.go
package screen

import (
	"go-fps-factory/internal/app"
	"go-fps-factory/internal/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is one screen of the windowed client.
type State interface {
	Enter()
	Update(deltaTime float64)
	// Draw renders the 3D pass, inside BeginMode3D.
	Draw()
	// DrawUI renders the 2D overlay after the 3D pass.
	DrawUI()
	Exit()
}

// Context is what every screen shares.
type Context struct {
	Game   *app.Game
	Font   rl.Font
	Camera *rl.Camera3D
	Models *assets.ModelManager
	Quit   func()
}

// StateMachine holds the active screen.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState exits the current screen and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}

func (sm *StateMachine) DrawUI() {
	if sm.current != nil {
		sm.current.DrawUI()
	}
}
