package event

import (
	"go-fps-factory/internal/component"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/types"
	"go-fps-factory/pkg/utils"
)

type ActorSpawnedData struct {
	ID       types.EntityID
	DefID    string
	Level    int
	Boss     bool
	Position utils.Vec3
}

type ActorDamagedData struct {
	ID      types.EntityID
	DefID   string
	Weapon  defs.WeaponType
	Outcome component.DamageOutcome
	HP      float64
	Shield  float64
}

// LootDrop is one resource or unlock pickup emitted by a death.
type LootDrop struct {
	Resource defs.ResourceType
	Amount   int
	Unlock   defs.UnlockID
	Position utils.Vec3
}

type ActorDiedData struct {
	ID    types.EntityID
	DefID string
	Level int
	Boss  bool
	Loot  []LootDrop
}

type ShieldBrokenData struct {
	ID    types.EntityID
	DefID string
}

type BossPhaseData struct {
	ID    types.EntityID
	Phase int
	Name  string
}

type PhaseChangedData struct {
	From, To  string
	TimeScale float64
}

type LevelStartedData struct {
	Level       int
	Title       string
	Composition map[string]int
}

type LevelCompletedData struct {
	Level   int
	Rewards map[defs.ResourceType]int
}

type RunStartedData struct {
	RunID string
	Mode  component.Mode
}

type RunEndedData struct {
	Summary component.Summary
}

type WaveData struct {
	Wave        int
	Composition map[string]int
}

type WaveCountdownData struct {
	NextWave  int
	Remaining int
}

type ResourceChangedData struct {
	Resource defs.ResourceType
	Amount   int
	Delta    int
}

type AmmoChangedData struct {
	Weapon defs.WeaponType
	Amount int
	Max    int
}

type WeaponSwitchedData struct {
	Weapon defs.WeaponType
}

type UnlockData struct {
	ID   defs.UnlockID
	Name string
}

type OrbCollectedData struct {
	ID       types.EntityID
	Resource defs.ResourceType
	Amount   int
	Unlock   defs.UnlockID
}

type ShotFiredData struct {
	Weapon   defs.WeaponType
	Hit      bool
	Target   types.EntityID
	Critical bool
	From, To utils.Vec3
}

type PlayerDamagedData struct {
	Amount int
	HP     int
	Source string
}
