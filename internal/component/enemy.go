// internal/component/enemy.go
package component

import (
	"go-fps-factory/internal/defs"
)

// Actor is a robot or a boss. Optional behaviour is carried by nil-able
// capability fields instead of separate types.
type Actor struct {
	DefID      string
	Name       string
	Tier       defs.Tier
	Level      int // level or wave the actor was spawned for, 0 if none
	Health     Health
	Weaknesses defs.Multipliers
	Shield     *Shield
	WeakSpot   *WeakSpot
	Loot       []defs.LootEntry
	Radius     float64

	// Boss-only capabilities.
	Guaranteed defs.UnlockID
	Rewards    []defs.RewardEntry
	Phases     []defs.BossPhase
	Phase      int

	Speed           float64
	BaseSpeed       float64
	ContactDamage   int
	BaseContact     int
	ContactCooldown float64

	Dead        bool
	LootDropped bool
}

// NewActor builds a live actor from an enemy definition.
func NewActor(def defs.EnemyDefinition, level int) *Actor {
	a := &Actor{
		DefID:         def.ID,
		Name:          def.Name,
		Tier:          defs.TierNormal,
		Level:         level,
		Health:        Health{Value: def.HP, Max: def.HP},
		Weaknesses:    def.Weaknesses.Clone(),
		Loot:          append([]defs.LootEntry(nil), def.Drops...),
		Radius:        def.Radius,
		Speed:         def.Speed,
		BaseSpeed:     def.Speed,
		ContactDamage: def.ContactDamage,
		BaseContact:   def.ContactDamage,
	}
	if def.Shield != nil {
		a.Shield = &Shield{
			HP:         def.Shield.HP,
			Max:        def.Shield.HP,
			Resistance: def.Shield.Resistance.Clone(),
		}
	}
	if def.WeakSpot != nil {
		a.WeakSpot = &WeakSpot{
			Offset:      def.WeakSpot.Offset,
			Radius:      def.WeakSpot.Radius,
			Multipliers: def.WeakSpot.Multipliers.Clone(),
		}
	}
	return a
}

// NewBoss builds a boss-tier actor with its guaranteed drop and reward table.
func NewBoss(def defs.BossDefinition) *Actor {
	a := NewActor(def.EnemyDefinition, 0)
	a.Tier = defs.TierBoss
	a.Guaranteed = def.Guaranteed
	a.Rewards = append([]defs.RewardEntry(nil), def.Rewards...)
	a.Phases = append([]defs.BossPhase(nil), def.Phases...)
	return a
}

func (a *Actor) IsBoss() bool  { return a.Tier == defs.TierBoss }
func (a *Actor) IsAlive() bool { return !a.Dead }

// HasShield reports whether the actor still has an intact shield.
func (a *Actor) HasShield() bool { return a.Shield.Intact() }
