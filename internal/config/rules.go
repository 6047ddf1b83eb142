package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-fps-factory/internal/defs"
)

// PostBreakPolicy selects the multiplier table used once a shield is gone.
type PostBreakPolicy string

const (
	// PostBreakFixedTable uses Rules.PostBreakMultipliers for every shielded robot.
	PostBreakFixedTable PostBreakPolicy = "fixed_table"
	// PostBreakBaseWeakness falls back to the robot's own weakness profile.
	PostBreakBaseWeakness PostBreakPolicy = "base_weakness"
)

// AdvancePolicy selects how a cleared level moves on to the next one.
type AdvancePolicy string

const (
	AdvanceAuto   AdvancePolicy = "auto"
	AdvanceManual AdvancePolicy = "manual"
)

// Rules are the gameplay switches a run is played under.
type Rules struct {
	PostBreak            PostBreakPolicy  `json:"post_break"`
	PostBreakMultipliers defs.Multipliers `json:"post_break_multipliers"`
	Advance              AdvancePolicy    `json:"advance"`
	AutoConvert          bool             `json:"auto_convert"`
	PlayerMaxHP          int              `json:"player_max_hp"`
}

var ErrInvalidRules = errors.New("invalid rules")

// DefaultRules returns the rules the game ships with.
func DefaultRules() Rules {
	return Rules{
		PostBreak: PostBreakFixedTable,
		PostBreakMultipliers: defs.Multipliers{
			defs.WeaponKinetic: 1.0,
			defs.WeaponFlux:    0.5,
			defs.WeaponThermal: 0.5,
		},
		Advance:     AdvanceAuto,
		AutoConvert: true,
		PlayerMaxHP: PlayerMaxHP,
	}
}

// LoadRules reads a JSON file on top of DefaultRules. Fields absent from the
// file keep their default values.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := json.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return rules, err
	}
	return rules, nil
}

func (r Rules) Validate() error {
	switch r.PostBreak {
	case PostBreakFixedTable, PostBreakBaseWeakness:
	default:
		return fmt.Errorf("%w: post_break %q", ErrInvalidRules, r.PostBreak)
	}
	switch r.Advance {
	case AdvanceAuto, AdvanceManual:
	default:
		return fmt.Errorf("%w: advance %q", ErrInvalidRules, r.Advance)
	}
	for w, m := range r.PostBreakMultipliers {
		if m < 0 {
			return fmt.Errorf("%w: negative post-break multiplier for %s", ErrInvalidRules, w)
		}
	}
	if r.PlayerMaxHP <= 0 {
		return fmt.Errorf("%w: player_max_hp must be positive", ErrInvalidRules)
	}
	return nil
}
