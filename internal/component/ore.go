// internal/component/ore.go
package component

import "go-fps-factory/internal/defs"

// Orb is a dropped resource pickup waiting in the arena.
type Orb struct {
	Resource  defs.ResourceType
	Amount    int
	Unlock    defs.UnlockID // non-empty for a boss blueprint drop
	Age       float64
	Attracted bool
}
