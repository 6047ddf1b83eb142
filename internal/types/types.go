// internal/types/types.go
package types

// EntityID identifies anything the ECS stores: robots, bosses and orbs.
// Zero is never allocated.
type EntityID uint64
