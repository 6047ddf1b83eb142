// internal/component/movement.go
package component

import "go-fps-factory/pkg/utils"

// Position is a point in arena space; Y is up.
type Position struct {
	utils.Vec3
}

// Velocity is the current movement vector in units per second.
type Velocity struct {
	utils.Vec3
}
