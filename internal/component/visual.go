// internal/component/visual.go
package component

import "go-fps-factory/pkg/utils"

// DamageFlash marks an actor to be drawn in the hit color for a moment.
type DamageFlash struct {
	Timer    float64
	Duration float64
	Critical bool
}

// Tracer is a short-lived shot line for renderers.
type Tracer struct {
	From, To utils.Vec3
	Timer    float64
	Duration float64
}
