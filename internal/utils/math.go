// internal/utils/math.go
package utils

import "math"

// Lerp does standard linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(from, to float32, t float32) float32 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle wraps an angle into [-pi, pi].
func NormalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// ClampPitch keeps a first-person pitch short of straight up or down.
func ClampPitch(pitch float32) float32 {
	const limit = math.Pi/2 - 0.05
	if pitch > limit {
		return limit
	}
	if pitch < -limit {
		return -limit
	}
	return pitch
}
