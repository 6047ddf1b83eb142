package utils

import (
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestLerp(t *testing.T) {
	if got := Lerp(0, 120, 0.25); !near(got, 30) {
		t.Errorf("Expected 30, got %f", got)
	}
}

func TestLerpAngleTakesShortestArc(t *testing.T) {
	from := float32(math.Pi - 0.1)
	to := float32(-math.Pi + 0.1)
	got := LerpAngle(from, to, 0.5)
	if !near(float32(math.Abs(float64(got))), math.Pi) {
		t.Errorf("Expected halfway across the seam at +-pi, got %f", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); !near(got, math.Pi) && !near(got, -math.Pi) {
		t.Errorf("Expected +-pi, got %f", got)
	}
	if got := NormalizeAngle(-0.5); !near(got, -0.5) {
		t.Errorf("Expected -0.5, got %f", got)
	}
}

func TestClampPitch(t *testing.T) {
	limit := float32(math.Pi/2 - 0.05)
	if got := ClampPitch(3); !near(got, limit) {
		t.Errorf("Expected %f, got %f", limit, got)
	}
	if got := ClampPitch(-3); !near(got, -limit) {
		t.Errorf("Expected %f, got %f", -limit, got)
	}
	if got := ClampPitch(0.2); !near(got, 0.2) {
		t.Errorf("Expected 0.2, got %f", got)
	}
}
