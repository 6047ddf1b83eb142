package utils

import (
	"math"
	"testing"
)

func TestRaySphere(t *testing.T) {
	tests := []struct {
		name   string
		origin Vec3
		dir    Vec3
		center Vec3
		radius float64
		hit    bool
		dist   float64
	}{
		{"straight hit", V3(0, 0, 0), V3(0, 0, -1), V3(0, 0, -10), 1, true, 9},
		{"miss to the side", V3(0, 0, 0), V3(0, 0, -1), V3(3, 0, -10), 1, false, 0},
		{"behind origin", V3(0, 0, 0), V3(0, 0, 1), V3(0, 0, -10), 1, false, 0},
		{"origin inside", V3(0, 0, -10), V3(0, 0, -1), V3(0, 0, -10), 2, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := RaySphere(tt.origin, tt.dir, tt.center, tt.radius)
			if ok != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, ok)
			}
			if ok && math.Abs(d-tt.dist) > 1e-9 {
				t.Errorf("Expected distance %v, got %v", tt.dist, d)
			}
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector, got %+v", got)
	}
	n := V3(3, 0, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", n.Len())
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 5) != 0 || Clamp(7, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Error("Clamp returned a value outside the range")
	}
}

func TestFromAngles(t *testing.T) {
	d := FromAngles(0, 0)
	if math.Abs(d.Z+1) > 1e-9 || math.Abs(d.X) > 1e-9 || math.Abs(d.Y) > 1e-9 {
		t.Errorf("Expected yaw 0 to face -Z, got %+v", d)
	}
	up := FromAngles(0, math.Pi/2)
	if math.Abs(up.Y-1) > 1e-9 {
		t.Errorf("Expected pitch pi/2 to face up, got %+v", up)
	}
	if l := FromAngles(1.2, -0.4).Len(); math.Abs(l-1) > 1e-9 {
		t.Errorf("Expected unit length, got %v", l)
	}
}
