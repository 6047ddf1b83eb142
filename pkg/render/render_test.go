package render

import (
	"image/color"
	"testing"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/defs"
)

func TestColorLookups(t *testing.T) {
	c := DefaultArenaColors()
	if got := c.Enemy("nobody"); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("Expected gray for an unknown robot, got %v", got)
	}
	if got := c.Resource("metal"); got != c.Resources["metal"] {
		t.Errorf("Expected metal color %v, got %v", c.Resources["metal"], got)
	}
	if got := c.Resource("unobtainium"); got != c.TextLight {
		t.Errorf("Expected fallback %v, got %v", c.TextLight, got)
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFormatMultipliersIsSorted(t *testing.T) {
	got := formatMultipliers(defs.Multipliers{defs.WeaponThermal: 2, defs.WeaponFlux: 0.5})
	want := "flux x0.5, thermal x2.0"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got := formatMultipliers(nil); got != "-" {
		t.Errorf("Expected -, got %q", got)
	}
}

func TestFormatLoot(t *testing.T) {
	a := &component.Actor{
		Loot:       []defs.LootEntry{{Resource: defs.ResourceMetal, Amount: 2, Chance: 0.5}},
		Guaranteed: defs.UnlockThermalPanel,
	}
	want := "2 metal (50%), " + string(defs.UnlockThermalPanel)
	if got := formatLoot(a); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStatus(t *testing.T) {
	got := Status("LEVEL_1", 80, 100, "kinetic", 49, 100)
	want := "LEVEL_1  HP 80/100  kinetic 49/100"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
