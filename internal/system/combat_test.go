package system

import (
	"testing"

	"go-fps-factory/internal/component"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/event"
	vec "go-fps-factory/pkg/utils"
)

func TestCombatKillsOnExactHit(t *testing.T) {
	h := defaultHarness()
	id, _ := h.spawner.SpawnEnemy(defs.EnemyStandard, 1)
	hit := component.DamageEvent{Amount: 20, Weapon: defs.WeaponKinetic}
	for i := 1; i <= 4; i++ {
		if out := h.combat.ApplyDamage(id, hit); out.Killed {
			t.Fatalf("Expected robot alive after hit %d", i)
		}
	}
	if h.ecs.Actors[id].Health.Value != 20 {
		t.Errorf("Expected 20 HP left, got %v", h.ecs.Actors[id].Health.Value)
	}
	if out := h.combat.ApplyDamage(id, hit); !out.Killed {
		t.Error("Expected the fifth hit to kill")
	}
	if h.log.count(event.ActorDied) != 1 {
		t.Errorf("Expected 1 ActorDied, got %d", h.log.count(event.ActorDied))
	}
}

func TestCombatOverkillClampsToZero(t *testing.T) {
	h := defaultHarness()
	id, _ := h.spawner.SpawnEnemy(defs.EnemyHeavy, 1)
	h.combat.ApplyDamage(id, component.DamageEvent{Amount: 5000, Weapon: defs.WeaponThermal})
	if hp := h.ecs.Actors[id].Health.Value; hp != 0 {
		t.Errorf("Expected HP clamped to 0, got %v", hp)
	}
}

func TestCombatIgnoresDeadAndPanicsOnUnknown(t *testing.T) {
	h := defaultHarness()
	id, _ := h.spawner.SpawnEnemy(defs.EnemyStandard, 1)
	h.combat.ApplyDamage(id, component.DamageEvent{Amount: 500, Weapon: defs.WeaponKinetic})
	if out := h.combat.ApplyDamage(id, component.DamageEvent{Amount: 500, Weapon: defs.WeaponKinetic}); out.Killed || out.Amount != 0 {
		t.Errorf("Expected a no-op on a dead robot, got %+v", out)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for an unknown actor")
		}
	}()
	h.combat.ApplyDamage(9999, component.DamageEvent{Amount: 1, Weapon: defs.WeaponKinetic})
}

func TestShieldBreakDiscardsExcess(t *testing.T) {
	h := defaultHarness()
	id, _ := h.spawner.SpawnEnemy(defs.EnemyShielded, 1)
	out := h.combat.ApplyDamage(id, component.DamageEvent{Amount: 250, Weapon: defs.WeaponFlux})
	if !out.ShieldBroken {
		t.Fatal("Expected the shield to break")
	}
	a := h.ecs.Actors[id]
	if a.Health.Value != a.Health.Max {
		t.Errorf("Expected excess to be discarded, body at %v", a.Health.Value)
	}
	if a.Shield.HP != 0 {
		t.Errorf("Expected shield HP 0, got %v", a.Shield.HP)
	}
}

func TestDieIsIdempotent(t *testing.T) {
	h := defaultHarness()
	id, _ := h.spawner.SpawnEnemy(defs.EnemyStandard, 1)
	first := h.lifecycle.Die(id)
	if len(first) != 1 || first[0].Resource != defs.ResourceMetal {
		t.Fatalf("Expected one metal drop, got %+v", first)
	}
	if again := h.lifecycle.Die(id); again != nil {
		t.Errorf("Expected no loot from a second death, got %+v", again)
	}
	if h.log.count(event.ActorDied) != 1 {
		t.Errorf("Expected 1 ActorDied, got %d", h.log.count(event.ActorDied))
	}

	orbs := h.lifecycle.Flush()
	if len(orbs) != 1 {
		t.Errorf("Expected 1 orb, got %d", len(orbs))
	}
	if _, ok := h.ecs.Actors[id]; ok {
		t.Error("Expected the corpse to be removed")
	}
	if len(h.lifecycle.Flush()) != 0 {
		t.Error("Expected the drop queue to be empty after a flush")
	}
}

func TestImmuneShieldHitEmitsNothing(t *testing.T) {
	h := defaultHarness()
	id, _ := h.spawner.SpawnEnemy(defs.EnemyShielded, 1)
	a := h.ecs.Actors[id]
	a.Shield.Resistance = defs.Multipliers{defs.WeaponKinetic: 0}

	out := h.combat.ApplyDamage(id, component.DamageEvent{Amount: 20, Weapon: defs.WeaponKinetic})
	if out.Amount != 0 || out.ShieldBroken {
		t.Errorf("Expected a zero shield hit, got %+v", out)
	}
	if h.log.count(event.ActorDamaged) != 0 {
		t.Errorf("Expected no ActorDamaged for a zero hit, got %d", h.log.count(event.ActorDamaged))
	}
	if _, flashed := h.ecs.DamageFlashes[id]; flashed {
		t.Error("Expected no damage flash for a zero hit")
	}
	if a.Shield.HP != a.Shield.Max {
		t.Errorf("Expected shield untouched, got %v", a.Shield.HP)
	}
}

func TestBossDropsBlueprintOnce(t *testing.T) {
	h := defaultHarness()
	id, err := h.spawner.SpawnBoss(defs.BossFluxWarden, vec.V3(0, 0, -10))
	if err != nil {
		t.Fatalf("Expected boss spawn to succeed, got %v", err)
	}
	loot := h.lifecycle.Die(id)
	blueprints, metal := 0, 0
	for _, d := range loot {
		if d.Unlock == defs.UnlockThermalPanel {
			blueprints++
		}
		if d.Resource == defs.ResourceMetal {
			metal++
		}
	}
	if blueprints != 1 {
		t.Errorf("Expected 1 blueprint drop, got %d", blueprints)
	}
	if metal != 5 {
		t.Errorf("Expected 5 metal reward orbs, got %d", metal)
	}
	if h.lifecycle.Die(id) != nil {
		t.Error("Expected no second boss drop")
	}
}

func TestBossDeathGrantsBlueprintWithoutPickup(t *testing.T) {
	h := defaultHarness()
	id, err := h.spawner.SpawnBoss(defs.BossFluxWarden, vec.V3(0, 0, -50))
	if err != nil {
		t.Fatalf("Expected boss spawn to succeed, got %v", err)
	}
	h.lifecycle.Die(id)
	if !h.unlocks.IsUnlocked(defs.UnlockThermalPanel) {
		t.Error("Expected blueprint to be unlocked when the boss dies")
	}

	// The marker orb can still be walked over without a second grant.
	h.lifecycle.Flush()
	for oid, orb := range h.ecs.Orbs {
		if orb.Unlock == defs.UnlockThermalPanel {
			h.ecs.Player.Position = h.ecs.Positions[oid].Vec3
		}
	}
	h.orbs.Collect()
	if h.log.count(event.UnlockAcquired) != 1 {
		t.Errorf("Expected 1 UnlockAcquired, got %d", h.log.count(event.UnlockAcquired))
	}
}

func TestOrbCollectionUnlocksAndCredits(t *testing.T) {
	h := newHarness(manualRules())
	h.lifecycle.pending = append(h.lifecycle.pending,
		event.LootDrop{Resource: defs.ResourceMetal, Amount: 10, Position: vec.V3(1, 0, 0)},
		event.LootDrop{Unlock: defs.UnlockThermalPanel, Position: vec.V3(0, 0, 1)},
		event.LootDrop{Resource: defs.ResourceEnergy, Amount: 10, Position: vec.V3(30, 0, 0)},
	)
	h.lifecycle.Flush()

	taken := h.orbs.Collect()
	if len(taken) != 2 {
		t.Fatalf("Expected 2 orbs in reach, got %d", len(taken))
	}
	if h.ledger.Resource(defs.ResourceMetal) != 10 {
		t.Errorf("Expected 10 metal, got %d", h.ledger.Resource(defs.ResourceMetal))
	}
	if !h.unlocks.IsUnlocked(defs.UnlockThermalPanel) {
		t.Error("Expected blueprint to be unlocked")
	}
	if h.log.count(event.UnlockAcquired) != 1 {
		t.Errorf("Expected 1 UnlockAcquired, got %d", h.log.count(event.UnlockAcquired))
	}
	if len(h.ecs.Orbs) != 1 {
		t.Errorf("Expected the far orb to remain, got %d orbs", len(h.ecs.Orbs))
	}
}

func TestOrbsDriftTowardPlayer(t *testing.T) {
	h := defaultHarness()
	h.lifecycle.pending = append(h.lifecycle.pending, event.LootDrop{Resource: defs.ResourceMetal, Amount: 10, Position: vec.V3(4, 0, 0)})
	id := h.lifecycle.Flush()[0]
	h.orbs.Update(0.1)
	if x := h.ecs.Positions[id].X; x >= 4 {
		t.Errorf("Expected the orb to move toward the player, still at x=%v", x)
	}
	if !h.ecs.Orbs[id].Attracted {
		t.Error("Expected the orb to be marked as attracted")
	}
}

func TestResourceOrbsExpireButBlueprintsStay(t *testing.T) {
	h := defaultHarness()
	h.lifecycle.pending = append(h.lifecycle.pending,
		event.LootDrop{Resource: defs.ResourceMetal, Amount: 10, Position: vec.V3(40, 0, 0)},
		event.LootDrop{Unlock: defs.UnlockThermalPanel, Position: vec.V3(-40, 0, 0)},
	)
	h.lifecycle.Flush()
	for i := 0; i < 61; i++ {
		h.orbs.Update(1)
	}
	if len(h.ecs.Orbs) != 1 {
		t.Fatalf("Expected only the blueprint to remain, got %d orbs", len(h.ecs.Orbs))
	}
	for _, orb := range h.ecs.Orbs {
		if orb.Unlock != defs.UnlockThermalPanel {
			t.Errorf("Expected the blueprint to survive, got %+v", orb)
		}
	}
}
