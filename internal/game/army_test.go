package game

import (
	"testing"

	"combatsim/pkg/fixed"
)

func TestAddUnitPreservesParallelVectors(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Marine, 7)

	if len(a.Units) != len(a.Positions) || len(a.Units) != len(a.Trackers) {
		t.Fatalf("parallel vectors diverged: units=%d positions=%d trackers=%d",
			len(a.Units), len(a.Positions), len(a.Trackers))
	}
	if len(a.Units) != 7 {
		t.Fatalf("expected 7 units, got %d", len(a.Units))
	}
	if _, ok := a.BaseUnits[BaseMarine]; !ok {
		t.Fatalf("expected Marine archetype registered in BaseUnits")
	}
}

func TestResetRestoresComposition(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Roach, 3)
	before := len(a.Units)

	a.Units[0].Hull = 1
	a.Units[0].Action = DeadState()

	a.Reset()

	if len(a.Units) != before {
		t.Fatalf("composition changed after Reset: %d != %d", len(a.Units), before)
	}
	if a.Units[0].Hull != Roach.Hull.Max {
		t.Fatalf("hull not restored to max after Reset")
	}
	if a.Units[0].Action.Kind != Wait {
		t.Fatalf("action state not restored to Wait after Reset")
	}
}

func TestAcquireTargetsSkipsDead(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Marine, 2)
	opp := NewArmy(2)
	opp.AddUnit(Roach, 2)
	opp.Units[0].Hull = 0

	rng := NewRng(42)
	a.AcquireTargets(opp, rng)

	for _, u := range a.Units {
		if u.Target == nil {
			t.Fatalf("expected a target to be assigned")
		}
		if opp.Units[*u.Target].IsDead() {
			t.Fatalf("assigned a dead unit as target")
		}
	}
}

func TestShieldRegenWaitsForDamageFreeWindow(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Stalker, 1)

	u := a.Units[0]
	u.Shields = fixed.FromInt(10)
	hit := fixed.Zero
	u.LastDamaged = &hit

	// Inside the recharge delay: no shield regen.
	a.Heal(fixed.One)
	if u.Shields != fixed.FromInt(10) {
		t.Fatalf("shields regenerated inside the recharge delay: %v", u.Shields)
	}

	// Past the delay: shields tick back up.
	a.Heal(ShieldRechargeDelay.Add(fixed.One))
	if u.Shields <= fixed.FromInt(10) {
		t.Fatalf("shields did not regenerate after the recharge delay: %v", u.Shields)
	}
}

func TestHullRegenClampsAtMax(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Roach, 1)

	u := a.Units[0]
	u.Hull = Roach.Hull.Max.Sub(fixed.Epsilon)

	a.Heal(fixed.Zero)
	if u.Hull != Roach.Hull.Max {
		t.Fatalf("hull regen must clamp at max: %v", u.Hull)
	}

	a.Heal(Tick)
	if u.Hull != Roach.Hull.Max {
		t.Fatalf("hull exceeded archetype max: %v", u.Hull)
	}
}

func TestEnergyRechargesEachTick(t *testing.T) {
	caster := *Marine
	caster.EnergyStart = fixed.FromInt(50)
	caster.EnergyMax = fixed.FromInt(200)

	a := NewArmy(1)
	a.AddUnit(&caster, 1)

	u := a.Units[0]
	if u.Energy == nil || *u.Energy != fixed.FromInt(50) {
		t.Fatalf("expected starting energy 50")
	}

	a.Heal(fixed.Zero)
	if *u.Energy != fixed.FromInt(50).Add(EnergyRegen) {
		t.Fatalf("energy after one tick = %v, want %v", *u.Energy, fixed.FromInt(50).Add(EnergyRegen))
	}
}

func TestAcquireTargetsLeavesUnreachableIdle(t *testing.T) {
	// A ground-only attacker facing an all-flying opponent has no
	// reachable candidate: it must idle rather than spin forever.
	a := NewArmy(1)
	a.AddUnit(Roach, 1)
	opp := NewArmy(2)
	opp.AddUnit(Carrier, 1)

	a.AcquireTargets(opp, NewRng(1))

	if a.Units[0].Target != nil {
		t.Fatalf("roach acquired a target it cannot hit")
	}
}

func TestApplyDamageShieldSpillover(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Stalker, 1)

	target := a.Units[0]
	target.Shields = fixed.FromInt(5)
	target.Hull = fixed.FromInt(80)

	tracker := &Tracker{}
	ApplyDamage(tracker, 0, a, stalkerWeapon, fixed.Zero)

	if target.Shields != 0 {
		t.Fatalf("shields should floor at 0 after spillover, got %v", target.Shields)
	}
	if target.Hull >= fixed.FromInt(80) {
		t.Fatalf("hull should have taken spillover damage, got %v", target.Hull)
	}
}
