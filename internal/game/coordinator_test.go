package game

import (
	"testing"

	"combatsim/pkg/fixed"
)

// fixedSeed pins every determinism test to the same starting state.
const fixedSeed int64 = 17313471783455232199 % (1 << 63)

func newFight(seed int64) *Coordinator {
	c := NewCoordinator(seed)
	return c
}

func TestCarrierAddsEightInterceptors(t *testing.T) {
	// Carrier x1 vs Marine x10: after AddUnit, Army1's unit count
	// is 9 (1 carrier + 8 interceptors).
	c := newFight(fixedSeed)
	c.A1.AddUnit(Carrier, 1)
	c.A2.AddUnit(Marine, 10)

	if len(c.A1.Units) != 9 {
		t.Fatalf("expected 9 units (1 carrier + 8 interceptors), got %d", len(c.A1.Units))
	}
	for i := 1; i < 9; i++ {
		if c.A1.Units[i].Parent == nil || *c.A1.Units[i].Parent != 0 {
			t.Fatalf("interceptor %d should have parent handle 0", i)
		}
	}

	// The carrier hull itself carries no weapon; only its interceptors
	// fight. The simulation must still terminate.
	c.SafetyCap = 1_000_000
	outcome := c.Simulate()
	if outcome.Winner == WinnerTimeout {
		t.Fatalf("carrier fight did not run to natural termination")
	}
}

func TestMarineCombatShieldsHull(t *testing.T) {
	// Marine max hull is 55 with the shields mod applied.
	if MarineWithCombatShields.Hull.Max.Int() != 55 {
		t.Fatalf("expected Combat Shields Marine hull 55, got %d", MarineWithCombatShields.Hull.Max.Int())
	}
}

func TestStalkerVsRoachDeterministic(t *testing.T) {
	// Deterministic winner/duration across repeated runs with the
	// same seed and composition.
	run := func() Outcome {
		c := newFight(fixedSeed)
		c.A1.AddUnit(Stalker, 10)
		c.A2.AddUnit(Roach, 12)
		return c.Simulate()
	}

	first := run()
	second := run()

	if first.Winner != second.Winner || first.Duration != second.Duration {
		t.Fatalf("non-deterministic outcome across identical runs: %+v vs %+v", first, second)
	}
}

func TestMixedArmiesDeterministic(t *testing.T) {
	// Stalker x5 + Archon x1 vs Marine x6 + Marauder x5. The Archon
	// resolves as single-target damage in the default pipeline (its
	// splash is expressed through the AoE contract, applied by a
	// caller); the fight itself must be deterministic.
	run := func() Outcome {
		c := newFight(fixedSeed)
		c.A1.AddUnit(Stalker, 5)
		c.A1.AddUnit(Archon, 1)
		c.A2.AddUnit(Marine, 6)
		c.A2.AddUnit(Marauder, 5)
		return c.Simulate()
	}

	first := run()
	second := run()

	if first.Winner != second.Winner || first.Duration != second.Duration {
		t.Fatalf("non-deterministic outcome: %+v vs %+v", first, second)
	}
	if first.DamageDealtA1 == fixed.Zero || first.DamageDealtA2 == fixed.Zero {
		t.Fatalf("both sides should have dealt damage: %v / %v", first.DamageDealtA1, first.DamageDealtA2)
	}
}

// clampedHealthLoss sums, over an army, how much hull+shields each unit
// has lost relative to its archetype maxima, clamping a dead unit's hull
// at zero so overkill is excluded on both sides of the comparison.
func clampedHealthLoss(a *Army) fixed.Real {
	loss := fixed.Zero
	for _, u := range a.Units {
		base := a.BaseUnits[u.Base]
		loss = loss.Add(base.Hull.Max.Sub(fixed.Max(fixed.Zero, u.Hull)))
		loss = loss.Add(base.Shields.Max.Sub(u.Shields))
	}
	return loss
}

func TestDamageDealtMatchesDefenderLoss(t *testing.T) {
	// The attackers' damage_dealt trackers (which exclude overkill) must
	// equal the defenders' clamped hull+shield loss. Marauders carry no
	// shields and no regen, so nothing heals back or spills over on the
	// defending side.
	c := newFight(fixedSeed)
	c.A1.AddUnit(Stalker, 8)
	c.A2.AddUnit(Marauder, 6)
	c.Simulate()

	dealt := c.A1.DamageDealt()
	lost := clampedHealthLoss(c.A2)

	if dealt != lost {
		t.Fatalf("damage dealt %v != defender health loss %v", dealt, lost)
	}
}

func TestIdenticalArmiesReproducible(t *testing.T) {
	// Two identical one-Marine armies, seeded identically: the outcome
	// must be reproducible across runs (winner, Team1, Team2, or a draw).
	run := func() Outcome {
		c := newFight(fixedSeed)
		c.A1.AddUnit(Marine, 1)
		c.A2.AddUnit(Marine, 1)
		return c.Simulate()
	}

	a := run()
	b := run()
	if a.Winner != b.Winner || a.Duration != b.Duration {
		t.Fatalf("identical armies with identical seed must reproduce: %+v vs %+v", a, b)
	}
}

func TestHullNeverExceedsMax(t *testing.T) {
	c := newFight(fixedSeed)
	c.A1.AddUnit(Stalker, 5)
	c.A2.AddUnit(Marine, 20)
	c.Simulate()

	for _, u := range c.A1.Units {
		base := c.A1.BaseUnits[u.Base]
		if u.Hull > base.Hull.Max {
			t.Fatalf("hull %v exceeds archetype max %v", u.Hull, base.Hull.Max)
		}
	}
}

func TestShieldsNeverNegative(t *testing.T) {
	c := newFight(fixedSeed)
	c.A1.AddUnit(Stalker, 5)
	c.A2.AddUnit(Marine, 20)
	c.Simulate()

	for _, u := range c.A1.Units {
		if u.Shields < 0 {
			t.Fatalf("shields went negative: %v", u.Shields)
		}
	}
}

func TestDeathIsMonotoneUntilReset(t *testing.T) {
	c := newFight(fixedSeed)
	c.A1.AddUnit(Marine, 1)
	c.A2.AddUnit(Marauder, 5)
	c.Simulate()

	deadBefore := c.A1.Units[0].IsDead()
	if deadBefore {
		// Once dead, hull must stay <= 0 without an explicit Reset.
		if c.A1.Units[0].Hull > 0 {
			t.Fatalf("dead unit's hull should remain <= 0")
		}
	}

	c.Reset()
	if c.A1.Units[0].IsDead() {
		t.Fatalf("Reset must restore hull above zero")
	}
}
