package game

import (
	"testing"

	"combatsim/pkg/fixed"
)

func TestSweepRemovesExpiredProjectiles(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Stalker, 1)
	opp := NewArmy(2)
	opp.AddUnit(Roach, 1)

	a.Projectiles = []Projectile{
		{Timer: fixed.One, Source: 0, Target: 0},
		{Timer: fixed.FromInt(100), Source: 0, Target: 0},
	}

	before := opp.Units[0].Hull
	SweepProjectiles(a, opp, fixed.FromInt(2))

	if len(a.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile still in flight, got %d", len(a.Projectiles))
	}
	if a.Projectiles[0].Timer != fixed.FromInt(100) {
		t.Fatalf("the wrong projectile was removed")
	}
	if opp.Units[0].Hull >= before {
		t.Fatalf("expired projectile did not apply damage")
	}
}

func TestSweepKeepsUnexpiredProjectiles(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Stalker, 1)
	opp := NewArmy(2)
	opp.AddUnit(Roach, 1)

	a.Projectiles = []Projectile{{Timer: fixed.FromInt(10), Source: 0, Target: 0}}

	before := opp.Units[0].Hull
	SweepProjectiles(a, opp, fixed.FromInt(5))

	if len(a.Projectiles) != 1 || opp.Units[0].Hull != before {
		t.Fatalf("an in-flight projectile was resolved early")
	}
}

func TestProjectileHitsDeadTarget(t *testing.T) {
	// A target that died after launch still absorbs the hit: the tracker
	// records the damage, the hull simply stays at or below zero.
	a := NewArmy(1)
	a.AddUnit(Stalker, 1)
	opp := NewArmy(2)
	opp.AddUnit(Roach, 1)
	opp.Units[0].Hull = fixed.Zero

	a.Projectiles = []Projectile{{Timer: fixed.Zero, Source: 0, Target: 0}}
	SweepProjectiles(a, opp, fixed.One)

	if len(a.Projectiles) != 0 {
		t.Fatalf("expired projectile not removed")
	}
	if opp.Units[0].Hull >= fixed.Zero {
		t.Fatalf("damage against a dead target should still lower its hull, got %v", opp.Units[0].Hull)
	}
}
