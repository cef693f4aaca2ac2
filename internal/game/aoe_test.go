package game

import (
	"testing"

	"combatsim/pkg/fixed"
)

func TestCollisionPlaneInteraction(t *testing.T) {
	cases := []struct {
		a, b Collision
		want bool
	}{
		{CollisionNone, CollisionGround, false},
		{CollisionBoth, CollisionGround, true},
		{CollisionBoth, CollisionNone, false},
		{CollisionGround, CollisionGround, true},
		{CollisionGround, CollisionFlying, false},
		{CollisionGround, CollisionBoth, true},
	}
	for _, c := range cases {
		if got := c.a.CanInteract(c.b); got != c.want {
			t.Fatalf("%v.CanInteract(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestAoEAppliesToOverlapping(t *testing.T) {
	a := NewArmy(1)
	a.AddUnit(Marine, 3)
	a.Positions[0].Pos = Pos{}
	a.Positions[1].Pos = Pos{X: 1000000} // far away
	a.Positions[2].Pos = Pos{}

	hit := 0
	effect := AoE{
		Circle: CollCircle{Pos: Pos{}, R: 10, Plane: CollisionGround},
		Mutate: func(s *State) { hit++ },
	}
	effect.Apply(a)

	if hit != 2 {
		t.Fatalf("expected 2 units hit, got %d", hit)
	}
}

func TestApplyAoEDispatchesByAffiliation(t *testing.T) {
	cases := []struct {
		affiliation Affiliation
		wantOwnHit  bool
		wantOpntHit bool
	}{
		{AffiliationFriendly, true, false},
		{AffiliationEnemy, false, true},
		{AffiliationBoth, true, true},
	}

	for _, c := range cases {
		coord := NewCoordinator(1)
		coord.A1.AddUnit(Marine, 1)
		coord.A2.AddUnit(Marine, 1)

		mark := func(s *State) { s.AttackCd = fixed.One }
		effect := AoE{
			Circle:      CollCircle{Pos: Pos{}, R: 10, Plane: CollisionGround},
			Affiliation: c.affiliation,
			Mutate:      mark,
		}

		coord.ApplyAoE(Team1, effect)

		ownHit := coord.A1.Units[0].AttackCd == fixed.One
		opntHit := coord.A2.Units[0].AttackCd == fixed.One

		if ownHit != c.wantOwnHit {
			t.Fatalf("affiliation %v: own army hit = %v, want %v", c.affiliation, ownHit, c.wantOwnHit)
		}
		if opntHit != c.wantOpntHit {
			t.Fatalf("affiliation %v: opponent army hit = %v, want %v", c.affiliation, opntHit, c.wantOpntHit)
		}
	}
}
