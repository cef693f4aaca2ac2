package game

import (
	"testing"

	"combatsim/pkg/fixed"
)

// fixedDelay is a UniformSource that always returns zero, pinning the
// attack-cooldown jitter so tests can assert exact scheduling times.
type fixedDelay struct{}

func (fixedDelay) Int63n(n int64) int64 { return 0 }

func armiesForAttack(attacker, defender *Unit) (*Army, *Army) {
	a := NewArmy(1)
	a.AddUnit(attacker, 1)
	opp := NewArmy(2)
	opp.AddUnit(defender, 1)

	h := uint32(0)
	a.Units[0].Target = &h
	a.Units[0].Action = AttackState()
	return a, opp
}

func TestAttackSchedulesDamagePoint(t *testing.T) {
	a, opp := armiesForAttack(Marine, Roach)

	ResolveAttacks(a, opp, fixed.Zero, fixedDelay{})

	u := a.Units[0]
	if u.Action.Kind != DamagePointState {
		t.Fatalf("expected DamagePoint after beginning an attack, got %v", u.Action.Kind)
	}
	if u.Action.FireAt != marineWeapon.DamagePoint {
		t.Fatalf("fire time = %v, want damage point %v", u.Action.FireAt, marineWeapon.DamagePoint)
	}
	if u.AttackCd != marineWeapon.AttackSpeed.Add(marineWeapon.RandomDelayMin) {
		t.Fatalf("cooldown = %v, want attack speed + min jitter %v", u.AttackCd,
			marineWeapon.AttackSpeed.Add(marineWeapon.RandomDelayMin))
	}
}

func TestAttackWaitsForCooldown(t *testing.T) {
	a, opp := armiesForAttack(Marine, Roach)
	a.Units[0].AttackCd = fixed.FromInt(100)

	ResolveAttacks(a, opp, fixed.Zero, fixedDelay{})

	if a.Units[0].Action.Kind != Attack {
		t.Fatalf("unit on cooldown should stay in Attack, got %v", a.Units[0].Action.Kind)
	}
}

func TestHitscanAppliesDamageAtDamagePoint(t *testing.T) {
	a, opp := armiesForAttack(Marine, Roach)
	a.Units[0].Action = NewDamagePoint(fixed.Zero, 0)

	before := opp.Units[0].Hull
	ResolveAttacks(a, opp, fixed.One, fixedDelay{})

	if opp.Units[0].Hull >= before {
		t.Fatalf("hitscan damage should apply immediately, hull %v -> %v", before, opp.Units[0].Hull)
	}
	if len(a.Projectiles) != 0 {
		t.Fatalf("hitscan must not enqueue projectiles")
	}
	if a.Units[0].Action.Kind != Attack {
		t.Fatalf("expected return to Attack after a single-hit damage point")
	}
}

func TestProjectileWeaponEnqueuesInsteadOfDamaging(t *testing.T) {
	a, opp := armiesForAttack(Stalker, Roach)
	a.Units[0].Action = NewDamagePoint(fixed.Zero, 0)

	before := opp.Units[0].Hull
	ResolveAttacks(a, opp, fixed.One, fixedDelay{})

	if opp.Units[0].Hull != before {
		t.Fatalf("projectile damage must be deferred, hull changed %v -> %v", before, opp.Units[0].Hull)
	}
	if len(a.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile in flight, got %d", len(a.Projectiles))
	}

	p := a.Projectiles[0]
	wantImpact := fixed.One.Add(stalkerWeapon.RangeMax.Div(DefaultProjectileSpeed))
	if p.Timer != wantImpact {
		t.Fatalf("impact timer = %v, want %v", p.Timer, wantImpact)
	}
}

func TestDamagePointNotDueYet(t *testing.T) {
	a, opp := armiesForAttack(Marine, Roach)
	a.Units[0].Action = NewDamagePoint(fixed.FromInt(5), 0)

	before := opp.Units[0].Hull
	ResolveAttacks(a, opp, fixed.Zero, fixedDelay{})

	if opp.Units[0].Hull != before {
		t.Fatalf("damage applied before the scheduled fire time")
	}
	if a.Units[0].Action.Kind != DamagePointState {
		t.Fatalf("unit must stay in DamagePoint until its fire time")
	}
}

func TestTimeOffsetMultihitSchedulesFollowups(t *testing.T) {
	u := *Marine
	w := *marineWeapon
	w.Multihit = Multihit{
		Kind:    TimeOffset,
		Offsets: []fixed.Real{fixed.Half, fixed.One},
	}
	u.Weapons = [2]*Weapon{&w}

	a, opp := armiesForAttack(&u, Roach)
	a.Units[0].Action = NewDamagePoint(fixed.Zero, 0)

	now := fixed.One
	ResolveAttacks(a, opp, now, fixedDelay{})

	action := a.Units[0].Action
	if action.Kind != DamagePointState {
		t.Fatalf("first hit of a TimeOffset attack must schedule a follow-up")
	}
	if action.FireAt != now.Add(fixed.Half) || action.HitIndex != 1 {
		t.Fatalf("follow-up = (%v, %d), want (%v, 1)", action.FireAt, action.HitIndex, now.Add(fixed.Half))
	}

	// Resolve the second hit, then the third; only then does the unit
	// return to Attack.
	ResolveAttacks(a, opp, action.FireAt, fixedDelay{})
	action = a.Units[0].Action
	if action.Kind != DamagePointState || action.HitIndex != 2 {
		t.Fatalf("second hit should schedule the last follow-up, got %+v", action)
	}

	ResolveAttacks(a, opp, action.FireAt, fixedDelay{})
	if a.Units[0].Action.Kind != Attack {
		t.Fatalf("exhausted multi-hit schedule must return to Attack, got %v", a.Units[0].Action.Kind)
	}
}

func TestInstantMultihitMultipliesDamage(t *testing.T) {
	w := *marineWeapon
	w.Multihit = Multihit{Kind: Instant, K: 3}

	a := NewArmy(1)
	a.AddUnit(Roach, 1)
	before := a.Units[0].Hull

	tracker := &Tracker{}
	ApplyDamage(tracker, 0, a, &w, fixed.Zero)

	// 6 base - 1 armor = 5, times 3.
	want := before.Sub(fixed.FromInt(15))
	if a.Units[0].Hull != want {
		t.Fatalf("Instant(3) hull = %v, want %v", a.Units[0].Hull, want)
	}
}

func TestDeadUnitsDoNotAttack(t *testing.T) {
	a, opp := armiesForAttack(Marine, Roach)
	a.Units[0].Hull = fixed.Zero

	before := opp.Units[0].Hull
	ResolveAttacks(a, opp, fixed.One, fixedDelay{})

	if opp.Units[0].Hull != before {
		t.Fatalf("a dead unit dealt damage")
	}
}
