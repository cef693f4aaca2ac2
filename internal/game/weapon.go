package game

import "combatsim/pkg/fixed"

// WeaponKind distinguishes how damage is applied once a DamagePoint
// resolves: instantly (Melee/Hitscan) or after a flight-time delay
// (Projectile, via the projectile queue).
type WeaponKind uint8

const (
	WeaponMelee WeaponKind = iota
	WeaponHitscan
	WeaponProjectile
)

// SearchType is reserved for a future targeting refinement; like
// ThreatLevel it is not consulted by the uniform random selection
// policy.
type SearchType uint8

const (
	SearchRandom SearchType = iota
	SearchClosest
	SearchWeakest
	SearchStrongest
)

// Priority has the same reserved status as SearchType.
type Priority uint8

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityHigh
)

// MultihitKind enumerates the attack multi-hit modes.
type MultihitKind uint8

const (
	// Single is one damage event per cooldown cycle.
	Single MultihitKind = iota
	// Instant multiplies a single damage event by K, resolved all at once.
	Instant
	// TimeOffset schedules len(Offsets) additional DamagePoint events,
	// each at `time + Offsets[i]` after the first.
	TimeOffset
	// PosOffset is treated identically to TimeOffset for scheduling and
	// damage; positional offsets carry no meaning while the resolver
	// exercises no movement physics.
	PosOffset
)

// Multihit describes an attack's multi-hit behavior.
type Multihit struct {
	Kind    MultihitKind
	K       int
	Offsets []fixed.Real
}

// Multiplier returns the damage multiplier to apply at resolution time:
// K for Instant, 1 for every other mode (TimeOffset/PosOffset damage is
// not multiplied; they instead produce additional scheduled events).
func (m Multihit) Multiplier() fixed.Real {
	if m.Kind == Instant {
		return fixed.FromInt(m.K)
	}
	return fixed.One
}

// offsets returns the schedule of additional DamagePoint re-entries for
// TimeOffset and PosOffset modes (both treated identically), or nil.
func (m Multihit) offsets() []fixed.Real {
	if m.Kind == TimeOffset || m.Kind == PosOffset {
		return m.Offsets
	}
	return nil
}

// Weapon :
// An immutable weapon archetype. A Unit carries up to two of these; the
// coordinator selects between them via Unit.TryGetWeapon based on the
// target's collision plane.
type Weapon struct {
	Kind           WeaponKind
	BaseDamage     fixed.Real
	BonusDamage    fixed.Real
	BonusVs        Flag
	Planes         Collision
	BaseDamageInc  fixed.Real
	BonusDamageInc fixed.Real
	RangeMin       fixed.Real
	RangeMax       fixed.Real
	RangeSlop      fixed.Real
	Arc            fixed.Real
	ArcSlop        fixed.Real
	Backswing      fixed.Real
	DamagePoint    fixed.Real
	AttackSpeed    fixed.Real
	RandomDelayMin fixed.Real
	RandomDelayMax fixed.Real
	Priority       Priority
	Multihit       Multihit
	Search         SearchType
	Effect         *AoE
}

// CanHit reports whether this weapon can target something on the given
// collision plane.
func (w *Weapon) CanHit(plane Collision) bool {
	return w.Planes.CanInteract(plane)
}

// IsMelee reports whether this is a melee weapon.
func (w *Weapon) IsMelee() bool {
	return w.Kind == WeaponMelee
}

// GetDamage returns the base damage against a target, adding BonusDamage
// when the target carries the weapon's bonus flag.
func (w *Weapon) GetDamage(target *Unit) fixed.Real {
	d := w.BaseDamage
	if w.BonusVs != FlagNone && target.HasFlag(w.BonusVs) {
		d = d.Add(w.BonusDamage)
	}
	return d
}

// GetShieldDamage is an alias of GetDamage; shield-specific bonus rules
// are identical to the hull ones here.
func (w *Weapon) GetShieldDamage(target *Unit) fixed.Real {
	return w.GetDamage(target)
}

// UniformSource draws a uniform integer in [0, n).
type UniformSource interface {
	Int63n(n int64) int64
}

// GetDelay samples a uniform raw-bit offset between RandomDelayMin and
// RandomDelayMax (both are small, sign-independent offsets around zero).
func (w *Weapon) GetDelay(rng UniformSource) fixed.Real {
	lo := int64(w.RandomDelayMin.Raw())
	hi := int64(w.RandomDelayMax.Raw())
	if hi <= lo {
		return w.RandomDelayMin
	}
	span := hi - lo
	return fixed.FromRaw(int32(lo + rng.Int63n(span)))
}

// GetCooldown returns the time until this weapon may fire again:
// AttackSpeed plus a uniform jitter draw.
func (w *Weapon) GetCooldown(rng UniformSource) fixed.Real {
	return w.AttackSpeed.Add(w.GetDelay(rng))
}

// DPS returns the ideal (uninterrupted) damage-per-second range for this
// weapon against an undetermined target, optionally folding in the
// bonus damage (as a range since bonus applicability is target-dependent).
func (w *Weapon) DPS(withBonus bool) (lo, hi fixed.Real) {
	if w.AttackSpeed == fixed.Zero {
		return fixed.Zero, fixed.Zero
	}
	base := w.BaseDamage.Div(w.AttackSpeed)
	if !withBonus {
		return base, base
	}
	return base, w.BaseDamage.Add(w.BonusDamage).Div(w.AttackSpeed)
}

// Projectile :
// A deferred damage record owned by the firer's army.
type Projectile struct {
	Timer  fixed.Real
	Source uint32
	Target uint32
}

// NewProjectile computes the impact timer as now plus the flight time
// derived from the weapon's max range and the default projectile speed.
func NewProjectile(source, target uint32, rangeMax fixed.Real, now fixed.Real) Projectile {
	return Projectile{
		Timer:  now.Add(rangeMax.Div(DefaultProjectileSpeed)),
		Source: source,
		Target: target,
	}
}
