package game

import "combatsim/pkg/fixed"

// Army :
// Holds one side's archetype table plus the parallel per-instance
// vectors (runtime state, collision circles, trackers) and in-flight
// projectiles. All three parallel vectors share one handle space:
// handle ∈ [0, len(Units)); indexing is O(1) and is the only way code
// outside this package addresses a unit instance.
type Army struct {
	ID              int
	BaseUnits       map[Base]*Unit
	Units           []*State
	Positions       []CollCircle
	Trackers        []Tracker
	Projectiles     []Projectile
	LiveCarriers    uint32
	LiveInterceptors uint32
}

// NewArmy builds an empty army ready to receive AddUnit calls.
func NewArmy(id int) *Army {
	return &Army{
		ID:        id,
		BaseUnits: make(map[Base]*Unit),
	}
}

// Reset restores every instance to its archetype's max hull/shields, wait
// action, null target, zero attack_cd, starting energy, and clears
// effects/projectiles/trackers, without changing the army's composition.
func (a *Army) Reset() {
	for _, u := range a.Units {
		base := a.BaseUnits[u.Base]
		u.Hull = base.Hull.Max
		u.Shields = base.Shields.Max
		u.Action = WaitState()
		u.Target = nil
		u.AttackCd = fixed.Zero
		u.CanAttack = base.Weapons[0] != nil || base.Weapons[1] != nil
		if base.EnergyMax > 0 {
			start := base.EnergyStart
			u.Energy = &start
		} else {
			u.Energy = nil
		}
		u.Effects = nil
		u.LastDamaged = nil
	}
	for i := range a.Positions {
		a.Positions[i].Pos = Pos{}
	}
	a.Projectiles = nil
	for i := range a.Trackers {
		a.Trackers[i] = Tracker{}
	}
}

// reserve pre-grows the unit vector to avoid repeated reallocation for
// large army compositions.
func (a *Army) reserve(count int) {
	if cap(a.Units)-len(a.Units) < count {
		grown := make([]*State, len(a.Units), len(a.Units)+count)
		copy(grown, a.Units)
		a.Units = grown
	}
}

// AddUnit appends count instances of the given archetype. Only one
// archetype entry per Base is stored in BaseUnits (later calls for the
// same Base overwrite the stored archetype, matching the source).
//
// Carriers are added with 8 interceptors each; brood lords reserve space
// for 8 broodlings each (and register the broodling archetype) but get no
// broodling instances; swarm hosts register the locust archetype. The
// parent-plus-contiguous-children layout is a deliberate locality choice
// preserved from the source: each carrier instance is immediately
// followed in Units by its 8 interceptors, each with Parent set to the
// carrier's handle.
func (a *Army) AddUnit(unit *Unit, count int) {
	switch unit.Base {
	case BaseCarrier:
		a.reserve(count + count*8)
		a.BaseUnits[BaseInterceptor] = Interceptor
	case BaseBroodLord:
		a.reserve(count + count*8)
		a.BaseUnits[BaseBroodling] = Broodling
	case BaseSwarmHost:
		a.BaseUnits[BaseLocust] = Locust
	default:
		a.reserve(count)
	}

	for i := 0; i < count; i++ {
		a.Units = append(a.Units, NewState(unit))
		a.Positions = append(a.Positions, CollCircle{R: unit.Size, Plane: unit.Collision})
		a.Trackers = append(a.Trackers, Tracker{})
		if unit.Base == BaseCarrier {
			handle := uint32(len(a.Units) - 1)
			for c := 0; c < 8; c++ {
				a.Units = append(a.Units, NewState(Interceptor).withParent(handle))
				a.Positions = append(a.Positions, CollCircle{R: Interceptor.Size, Plane: Interceptor.Collision})
				a.Trackers = append(a.Trackers, Tracker{})
			}
			a.LiveCarriers++
			a.LiveInterceptors += 8
		}
	}

	a.BaseUnits[unit.Base] = unit
}

// UnitFromHandle resolves a unit instance's archetype through the
// (army, handle) -> base -> archetype path, never via a stored
// back-pointer.
func (a *Army) UnitFromHandle(handle uint32) *Unit {
	return a.BaseUnits[a.Units[handle].Base]
}

// Heal applies one tick's worth of hull/shield/energy regeneration to
// every living unit. Shields only regen once more than ShieldRechargeDelay
// has elapsed since the unit was last damaged.
func (a *Army) Heal(now fixed.Real) {
	for _, u := range a.Units {
		if !u.IsAlive() {
			continue
		}
		base := a.BaseUnits[u.Base]
		u.Hull = fixed.Min(base.Hull.Max, u.Hull.Add(base.Hull.Regen.Mul(Tick)))

		if u.LastDamaged != nil && now.Sub(*u.LastDamaged) > ShieldRechargeDelay {
			u.Shields = fixed.Min(base.Shields.Max, u.Shields.Add(base.Shields.Regen.Mul(Tick)))
		}

		if u.Energy != nil {
			regened := fixed.Min(base.EnergyMax, u.Energy.Add(EnergyRegen))
			u.Energy = &regened
		}
	}
}

// hasCandidate reports whether at least one live unit in opnt can be hit
// by one of base's weapons. The rejection-sampling loop in AcquireTargets
// only terminates if such a candidate exists; checking first keeps
// targeting total without consuming any random draws.
func hasCandidate(base *Unit, opnt *Army) bool {
	for h := range opnt.Units {
		if opnt.Units[h].IsAlive() && base.TryGetWeapon(opnt.UnitFromHandle(uint32(h))) != nil {
			return true
		}
	}
	return false
}

// AcquireTargets clears dead targets and assigns a new target to every
// live attacker with none, by uniformly sampling live, hittable
// opponents. The coordinator guarantees opnt has at least one live unit
// by checking for army annihilation before calling this; an attacker
// whose weapons can reach none of the survivors (or that carries no
// weapon at all, like a bare carrier hull) is left without a target and
// simply idles this tick. Calling it against an opponent with no live
// unit at all is a programming error and panics with ErrEmptyOpponent.
func (a *Army) AcquireTargets(opnt *Army, rng UniformSource) {
	if opnt.LiveCount() == 0 {
		panic(ErrEmptyOpponent)
	}

	for _, u := range a.Units {
		if u.Target != nil && opnt.Units[*u.Target].IsDead() {
			u.Target = nil
		}

		if u.IsDead() || !u.CanAttack || u.Target != nil {
			continue
		}

		base := a.BaseUnits[u.Base]
		if !hasCandidate(base, opnt) {
			continue
		}

		handle := uint32(rng.Int63n(int64(len(opnt.Units))))
		for opnt.Units[handle].IsDead() || base.TryGetWeapon(opnt.UnitFromHandle(handle)) == nil {
			handle = uint32(rng.Int63n(int64(len(opnt.Units))))
		}
		h := handle
		u.Target = &h
		u.Action = AttackState()
	}
}

// TotalCost sums the archetype cost of every instance currently in the
// army (including the dead: composition, not survivors).
func (a *Army) TotalCost() Cost {
	var costs []Cost
	for _, u := range a.Units {
		costs = append(costs, a.BaseUnits[u.Base].Cost)
	}
	return SumCosts(costs)
}

// TotalHealth sums each instance's archetype max hull+shields.
func (a *Army) TotalHealth() fixed.Real {
	total := fixed.Zero
	for _, u := range a.Units {
		base := a.BaseUnits[u.Base]
		total = total.Add(base.Hull.Max).Add(base.Shields.Max)
	}
	return total
}

// TotalHealthCurr sums each instance's current hull+shields.
func (a *Army) TotalHealthCurr() fixed.Real {
	total := fixed.Zero
	for _, u := range a.Units {
		total = total.Add(u.Hull).Add(u.Shields)
	}
	return total
}

// DamageDealt sums every tracker's damage_dealt.
func (a *Army) DamageDealt() fixed.Real {
	total := fixed.Zero
	for _, t := range a.Trackers {
		total = total.Add(t.DamageDealt)
	}
	return total
}

// LiveCount returns the number of units with hull > 0.
func (a *Army) LiveCount() int {
	n := 0
	for _, u := range a.Units {
		if u.IsAlive() {
			n++
		}
	}
	return n
}
