package game

import "combatsim/pkg/fixed"

// Cost :
// The resources and build time required to produce a unit.
type Cost struct {
	Minerals  fixed.Real
	Gas       fixed.Real
	Supply    fixed.Real
	BuildTime fixed.Real
}

// NewCost builds a Cost from plain integer resource amounts and a
// fixed-point build time (build time can carry fractional seconds).
func NewCost(minerals, gas, supply int, buildTime fixed.Real) Cost {
	return Cost{
		Minerals:  fixed.FromInt(minerals),
		Gas:       fixed.FromInt(gas),
		Supply:    fixed.FromInt(supply),
		BuildTime: buildTime,
	}
}

// TotalResources sums minerals and gas; build time and supply are not
// resources.
func (c Cost) TotalResources() fixed.Real {
	return c.Minerals.Add(c.Gas)
}

// IsFree reports whether this cost has no mineral/gas price.
func (c Cost) IsFree() bool {
	return c.TotalResources() == fixed.Zero
}

// Add combines two costs component-wise.
func (c Cost) Add(o Cost) Cost {
	return Cost{
		Minerals:  c.Minerals.Add(o.Minerals),
		Gas:       c.Gas.Add(o.Gas),
		Supply:    c.Supply.Add(o.Supply),
		BuildTime: c.BuildTime.Add(o.BuildTime),
	}
}

// Sub subtracts o from c component-wise.
func (c Cost) Sub(o Cost) Cost {
	return Cost{
		Minerals:  c.Minerals.Sub(o.Minerals),
		Gas:       c.Gas.Sub(o.Gas),
		Supply:    c.Supply.Sub(o.Supply),
		BuildTime: c.BuildTime.Sub(o.BuildTime),
	}
}

// Scale multiplies every component of c by n.
func (c Cost) Scale(n int) Cost {
	factor := fixed.FromInt(n)
	return Cost{
		Minerals:  c.Minerals.Mul(factor),
		Gas:       c.Gas.Mul(factor),
		Supply:    c.Supply.Mul(factor),
		BuildTime: c.BuildTime.Mul(factor),
	}
}

// SumCosts reduces a slice of Cost by addition; zero value if the slice
// is empty.
func SumCosts(costs []Cost) Cost {
	var total Cost
	for _, c := range costs {
		total = total.Add(c)
	}
	return total
}

// Health :
// Max value plus regen behavior, shared by hull and shields.
type Health struct {
	Max   fixed.Real
	Regen fixed.Real
	Delay fixed.Real
	Armor fixed.Real
}

// Movement :
// The simulator exercises no positional physics, but the fields are
// retained since archetypes and effects reference them.
type Movement struct {
	Speed        fixed.Real
	Accel        fixed.Real
	Decel        fixed.Real
	TurnRate     fixed.Real
	LateralAccel fixed.Real
}

// Unit :
// An immutable archetype descriptor, keyed by Base. Archetypes are
// compile-time data (see archetypes.go); the coordinator never mutates
// one, only the per-instance State drawn from it.
type Unit struct {
	Base         Base
	Faction      Faction
	Collision    Collision
	Flags        Flags
	Hull         Health
	Shields      Health
	Movement     Movement
	Cost         Cost
	Size         fixed.Real
	CargoSize    fixed.Real
	Sight        fixed.Real
	Weapons      [2]*Weapon
	PushPriority fixed.Real
	EnergyStart  fixed.Real
	EnergyMax    fixed.Real
}

// TryGetWeapon returns the first of u's two weapon slots that can hit
// target's collision plane, or nil if neither can.
func (u *Unit) TryGetWeapon(target *Unit) *Weapon {
	for _, w := range u.Weapons {
		if w != nil && w.CanHit(target.Collision) {
			return w
		}
	}
	return nil
}

// HasFlag reports whether the archetype carries the given taxonomy flag.
func (u *Unit) HasFlag(flag Flag) bool {
	return u.Flags.Is(flag)
}
