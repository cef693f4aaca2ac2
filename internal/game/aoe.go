package game

import "combatsim/pkg/fixed"

// Pos is a 2D position in fixed-point. The resolver exercises no
// movement physics, but positions are still stored per-unit and
// consulted by AoE collision tests.
type Pos struct {
	X, Y fixed.Real
}

// Dist returns the straight-line distance between two positions.
func (p Pos) Dist(o Pos) fixed.Real {
	return p.DistSquared(o).Sqrt()
}

// DistSquared avoids the Sqrt call for comparisons against a squared
// radius sum.
func (p Pos) DistSquared(o Pos) fixed.Real {
	dx := p.X.Sub(o.X)
	dy := p.Y.Sub(o.Y)
	return dx.Squared().Add(dy.Squared())
}

// CollCircle is a unit instance's collision footprint: a position, a
// radius, and the collision plane it occupies.
type CollCircle struct {
	Pos   Pos
	R     fixed.Real
	Plane Collision
}

// Overlaps reports whether two circles intersect in space only (plane
// interaction is not considered; see CollidesWith).
func (c CollCircle) Overlaps(o CollCircle) bool {
	sumR := c.R.Add(o.R)
	return sumR.Squared() >= c.DistSquared(o)
}

// OverlapsPos is Overlaps against a bare position with radius 0.
func (c CollCircle) OverlapsPos(p Pos) bool {
	return c.R.Squared() >= c.Pos.DistSquared(p)
}

func (c CollCircle) DistSquared(o CollCircle) fixed.Real {
	return c.Pos.DistSquared(o.Pos)
}

// CollidesWith combines spatial overlap with plane interaction: None x
// anything = false; Both x non-None = true; Ground/Flying match
// themselves or Both.
func (c CollCircle) CollidesWith(o CollCircle) bool {
	return c.Plane.CanInteract(o.Plane) && c.Overlaps(o)
}

// Affiliation selects which units in a target army an AoE can affect.
type Affiliation uint8

const (
	AffiliationEnemy Affiliation = iota
	AffiliationFriendly
	AffiliationBoth
)

// AoE :
// Stubbed area-effect record: a circle, an expiration time, an
// affiliation, and a mutator closure applied to every overlapping unit's
// state. Exposed as a public contract but never invoked from
// Coordinator.Simulate; a caller integrates it explicitly via
// Coordinator.ApplyAoE.
type AoE struct {
	Circle      CollCircle
	Expires     fixed.Real
	Affiliation Affiliation
	Mutate      func(*State)
}

// SetPos repositions the effect's circle, returning the updated AoE for
// chaining.
func (a AoE) SetPos(p Pos) AoE {
	a.Circle.Pos = p
	return a
}

// Apply iterates target's positions, invoking Mutate on every unit whose
// collision circle overlaps this effect's circle on an interacting plane.
func (a AoE) Apply(target *Army) {
	for i := range target.Positions {
		if a.Circle.CollidesWith(target.Positions[i]) {
			a.Mutate(target.Units[i])
		}
	}
}
