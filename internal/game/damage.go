package game

import "combatsim/pkg/fixed"

// ApplyDamage resolves one damage event against targetHandle within
// targetArmy, using weapon fired at time now, and records the result
// into tracker (the firer's per-instance bookkeeping).
//
// Shields absorb first: shield damage is floored at MinDamage after
// target armor, multiplied by the weapon's Instant(k) factor if present.
// Any damage beyond the shield pool spills to hull, with hull armor
// applied again to the spillover (a deliberate design choice matching
// observed game behavior, not a double-counting bug). Once shields are
// already at zero, damage goes straight to hull with its own MinDamage
// floor. Overkill - hull damage beyond zero - is tracked but the hull
// value itself is never clamped back up: death is monotone.
func ApplyDamage(tracker *Tracker, targetHandle uint32, targetArmy *Army, weapon *Weapon, now fixed.Real) {
	target := targetArmy.Units[targetHandle]
	archetype := targetArmy.UnitFromHandle(targetHandle)

	baseDamage := weapon.GetDamage(archetype)
	mult := weapon.Multihit.Multiplier()

	var hullDamage, overkill fixed.Real
	hullBefore := target.Hull

	if target.Shields != fixed.Zero {
		shieldDamage := fixed.Max(MinDamage, baseDamage.Sub(archetype.Shields.Armor)).Mul(mult)
		target.Shields = target.Shields.Sub(shieldDamage)
		tracker.DamageDealt = tracker.DamageDealt.Add(shieldDamage)

		if target.Shields < fixed.Zero {
			spillover := target.Shields.Abs().Sub(archetype.Hull.Armor)
			target.Hull = target.Hull.Sub(spillover)
			hullDamage = spillover
			target.Shields = fixed.Zero
		}
	} else {
		hullDamage = fixed.Max(MinDamage, baseDamage.Sub(archetype.Hull.Armor)).Mul(mult)
		target.Hull = target.Hull.Sub(hullDamage)
	}

	if target.Hull < fixed.Zero {
		// Only the portion of this event beyond the hull the target had
		// left counts as overkill; a hit landing on an already-dead
		// target (a projectile in flight at death) is all overkill.
		overkill = hullDamage.Sub(fixed.Max(fixed.Zero, hullBefore))
		if hullBefore > fixed.Zero {
			ts := now
			targetArmy.Trackers[targetHandle].DeathTimestamp = &ts
		}
	}

	tracker.DamageDealt = tracker.DamageDealt.Add(hullDamage.Sub(overkill))
	tracker.Overkill = tracker.Overkill.Add(overkill)
	target.LastDamaged = &now
}
