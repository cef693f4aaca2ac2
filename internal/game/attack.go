package game

import "combatsim/pkg/fixed"

// ResolveAttacks advances the attack state machine for every unit in a,
// against opponent opp, at the given time. Units that are dead, have no
// target, or cannot attack are skipped entirely. Ordering within the
// army is handle order (0..n); the caller is responsible for invoking
// this for Army1 before Army2 each tick so that the visit order stays
// deterministic.
func ResolveAttacks(a, opp *Army, now fixed.Real, rng UniformSource) {
	for handle, u := range a.Units {
		if u.IsDead() || u.Target == nil || !u.CanAttack {
			continue
		}
		if u.Action.Kind == Cargo {
			continue
		}

		target := *u.Target
		archetype := a.UnitFromHandle(uint32(handle))

		switch u.Action.Kind {
		case DamagePointState:
			if u.Action.FireAt > now {
				continue
			}

			weapon := archetype.TryGetWeapon(opp.UnitFromHandle(target))
			if weapon == nil {
				// The target became invalid mid-tick (left the weapon's
				// reachable planes). Re-validation failed, so the damage
				// event is dropped and the unit returns to Attack.
				u.Action = AttackState()
				continue
			}

			if weapon.Kind == WeaponProjectile {
				a.Projectiles = append(a.Projectiles, NewProjectile(uint32(handle), target, weapon.RangeMax, now))
			} else {
				ApplyDamage(&a.Trackers[handle], target, opp, weapon, now)
			}

			offsets := u.Action.HitIndex
			if schedule := weapon.Multihit.offsets(); int(offsets) < len(schedule) {
				u.Action = NewDamagePoint(schedule[offsets].Add(now), offsets+1)
			} else {
				u.Action = AttackState()
			}

		default:
			if now < u.AttackCd {
				continue
			}

			weapon := archetype.TryGetWeapon(opp.UnitFromHandle(target))
			if weapon == nil {
				continue
			}

			u.AttackCd = now.Add(weapon.GetCooldown(rng))
			u.Action = NewDamagePoint(now.Add(weapon.DamagePoint), 0)
		}
	}
}
