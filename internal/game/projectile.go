package game

import "combatsim/pkg/fixed"

// SweepProjectiles removes every projectile owned by a whose timer has
// elapsed and applies its damage against opp. Order is irrelevant so
// expired entries are removed via swap-remove. Damage still applies even
// if the target died after the projectile was launched: the tracker
// records it, and the target's hull simply stays at or below zero.
func SweepProjectiles(a, opp *Army, now fixed.Real) {
	i := 0
	for i < len(a.Projectiles) {
		p := a.Projectiles[i]
		if p.Timer < now {
			weapon := a.UnitFromHandle(p.Source).TryGetWeapon(opp.UnitFromHandle(p.Target))
			if weapon != nil {
				ApplyDamage(&a.Trackers[p.Source], p.Target, opp, weapon, now)
			}

			last := len(a.Projectiles) - 1
			a.Projectiles[i] = a.Projectiles[last]
			a.Projectiles = a.Projectiles[:last]
			continue
		}
		i++
	}
}
