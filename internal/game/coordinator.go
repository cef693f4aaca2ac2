package game

import "combatsim/pkg/fixed"

// Team identifies one of the two sides in a Coordinator.
type Team uint8

const (
	Team1 Team = iota
	Team2
)

// Winner identifies the outcome of a simulated fight.
type Winner uint8

const (
	// WinnerNone is a coincident double-kill: both armies reached zero
	// live units on the same tick.
	WinnerNone Winner = iota
	WinnerTeam1
	WinnerTeam2
	// WinnerTimeout is returned only if SafetyCap is set and reached
	// before either army was annihilated.
	WinnerTimeout
)

// Outcome :
// The structured result of one Coordinator.Simulate call.
type Outcome struct {
	Winner             Winner
	Duration           fixed.Real
	TotalCostA1        Cost
	TotalCostA2        Cost
	CostDifference     Cost
	ResourcesLost      Cost
	CostUnitsRemaining Cost
	UnitsRemaining     map[Base]int
	UnitsLost          map[Base]int
	DamageDealtA1      fixed.Real
	DamageDealtA2      fixed.Real
	Seed               int64
}

// Coordinator :
// Owns both armies, the current simulation time, and a seeded random
// source. A single Coordinator's state is never concurrently accessed;
// parallel simulation runs use one Coordinator per goroutine (see
// internal/batch).
type Coordinator struct {
	A1, A2 *Army
	Time   fixed.Real
	Rng    *Rng
	Seed   int64

	// SafetyCap bounds the number of ticks Simulate will run before
	// forcing a WinnerTimeout outcome. Zero means unlimited: the
	// simulator runs to natural termination.
	SafetyCap int
}

// NewCoordinator builds a Coordinator with fresh, empty armies and the
// given seed.
func NewCoordinator(seed int64) *Coordinator {
	return &Coordinator{
		A1:   NewArmy(1),
		A2:   NewArmy(2),
		Rng:  NewRng(seed),
		Seed: seed,
	}
}

// SeedRng reseeds the coordinator's random source in place without
// touching the armies.
func (c *Coordinator) SeedRng(seed int64) {
	c.Seed = seed
	c.Rng.SetSeed(seed)
}

// RandomizeSeed draws a fresh seed from the current generator state and
// reseeds with it, returning the new seed so the caller can record it for
// later replay.
func (c *Coordinator) RandomizeSeed() int64 {
	seed := c.Rng.FreshSeed()
	c.SeedRng(seed)
	return seed
}

// Reset restores both armies to their initial composition and resets the
// clock to zero, preserving the current seed.
func (c *Coordinator) Reset() {
	c.A1.Reset()
	c.A2.Reset()
	c.Time = fixed.Zero
}

func bothLive(a1, a2 *Army) bool {
	return a1.LiveCount() > 0 && a2.LiveCount() > 0
}

// Simulate runs the fight to completion: the main tick loop (targeting,
// regen, attack resolution Army1-then-Army2, projectile sweep, time
// advance) while both armies have at least one live unit, then a drain
// phase that runs regen/sweep/time-advance alone while both projectile
// queues remain non-empty.
//
// The drain phase intentionally stops as soon as either queue empties,
// not once both have; see DESIGN.md.
func (c *Coordinator) Simulate() Outcome {
	ticks := 0
	for bothLive(c.A1, c.A2) {
		if c.SafetyCap > 0 && ticks >= c.SafetyCap {
			return c.outcome(WinnerTimeout)
		}
		ticks++

		c.A1.AcquireTargets(c.A2, c.Rng)
		c.A2.AcquireTargets(c.A1, c.Rng)

		c.A1.Heal(c.Time)
		c.A2.Heal(c.Time)

		ResolveAttacks(c.A1, c.A2, c.Time, c.Rng)
		ResolveAttacks(c.A2, c.A1, c.Time, c.Rng)

		SweepProjectiles(c.A1, c.A2, c.Time)
		SweepProjectiles(c.A2, c.A1, c.Time)

		c.Time = c.Time.Add(Tick)
	}

	for len(c.A1.Projectiles) > 0 && len(c.A2.Projectiles) > 0 {
		c.A1.Heal(c.Time)
		c.A2.Heal(c.Time)

		SweepProjectiles(c.A1, c.A2, c.Time)
		SweepProjectiles(c.A2, c.A1, c.Time)

		c.Time = c.Time.Add(Tick)
	}

	a1Live := c.A1.LiveCount() > 0
	a2Live := c.A2.LiveCount() > 0

	var winner Winner
	switch {
	case a1Live && !a2Live:
		winner = WinnerTeam1
	case a2Live && !a1Live:
		winner = WinnerTeam2
	default:
		winner = WinnerNone
	}

	return c.outcome(winner)
}

func (c *Coordinator) outcome(winner Winner) Outcome {
	o := Outcome{
		Winner:         winner,
		Duration:       c.Time,
		TotalCostA1:    c.A1.TotalCost(),
		TotalCostA2:    c.A2.TotalCost(),
		DamageDealtA1:  c.A1.DamageDealt(),
		DamageDealtA2:  c.A2.DamageDealt(),
		UnitsRemaining: make(map[Base]int),
		UnitsLost:      make(map[Base]int),
		Seed:           c.Seed,
	}
	o.CostDifference = o.TotalCostA1.Sub(o.TotalCostA2)

	// ResourcesLost, CostUnitsRemaining, UnitsRemaining and UnitsLost are
	// all scoped to the winning army alone (cost of what the winner lost,
	// and what the winner has left). On a draw there is no winner, so all
	// four stay empty.
	var winningArmy *Army
	switch winner {
	case WinnerTeam1:
		winningArmy = c.A1
	case WinnerTeam2:
		winningArmy = c.A2
	}
	if winningArmy != nil {
		for _, u := range winningArmy.Units {
			base := winningArmy.BaseUnits[u.Base]
			if u.IsAlive() {
				o.UnitsRemaining[u.Base]++
				o.CostUnitsRemaining = o.CostUnitsRemaining.Add(base.Cost)
			} else {
				o.UnitsLost[u.Base]++
				o.ResourcesLost = o.ResourcesLost.Add(base.Cost)
			}
		}
	}

	return o
}

// ApplyAoE applies an area effect relative to the named casting team,
// dispatching on effect.Affiliation: Friendly applies it to the caster's
// own army, Enemy to the opposing army, and Both to both armies. This is
// never called from Simulate; it exists as a public contract for a caller
// to integrate explicitly (e.g. a future spell-cast feature).
func (c *Coordinator) ApplyAoE(team Team, effect AoE) {
	own, opnt := c.A1, c.A2
	if team == Team2 {
		own, opnt = c.A2, c.A1
	}

	switch effect.Affiliation {
	case AffiliationFriendly:
		effect.Apply(own)
	case AffiliationBoth:
		effect.Apply(own)
		effect.Apply(opnt)
	default: // AffiliationEnemy
		effect.Apply(opnt)
	}
}
