package game

import "math/rand"

// Rng is a seedable, reproducible pseudo-random source used by target
// acquisition and attack-cooldown jitter. It wraps math/rand, seeded
// once and never reset, so a fight can be replayed from its seed.
type Rng struct {
	seed   int64
	source *rand.Rand
}

// NewRng builds a Rng from a 64-bit seed.
func NewRng(seed int64) *Rng {
	return &Rng{
		seed:   seed,
		source: rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this Rng was constructed with.
func (r *Rng) Seed() int64 {
	return r.seed
}

// SetSeed reseeds this generator in place.
func (r *Rng) SetSeed(seed int64) {
	r.seed = seed
	r.source = rand.New(rand.NewSource(seed))
}

// FreshSeed derives a new seed value from the current generator's state,
// for callers that want a recordable per-run seed (e.g. the CLI driver's
// batch runs). The draw is deterministic: the same seed yields the same
// sequence of fresh seeds.
func (r *Rng) FreshSeed() int64 {
	return r.source.Int63()
}

// Int63n returns a uniform draw in [0, n). Implements UniformSource for
// both Army.AcquireTargets and Weapon.GetCooldown/GetDelay.
func (r *Rng) Int63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return r.source.Int63n(n)
}
