// Package game implements the deterministic combat core: fixed-point-driven
// archetypes, per-instance army state, the attack state machine, damage
// resolution, and the tick coordinator that drives them all to an Outcome.
package game

import "combatsim/pkg/fixed"

// GameSpeed scales in-game seconds to wall-clock seconds; every duration
// and rate constant below is expressed in "blizzard time" derived from it.
var GameSpeed = fixed.FromFloat64(1.4)

// Tick is the simulation step, in blizzard-time seconds: 1/22.4.
var Tick = fixed.One.Div(fixed.FromFloat64(22.4))

// Simulation-wide tunables, all expressed in blizzard time.
var (
	RandomDelayMin         = fixed.FromFloat64(-0.0625).Div(GameSpeed)
	RandomDelayMax         = fixed.FromFloat64(0.125).Div(GameSpeed)
	BCRandomDelayMax       = fixed.FromFloat64(0.1875).Div(GameSpeed)
	ShieldRechargeDelay    = fixed.FromInt(10).Div(GameSpeed)
	ShieldRechargeRate     = fixed.FromInt(2).Mul(GameSpeed)
	ZergRegen              = fixed.FromFloat64(0.2734).Mul(GameSpeed)
	MutaRegen              = fixed.One.Mul(GameSpeed)
	EnergyRegen            = fixed.FromFloat64(0.5625).Mul(GameSpeed)
	MinDamage              = fixed.FromFloat64(0.5)
	ChronoBoostMod         = fixed.FromFloat64(1.5)
	DefaultProjectileSpeed = fixed.FromFloat64(18.75).Mul(GameSpeed)
	DefaultBackswing       = fixed.FromFloat64(0.5).Div(GameSpeed)
	DefaultDamagePoint     = fixed.FromFloat64(0.167).Div(GameSpeed)
)
