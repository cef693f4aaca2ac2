package game

import (
	"strings"

	"combatsim/pkg/fixed"
)

// Archetype data, defined as compile-time constants. These are the only
// archetypes carried fully specified; the rest of the roster in
// enums.go's Base enumeration awaits a real data-ingestion pipeline
// fed from the game asset XML.

func weapon(damage int, multihit Multihit, attackSpeed fixed.Real, bonus int, bonusVs Flag,
	target Collision, baseInc, bonusInc int, rangeMax fixed.Real, kind WeaponKind,
	backswing, damagePoint fixed.Real) *Weapon {
	return &Weapon{
		Kind:           kind,
		BaseDamage:     fixed.FromInt(damage),
		BonusDamage:    fixed.FromInt(bonus),
		BonusVs:        bonusVs,
		Planes:         target,
		BaseDamageInc:  fixed.FromInt(baseInc),
		BonusDamageInc: fixed.FromInt(bonusInc),
		RangeMax:       rangeMax,
		Backswing:      backswing,
		DamagePoint:    damagePoint,
		AttackSpeed:    attackSpeed,
		RandomDelayMin: RandomDelayMin,
		RandomDelayMax: RandomDelayMax,
		Multihit:       multihit,
	}
}

func duration(seconds float64) fixed.Real {
	return fixed.FromFloat64(seconds).Div(GameSpeed)
}

func rate(perSecond float64) fixed.Real {
	return fixed.FromFloat64(perSecond).Mul(GameSpeed)
}

var (
	stalkerWeapon = weapon(13, Multihit{Kind: Single}, duration(1.87), 5, FlagArmored,
		CollisionBoth, 1, 1, fixed.FromInt(6), WeaponProjectile, DefaultBackswing, DefaultDamagePoint)

	marineWeapon = weapon(6, Multihit{Kind: Single}, duration(0.8608), 0, FlagNone,
		CollisionBoth, 1, 0, fixed.FromInt(5), WeaponHitscan, duration(0.75), duration(0.05))

	roachWeapon = weapon(16, Multihit{Kind: Single}, duration(2.0), 0, FlagNone,
		CollisionGround, 2, 0, fixed.FromInt(4), WeaponProjectile, DefaultBackswing, DefaultDamagePoint)

	adeptWeapon = weapon(10, Multihit{Kind: Single}, duration(2.25), 12, FlagLight,
		CollisionGround, 1, 1, fixed.FromInt(4), WeaponHitscan, DefaultBackswing, DefaultDamagePoint)

	marauderWeapon = weapon(10, Multihit{Kind: Single}, duration(1.5), 10, FlagArmored,
		CollisionGround, 1, 1, fixed.FromInt(6), WeaponProjectile, DefaultBackswing, DefaultDamagePoint)

	hydraliskWeapon = weapon(12, Multihit{Kind: Single}, duration(0.829), 0, FlagNone,
		CollisionBoth, 1, 0, fixed.FromInt(5), WeaponHitscan, DefaultBackswing, DefaultDamagePoint)

	interceptorWeapon = weapon(5, Multihit{Kind: Single}, duration(1.0), 0, FlagNone,
		CollisionBoth, 1, 0, fixed.FromInt(4), WeaponHitscan, DefaultBackswing, DefaultDamagePoint)

	archonWeapon = weapon(25, Multihit{Kind: Single}, duration(1.75), 10, FlagBiological,
		CollisionBoth, 3, 1, fixed.FromInt(3), WeaponHitscan, DefaultBackswing, DefaultDamagePoint)
)

// Stalker :
var Stalker = &Unit{
	Base:      BaseStalker,
	Faction:   FactionProtoss,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagArmored, FlagMechanical),
	Hull:      Health{Max: fixed.FromInt(80), Armor: fixed.FromInt(1)},
	Shields:   Health{Max: fixed.FromInt(80), Regen: ShieldRechargeRate, Delay: ShieldRechargeDelay},
	Movement:  Movement{Speed: rate(4.13)},
	Cost:      NewCost(125, 50, 2, duration(42.0)),
	Size:      fixed.FromFloat64(0.625),
	Sight:     rate(2.9531),
	Weapons:   [2]*Weapon{stalkerWeapon},
}

// Adept :
var Adept = &Unit{
	Base:      BaseAdept,
	Faction:   FactionProtoss,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagLight, FlagBiological),
	Hull:      Health{Max: fixed.FromInt(70)},
	Shields:   Health{Max: fixed.FromInt(70), Regen: ShieldRechargeRate, Delay: ShieldRechargeDelay},
	Movement:  Movement{Speed: rate(3.5)},
	Cost:      NewCost(100, 25, 2, duration(42)),
	Size:      fixed.FromFloat64(0.5),
	Sight:     rate(2.5),
	Weapons:   [2]*Weapon{adeptWeapon},
}

// Archon :
// Splash on the Archon's attack is expressed through the AoE contract
// (see aoe.go) and applied by a caller; the weapon itself resolves as a
// single-target hit in the default pipeline.
var Archon = &Unit{
	Base:      BaseArchon,
	Faction:   FactionProtoss,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagPsionic, FlagMassive),
	Hull:      Health{Max: fixed.FromInt(10)},
	Shields:   Health{Max: fixed.FromInt(350), Regen: ShieldRechargeRate, Delay: ShieldRechargeDelay},
	Movement:  Movement{Speed: rate(3.15)},
	Cost:      NewCost(100, 300, 4, duration(12)),
	Size:      fixed.FromFloat64(0.75),
	Sight:     rate(2.5),
	Weapons:   [2]*Weapon{archonWeapon},
}

// Marine :
var Marine = &Unit{
	Base:      BaseMarine,
	Faction:   FactionTerran,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagLight, FlagBiological),
	Hull:      Health{Max: fixed.FromInt(45)},
	Movement:  Movement{Speed: rate(3.15)},
	Cost:      NewCost(50, 0, 1, duration(25)),
	Size:      fixed.FromFloat64(0.375),
	Sight:     rate(2.25),
	Weapons:   [2]*Weapon{marineWeapon},
}

// MarineWithCombatShields is Marine with the Combat Shields upgrade
// applied, raising max hull to 55.
var MarineWithCombatShields = func() *Unit {
	u := *Marine
	u.Hull.Max = fixed.FromInt(55)
	return &u
}()

// Marauder :
var Marauder = &Unit{
	Base:      BaseMarauder,
	Faction:   FactionTerran,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagArmored, FlagBiological),
	Hull:      Health{Max: fixed.FromInt(125), Armor: fixed.FromInt(1)},
	Movement:  Movement{Speed: rate(3.15)},
	Cost:      NewCost(100, 25, 2, duration(30)),
	Size:      fixed.FromFloat64(0.625),
	Sight:     rate(2.25),
	Weapons:   [2]*Weapon{marauderWeapon},
}

// Roach :
var Roach = &Unit{
	Base:      BaseRoach,
	Faction:   FactionZerg,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagArmored, FlagBiological),
	Hull:      Health{Max: fixed.FromInt(145), Armor: fixed.FromInt(1), Regen: ZergRegen},
	Movement:  Movement{Speed: rate(3.15)},
	Cost:      NewCost(75, 25, 2, duration(27.0)),
	Size:      fixed.FromFloat64(0.625),
	Sight:     rate(2.25),
	Weapons:   [2]*Weapon{roachWeapon},
}

// Hydralisk :
var Hydralisk = &Unit{
	Base:      BaseHydralisk,
	Faction:   FactionZerg,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagLight, FlagBiological),
	Hull:      Health{Max: fixed.FromInt(90), Regen: ZergRegen},
	Movement:  Movement{Speed: rate(3.15)},
	Cost:      NewCost(100, 50, 2, duration(33.0)),
	Size:      fixed.FromFloat64(0.625),
	Sight:     rate(2.25),
	Weapons:   [2]*Weapon{hydraliskWeapon},
}

// Carrier :
// A structurally significant archetype: adding one via Army.AddUnit also
// appends 8 Interceptor instances directly after it.
var Carrier = &Unit{
	Base:      BaseCarrier,
	Faction:   FactionProtoss,
	Collision: CollisionFlying,
	Flags:     NewFlags(FlagArmored, FlagMechanical, FlagMassive),
	Hull:      Health{Max: fixed.FromInt(250), Armor: fixed.FromInt(2)},
	Shields:   Health{Max: fixed.FromInt(150), Regen: ShieldRechargeRate, Delay: ShieldRechargeDelay},
	Movement:  Movement{Speed: rate(1.88)},
	Cost:      NewCost(350, 250, 6, duration(86)),
	CargoSize: fixed.FromInt(8),
	Size:      fixed.FromFloat64(1.125),
	Sight:     rate(2.5),
}

// Interceptor :
// The carrier's contained fighter; added automatically by Army.AddUnit
// whenever a Carrier archetype is added.
var Interceptor = &Unit{
	Base:      BaseInterceptor,
	Faction:   FactionProtoss,
	Collision: CollisionFlying,
	Flags:     NewFlags(FlagLight, FlagMechanical),
	Hull:      Health{Max: fixed.FromInt(40)},
	Movement:  Movement{Speed: rate(10.0)},
	Cost:      NewCost(15, 0, 0, duration(7)),
	Size:      fixed.FromFloat64(0.5),
	Sight:     rate(2.0),
	Weapons:   [2]*Weapon{interceptorWeapon},
}

// Broodling :
// Registered automatically whenever a BroodLord archetype is added.
var Broodling = &Unit{
	Base:      BaseBroodling,
	Faction:   FactionZerg,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagLight, FlagBiological),
	Hull:      Health{Max: fixed.FromInt(30)},
	Movement:  Movement{Speed: rate(4.5)},
	Size:      fixed.FromFloat64(0.375),
	Sight:     rate(2.0),
}

// Locust :
// Registered automatically whenever a SwarmHost archetype is added.
var Locust = &Unit{
	Base:      BaseLocust,
	Faction:   FactionZerg,
	Collision: CollisionGround,
	Flags:     NewFlags(FlagLight, FlagBiological),
	Hull:      Health{Max: fixed.FromInt(20)},
	Movement:  Movement{Speed: rate(2.95)},
	Size:      fixed.FromFloat64(0.375),
	Sight:     rate(2.0),
	Weapons:   [2]*Weapon{interceptorWeapon},
}

// Archetypes is a lookup table of every archetype defined above, keyed by
// Base, for convenience in the CLI driver and HTTP surface (A5/A6) when
// parsing a roster by name.
var Archetypes = map[Base]*Unit{
	BaseStalker:     Stalker,
	BaseAdept:       Adept,
	BaseArchon:      Archon,
	BaseMarine:      Marine,
	BaseMarauder:    Marauder,
	BaseRoach:       Roach,
	BaseHydralisk:   Hydralisk,
	BaseCarrier:     Carrier,
	BaseInterceptor: Interceptor,
	BaseBroodling:   Broodling,
	BaseLocust:      Locust,
}

// archetypeNames maps the lower-case archetype name to its Base, the
// inverse of Archetypes, for the CLI driver's roster parsing.
var archetypeNames = map[string]Base{
	"stalker":     BaseStalker,
	"adept":       BaseAdept,
	"archon":      BaseArchon,
	"marine":      BaseMarine,
	"marauder":    BaseMarauder,
	"roach":       BaseRoach,
	"hydralisk":   BaseHydralisk,
	"carrier":     BaseCarrier,
	"interceptor": BaseInterceptor,
	"broodling":   BaseBroodling,
	"locust":      BaseLocust,
}

// BaseFromName resolves an archetype's name (case-insensitive) to its
// Base, for the CLI driver's `-army1`/`-army2` roster flags.
func BaseFromName(name string) (Base, bool) {
	b, ok := archetypeNames[strings.ToLower(name)]
	return b, ok
}
