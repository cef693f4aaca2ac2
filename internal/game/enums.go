package game

// Base :
// Identifies a unit archetype. Only a handful of archetypes have a
// constant Unit value defined (see archetypes.go), but the enumeration
// lists the full roster so that a future data-ingestion pipeline can
// populate the rest without changing this type.
type Base uint16

const (
	BaseCustom Base = iota

	BaseProbe
	BaseZealot
	BaseStalker
	BaseAdept
	BaseSentry
	BaseHighTemplar
	BaseDarkTemplar
	BaseArchon
	BaseObserver
	BaseWarpPrism
	BaseImmortal
	BaseColossus
	BaseDisruptor
	BasePhoenix
	BaseVoidRay
	BaseOracle
	BaseTempest
	BaseCarrier
	BaseInterceptor
	BaseMothership

	BaseSCV
	BaseMULE
	BaseMarine
	BaseReaper
	BaseMarauder
	BaseGhost
	BaseHellion
	BaseHellbat
	BaseWidowMine
	BaseWidowMineBurrowed
	BaseCyclone
	BaseSiegeTank
	BaseSiegeTankSieged
	BaseThor
	BaseThorAlt
	BaseVikingGround
	BaseVikingAir
	BaseMedivac
	BaseLiberator
	BaseLiberatorSieged
	BaseRaven
	BaseBanshee
	BaseBattlecruiser

	BaseDrone
	BaseLarva
	BaseCocoon
	BaseOverlord
	BaseOverseer
	BaseQueen
	BaseZergling
	BaseBaneling
	BaseRoach
	BaseRoachBurrowed
	BaseRavager
	BaseRavagerCocoon
	BaseHydralisk
	BaseLurker
	BaseLurkerBurrowed
	BaseLurkerEgg
	BaseMutalisk
	BaseCorruptor
	BaseSwarmHost
	BaseLocust
	BaseLocustFlying
	BaseInfestor
	BaseInfestorBurrowed
	BaseViper
	BaseUltralisk
	BaseBroodLord
	BaseBroodling
	BaseChangeling
)

// Flag :
// A single taxonomy/armor-class bit. Weapon bonus damage is conditioned
// on the target possessing one of these.
type Flag uint32

const (
	FlagNone         Flag = 0
	FlagLight        Flag = 1 << 0
	FlagArmored      Flag = 1 << 1
	FlagBiological   Flag = 1 << 2
	FlagMassive      Flag = 1 << 3
	FlagMechanical   Flag = 1 << 4
	FlagPsionic      Flag = 1 << 5
	FlagStructure    Flag = 1 << 6
	FlagHeroic       Flag = 1 << 7
	FlagAlwaysThreat Flag = 1 << 8
)

// Faction is an archetype's race. Regen rates are carried per archetype
// in its Health values; no code derives them from the Faction.
type Faction uint8

const (
	FactionCustom Faction = iota
	FactionProtoss
	FactionTerran
	FactionZerg
)

// Collision :
// The plane(s) a unit or weapon can interact with. `None` only applies to
// invincible units (e.g. under stasis); `Both` only applies to units like
// the Colossus that can be targeted by and can target any plane.
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionFlying
	CollisionBoth
)

// CanInteract reports whether a unit/weapon occupying plane `c` can
// interact with something on plane `other`: None interacts with
// nothing; Ground/Flying interact with themselves or Both; Both
// interacts with anything but None.
func (c Collision) CanInteract(other Collision) bool {
	switch c {
	case CollisionNone:
		return false
	case CollisionGround, CollisionFlying:
		return c == other || other == CollisionBoth
	case CollisionBoth:
		return other != CollisionNone
	default:
		return false
	}
}

// ThreatLevel is reserved for a future targeting refinement; the
// targeting pass selects uniformly at random and does not consult it,
// so it is present as data only.
type ThreatLevel uint8

const (
	ThreatNone     ThreatLevel = 0
	ThreatCocoon   ThreatLevel = 10
	ThreatBuilding ThreatLevel = 11
	ThreatLow      ThreatLevel = 19
	ThreatNormal   ThreatLevel = 20
)

// Flags is a bitset of Flag values.
type Flags struct {
	inner uint32
}

// NewFlags builds a Flags bitset from the given bits ORed together.
func NewFlags(bits ...Flag) Flags {
	var inner uint32
	for _, b := range bits {
		inner |= uint32(b)
	}
	return Flags{inner: inner}
}

// Is reports whether flag is set.
func (f Flags) Is(flag Flag) bool {
	return f.inner&uint32(flag) != 0
}
