package game

import "combatsim/pkg/fixed"

// ActionKind enumerates the attack state machine's states.
type ActionKind uint8

const (
	Wait ActionKind = iota
	Attack
	DamagePointState
	Move
	Dead
	Cargo
)

// ActionState is the tagged-union state of a unit's attack state machine.
// Only the fields relevant to Kind are meaningful: FireAt/HitIndex for
// DamagePointState, Parent for Cargo.
type ActionState struct {
	Kind     ActionKind
	FireAt   fixed.Real
	HitIndex uint8
	Parent   uint32
}

// WaitState is the initial/idle state.
func WaitState() ActionState { return ActionState{Kind: Wait} }

// AttackState indicates the unit has a target and is eligible to begin
// a new attack once its cooldown elapses.
func AttackState() ActionState { return ActionState{Kind: Attack} }

// NewDamagePoint builds a DamagePointState carrying the absolute fire
// time and the current multi-hit index.
func NewDamagePoint(fireAt fixed.Real, hitIndex uint8) ActionState {
	return ActionState{Kind: DamagePointState, FireAt: fireAt, HitIndex: hitIndex}
}

// DeadState is terminal.
func DeadState() ActionState { return ActionState{Kind: Dead} }

// CargoState blocks all offensive logic for a contained unit.
func CargoState(parent uint32) ActionState {
	return ActionState{Kind: Cargo, Parent: parent}
}

// Effect is a tagged stat variant plus the behavior hooks applied when
// the effect lands on or leaves a unit; the closures are stored
// directly on the record.
type Effect struct {
	Stat      Stat
	Apply     func(*State)
	Remove    func(*State)
	Timestamp fixed.Real
}

// Stat names an attribute an Effect can modify.
type Stat uint8

const (
	StatSpeed Stat = iota
	StatDamage
	StatArmor
)

// State :
// Per-instance runtime state for one unit, kept separate from its
// immutable archetype. A unit's archetype is reached via
// Army.UnitFromHandle, never stored as a back-pointer on State.
type State struct {
	Base         Base
	Action       ActionState
	MaxSpeed     fixed.Real
	Hull         fixed.Real
	Shields      fixed.Real
	Energy       *fixed.Real
	Target       *uint32
	AttackCd     fixed.Real
	LastDamaged  *fixed.Real
	Invisible    bool
	Burrowed     bool
	MoveAndShoot bool
	Untargetable bool
	CanAttack    bool
	Collision    Collision
	Effects      []Effect
	Parent       *uint32
}

// NewState builds the initial runtime state for a freshly added instance
// of the given archetype.
func NewState(unit *Unit) *State {
	s := &State{
		Base:         unit.Base,
		Action:       WaitState(),
		Hull:         unit.Hull.Max,
		Shields:      unit.Shields.Max,
		MoveAndShoot: unit.Base == BasePhoenix,
		CanAttack:    unit.Weapons[0] != nil || unit.Weapons[1] != nil,
		Collision:    unit.Collision,
		MaxSpeed:     unit.Movement.Speed,
	}
	if unit.EnergyMax > 0 {
		start := unit.EnergyStart
		s.Energy = &start
	}
	return s
}

// withParent marks this state as contained within the given carrier/
// broodlord handle.
func (s *State) withParent(handle uint32) *State {
	s.Parent = &handle
	return s
}

// IsAlive reports hull > 0.
func (s *State) IsAlive() bool {
	return s.Hull > 0
}

// IsDead reports hull <= 0. Death is monotone: once true it only becomes
// false again via Army.Reset.
func (s *State) IsDead() bool {
	return s.Hull <= 0
}

// ResetSpeed reapplies any live speed-modifying effect on top of the
// archetype's base speed.
func (s *State) ResetSpeed(baseSpeed fixed.Real) {
	s.MaxSpeed = baseSpeed
	for i := range s.Effects {
		e := &s.Effects[i]
		if e.Stat == StatSpeed && e.Apply != nil {
			e.Apply(s)
		}
	}
}

// Tracker :
// Per-instance bookkeeping used for outcome reporting.
type Tracker struct {
	DamageDealt    fixed.Real
	Overkill       fixed.Real
	DeathTimestamp *fixed.Real
}
