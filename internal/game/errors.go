package game

import "fmt"

// ErrArchetypeMissing :
// Indicates that a unit instance references a Base with no entry in its
// army's archetype table. This should never happen if units are only
// ever added through Army.AddUnit; it signals a bug, not bad input. No
// code in this package returns or panics with this value: a missing
// entry surfaces as a nil-pointer panic where the archetype is used.
var ErrArchetypeMissing = fmt.Errorf("game: archetype missing from army's base table")

// ErrEmptyOpponent :
// Indicates that Army.AcquireTargets was invoked against an opponent
// with no live units. The coordinator must check for mutual annihilation
// before calling AcquireTargets; this is a precondition violation, not a
// recoverable runtime condition, and AcquireTargets panics with it.
var ErrEmptyOpponent = fmt.Errorf("game: acquire targets invoked against an empty opponent army")
