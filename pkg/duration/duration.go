// Package duration carries the time measurements attached to simulated
// fights: the wall-clock time a batch worker spent producing an
// outcome, and the in-game length of a fight converted back into
// wall-clock terms for reporting.
package duration

import (
	"encoding/json"
	"fmt"
	"time"

	"combatsim/pkg/fixed"
)

// gameSpeed scales in-game seconds to wall-clock seconds: a fight that
// lasts 14 in-game seconds takes 10 seconds on the wall.
const gameSpeed = 1.4

// ErrInvalidInput :
// Raised when unmarshalling a value that is neither a nanosecond count
// nor a parseable duration string.
var ErrInvalidInput = fmt.Errorf("could not unmarshal value to duration")

// Duration :
// A wrapper around time.Duration marshalling to the human-readable form
// ("2.4s") instead of a raw nanosecond count, so archived outcome rows
// and batch results read naturally.
type Duration struct {
	time.Duration
}

// NewDuration wraps a wall-clock measurement.
func NewDuration(t time.Duration) Duration {
	return Duration{t}
}

// FromGameSeconds converts a fight length expressed in in-game seconds
// (the unit the coordinator's clock advances in) into the wall-clock
// time the same fight would take at normal game speed. Only used for
// reporting; the simulation itself never leaves fixed-point.
func FromGameSeconds(seconds fixed.Real) Duration {
	wall := seconds.Float64() / gameSpeed
	return Duration{time.Duration(wall * float64(time.Second))}
}

// MarshalJSON renders the duration as its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either the string form produced by MarshalJSON
// or a plain nanosecond count.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return ErrInvalidInput
		}
		d.Duration = parsed
	default:
		return ErrInvalidInput
	}

	return nil
}
