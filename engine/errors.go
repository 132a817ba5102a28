// SPDX-License-Identifier: MIT
// Package engine: sentinel errors and programmer-error panic messages.
//
// Every message is prefixed with "engine: ...". Tests match with errors.Is.
// Panics are reserved for invalid shapes and invalid options (programmer
// errors); user data never panics.

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyCoefficients is returned by New when the coefficient sequence
	// is longer than the dimension of the shape.
	ErrTooManyCoefficients = errors.New("engine: too many coefficients for shape")
)

const (
	panicBadVars      = "engine: Shape.Vars() must be >= 1"
	panicBadOrder     = "engine: Shape.Order() must be >= 0"
	panicBadPrecision = "engine: WithPrecision: precision must be in [0, 17]"
)

// engineErrorf attaches a call-site tag to a sentinel while preserving it for errors.Is.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
