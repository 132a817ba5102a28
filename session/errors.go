// SPDX-License-Identifier: MIT

package session

import "errors"

var (
	// ErrInvalidStep indicates a malformed step (wrong kind mix, missing field).
	ErrInvalidStep = errors.New("session: invalid step")

	// ErrUnknownVariable indicates a reference to an unbound name.
	ErrUnknownVariable = errors.New("session: unknown variable")

	// ErrNotAnInstance indicates a call on a value that no registered type owns.
	ErrNotAnInstance = errors.New("session: value is not a registered instance")
)
