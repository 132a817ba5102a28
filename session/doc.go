// SPDX-License-Identifier: MIT

// Package session is a small dynamically-typed host for the tpsa module.
//
// A session document lists steps evaluated in order against a
// registry.Module. Values keep their YAML host kinds: 2.0 is a float, 2 is
// an integer, so a coefficient list written with integers is rejected by
// construction exactly as a dynamic host would reject it.
//
//	steps:
//	  - let: x
//	    new: Tpsa6D
//	    args: [[2.0]]
//	  - let: x2
//	    call: multiply
//	    on: x
//	    args: [$x]
//	  - print: x2
//
// Step kinds (exactly one per step):
//
//	new:   construct the named type from args[0]
//	call:  invoke a method on the instance bound to `on`
//	print: write the rendering of a bound value
//
// `let` binds the result of new/call. A string argument starting with "$"
// names a bound value. JSON documents are accepted (YAML superset).
package session
