// SPDX-License-Identifier: MIT

// Package adapter binds engine.TPSA shapes to a dynamically-typed host.
//
// Two layers share one implementation:
//
//   - Object[S] is the typed surface for Go callers. It owns exactly one
//     engine value; cross-shape arithmetic does not compile.
//   - Class is the type-erased surface a host sees: Construct from host
//     values, then Invoke methods by name with host arguments. Every Class
//     is produced by NewClass[S], so all shapes expose the same methods.
//
// Host values:
//
//	A coefficient sequence is []any, []float64 or []float32. Only float64
//	and float32 elements count as host floats; integers, strings, bools and
//	nil are rejected with InvalidArgument rather than dropped or coerced.
//
// Errors:
//
//	Every failure is an *Error whose Kind matches one of ErrInvalidArgument,
//	ErrUnsupportedOperand or ErrUnknownMethod via errors.Is. No call returns
//	a partial result together with an error.
//
// Concurrency:
//
//	Objects are single-owner values. AddInPlace mutates its receiver and
//	needs exclusive access; every other method leaves its operands intact.
//	Class values are immutable after NewClass and safe to share.
package adapter
