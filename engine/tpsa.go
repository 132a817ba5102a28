// SPDX-License-Identifier: MIT

// Package engine - the TPSA value type and its algebra.
//
// Purpose:
//   - Own a flat coefficient buffer in monomial order (see doc.go).
//   - Provide value semantics: every operation except AddAssign returns a
//     fresh series and never aliases its operands.
//
// Notes:
//   - The zero value is the zero series; methods treat a nil buffer as all zeros.

package engine

import "fmt"

// TPSA is a truncated power series of shape S.
type TPSA[S Shape] struct {
	c []float64 // len == Dim[S]() once materialized; nil means zero series
}

// New builds a series from coefficients given in monomial order.
// MAIN DESCRIPTION:
//   - Copies coeffs into a buffer of length Dim[S](); missing trailing
//     coefficients are zero.
//
// Inputs:
//   - coeffs: coefficients, index 0 = constant term. May be empty.
//
// Returns:
//   - TPSA[S]: independent of coeffs (the slice is copied).
//
// Errors:
//   - ErrTooManyCoefficients when len(coeffs) > Dim[S]().
//
// Complexity:
//   - Time O(dim), Space O(dim).
func New[S Shape](coeffs []float64) (TPSA[S], error) {
	l := layoutOf[S]()
	if len(coeffs) > l.dim() {
		return TPSA[S]{}, engineErrorf(fmt.Sprintf("New(len=%d, dim=%d)", len(coeffs), l.dim()), ErrTooManyCoefficients)
	}
	buf := make([]float64, l.dim())
	copy(buf, coeffs)

	return TPSA[S]{c: buf}, nil
}

// Zero returns the materialized zero series of shape S.
func Zero[S Shape]() TPSA[S] {
	return TPSA[S]{c: make([]float64, layoutOf[S]().dim())}
}

// view returns the coefficient buffer, materializing zeros for the zero value.
// The returned slice must not be written unless it is t's own buffer.
func (t TPSA[S]) view(l *layout) []float64 {
	if t.c == nil {
		return make([]float64, l.dim())
	}

	return t.c
}

// Vars returns the number of variables of S.
func (t TPSA[S]) Vars() int {
	var s S
	return s.Vars()
}

// Order returns the truncation order of S.
func (t TPSA[S]) Order() int {
	var s S
	return s.Order()
}

// Len returns the number of coefficients (the dimension of S).
func (t TPSA[S]) Len() int {
	return Dim[S]()
}

// Constant returns the degree-0 coefficient.
func (t TPSA[S]) Constant() float64 {
	if t.c == nil {
		return 0
	}

	return t.c[0]
}

// Coefficients returns a copy of all coefficients in monomial order.
func (t TPSA[S]) Coefficients() []float64 {
	l := layoutOf[S]()
	out := make([]float64, l.dim())
	copy(out, t.view(l))

	return out
}

// Exponents returns the exponent vector of monomial index i, or nil when i
// is out of range.
func (t TPSA[S]) Exponents(i int) []int {
	l := layoutOf[S]()
	if i < 0 || i >= l.dim() {
		return nil
	}

	return append([]int(nil), l.exps[i]...)
}

// Clone returns a deep copy.
// Complexity: O(dim).
func (t TPSA[S]) Clone() TPSA[S] {
	if t.c == nil {
		return TPSA[S]{}
	}

	return TPSA[S]{c: append([]float64(nil), t.c...)}
}

// Add returns t + o.
// Complexity: O(dim).
func (t TPSA[S]) Add(o TPSA[S]) TPSA[S] {
	l := layoutOf[S]()
	a, b := t.view(l), o.view(l)
	out := make([]float64, l.dim())
	for i := range out {
		out[i] = a[i] + b[i]
	}

	return TPSA[S]{c: out}
}

// AddAssign sets t = t + o in place. o may be t itself.
// Complexity: O(dim).
func (t *TPSA[S]) AddAssign(o TPSA[S]) {
	l := layoutOf[S]()
	if t.c == nil {
		t.c = make([]float64, l.dim())
	}
	b := o.view(l)
	for i := range t.c {
		t.c[i] += b[i]
	}
}

// Scale returns s*t, every coefficient multiplied by s.
// Complexity: O(dim).
func (t TPSA[S]) Scale(s float64) TPSA[S] {
	l := layoutOf[S]()
	a := t.view(l)
	out := make([]float64, l.dim())
	for i := range out {
		out[i] = a[i] * s
	}

	return TPSA[S]{c: out}
}

// Mul returns the series product t*o truncated at S.Order().
// MAIN DESCRIPTION:
//   - Cauchy product over the precomputed product table; terms whose
//     degree exceeds the order are never formed.
//
// Behavior highlights:
//   - Commutative; o may be t itself.
//
// Complexity:
//   - Time O(P), Space O(dim).
func (t TPSA[S]) Mul(o TPSA[S]) TPSA[S] {
	l := layoutOf[S]()
	out := make([]float64, l.dim())
	l.mulInto(out, t.view(l), o.view(l))

	return TPSA[S]{c: out}
}
