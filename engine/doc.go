// SPDX-License-Identifier: MIT

// Package engine implements truncated multivariate power series (TPSA) over
// float64, parameterized at compile time by a Shape.
//
// What & Why:
//
//	A TPSA[S] is a Taylor polynomial in S.Vars() variables whose terms above
//	total degree S.Order() are discarded after every operation. The shape is
//	part of the Go type, so series of different shapes can never be mixed:
//	Add, Mul and friends only accept an operand of the identical TPSA[S].
//
// Monomial order:
//
//	Monomials are sorted by total degree, then lexicographically with the
//	first variable's exponent descending. For nv=2, mo=2:
//
//	  index: 0      1      2      3      4      5
//	  exps:  (0,0)  (1,0)  (0,1)  (2,0)  (1,1)  (0,2)
//
//	Index 0 is always the constant term; indices 1..nv are the first-order
//	variables. The dimension is C(nv+mo, mo).
//
// Complexity:
//
//	Add/Scale/Clone run in O(dim). Mul runs in O(P) where P is the number of
//	monomial pairs whose degrees sum to at most mo; Sin/Cos/Exp cost mo
//	products. Monomial tables are built once per (nv, mo) and shared.
package engine
