// SPDX-License-Identifier: MIT

// Package engine - shapes and monomial layouts.
//
// Purpose:
//   - Map a compile-time Shape to its monomial table (exponents, degrees,
//     packed-key index) and the truncated product table.
//   - Build each table once per (nv, mo) and share it across goroutines.
//
// Complexity quicksheet:
//   - buildLayout: O(dim*nv + P) where P = number of admissible products.
//   - layoutOf: O(1) amortized (sync.Map hit).

package engine

import "sync"

// Shape fixes the variable count and truncation order of a series type.
// Implementations are zero-size marker structs; methods must be pure and
// must return the same values for every call.
type Shape interface {
	// Vars returns the number of variables (>= 1).
	Vars() int
	// Order returns the truncation order, the highest total degree kept (>= 0).
	Order() int
}

// product records monomial i * monomial j = monomial k.
type product struct {
	i, j, k int
}

// layout is the monomial table for one (nv, mo) pair. Immutable once built.
type layout struct {
	nv, mo   int
	exps     [][]int     // exponent vector per monomial index
	degree   []int       // total degree per monomial index
	upTo     []int       // upTo[d] = number of monomials with degree <= d
	index    map[int]int // packed exponent key -> monomial index
	products []product   // every (i, j) with degree[i]+degree[j] <= mo
}

type layoutKey struct {
	nv, mo int
}

// layouts caches *layout by layoutKey for the process lifetime.
var layouts sync.Map

// layoutOf returns the shared layout for S, building it on first use.
// Concurrent first calls may build twice; LoadOrStore keeps exactly one.
func layoutOf[S Shape]() *layout {
	var s S
	key := layoutKey{nv: s.Vars(), mo: s.Order()}
	if l, ok := layouts.Load(key); ok {
		return l.(*layout)
	}
	l, _ := layouts.LoadOrStore(key, buildLayout(key.nv, key.mo))

	return l.(*layout)
}

// buildLayout enumerates monomials of nv variables up to total degree mo.
// Implementation:
//   - Stage 1: validate the shape (panic on programmer error).
//   - Stage 2: enumerate degree by degree, first exponent descending.
//   - Stage 3: precompute the truncated product table.
//
// Complexity:
//   - Time O(dim*nv + P), Space O(dim*nv + P).
func buildLayout(nv, mo int) *layout {
	if nv < 1 {
		panic(panicBadVars)
	}
	if mo < 0 {
		panic(panicBadOrder)
	}
	l := &layout{
		nv:    nv,
		mo:    mo,
		upTo:  make([]int, mo+1),
		index: make(map[int]int),
	}

	// Stage 2: degree-graded enumeration.
	exp := make([]int, nv)
	for d := 0; d <= mo; d++ {
		l.enumerate(exp, 0, d, d)
		l.upTo[d] = len(l.exps)
	}

	// Stage 3: monomials are sorted by degree, so the admissible partners of
	// i are exactly the prefix [0, upTo[mo-degree[i]]).
	sum := make([]int, nv)
	for i := range l.exps {
		limit := l.upTo[mo-l.degree[i]]
		for j := 0; j < limit; j++ {
			for v := 0; v < nv; v++ {
				sum[v] = l.exps[i][v] + l.exps[j][v]
			}
			l.products = append(l.products, product{i: i, j: j, k: l.index[l.key(sum)]})
		}
	}

	return l
}

// enumerate appends every exponent vector with exp[v:] summing to rest.
func (l *layout) enumerate(exp []int, v, rest, deg int) {
	if v == l.nv-1 {
		exp[v] = rest
		e := append([]int(nil), exp...)
		l.index[l.key(e)] = len(l.exps)
		l.exps = append(l.exps, e)
		l.degree = append(l.degree, deg)
		return
	}
	for e := rest; e >= 0; e-- {
		exp[v] = e
		l.enumerate(exp, v+1, rest-e, deg)
	}
}

// key packs an exponent vector in base mo+1; every exponent is <= mo.
func (l *layout) key(exp []int) int {
	k := 0
	for v := l.nv - 1; v >= 0; v-- {
		k = k*(l.mo+1) + exp[v]
	}

	return k
}

// dim is the number of monomials, C(nv+mo, mo).
func (l *layout) dim() int {
	return len(l.exps)
}

// mulInto accumulates the truncated product a*b into out.
// out must not alias a or b.
func (l *layout) mulInto(out, a, b []float64) {
	for _, p := range l.products {
		out[p.k] += a[p.i] * b[p.j]
	}
}

// Dim returns the number of coefficients of a TPSA[S].
func Dim[S Shape]() int {
	return layoutOf[S]().dim()
}
