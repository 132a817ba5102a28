// SPDX-License-Identifier: MIT

package engine

import "math"

// Sin returns sin(t) truncated at S.Order().
func (t TPSA[S]) Sin() TPSA[S] {
	s, c := math.Sincos(t.Constant())
	return t.compose(cyclic(s, c, -s, -c))
}

// Cos returns cos(t) truncated at S.Order().
func (t TPSA[S]) Cos() TPSA[S] {
	s, c := math.Sincos(t.Constant())
	return t.compose(cyclic(c, -s, -c, s))
}

// Exp returns exp(t) truncated at S.Order().
func (t TPSA[S]) Exp() TPSA[S] {
	e := math.Exp(t.Constant())
	return t.compose(cyclic(e, e, e, e))
}

// cyclic returns a derivative generator for functions whose k-th
// derivative at the expansion point is d[k%4].
func cyclic(d0, d1, d2, d3 float64) func(k int) float64 {
	d := [4]float64{d0, d1, d2, d3}
	return func(k int) float64 { return d[k%4] }
}

// compose evaluates f(t) = sum_k f^(k)(a0)/k! * delta^k, where a0 is the
// constant term and delta = t - a0 is nilpotent: delta^(mo+1) = 0.
// Implementation:
//   - Stage 1: split t into a0 and delta.
//   - Stage 2: accumulate powers of delta with running 1/k!.
//
// Complexity:
//   - Time O(mo*P), Space O(dim).
func (t TPSA[S]) compose(deriv func(k int) float64) TPSA[S] {
	l := layoutOf[S]()
	n := l.dim()

	// Stage 1
	delta := make([]float64, n)
	copy(delta, t.view(l))
	delta[0] = 0

	out := make([]float64, n)
	out[0] = deriv(0)

	// Stage 2
	pow := make([]float64, n)
	pow[0] = 1
	next := make([]float64, n)
	inv := 1.0 // 1/k!
	for k := 1; k <= l.mo; k++ {
		clear(next)
		l.mulInto(next, pow, delta)
		pow, next = next, pow
		inv /= float64(k)
		f := deriv(k) * inv
		for i := range out {
			out[i] += f * pow[i]
		}
	}

	return TPSA[S]{c: out}
}
