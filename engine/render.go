// SPDX-License-Identifier: MIT

package engine

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader  = "TPSA nv="
	_fmtOrder   = " mo="
	_fmtIndent  = " "
	_fmtGap     = "  "
	_fmtZeroRow = " 0"
)

// String renders t with the default options.
func (t TPSA[S]) String() string {
	return t.Render()
}

// Render produces the canonical text form:
//
//	TPSA nv=2 mo=2
//	 +1.000000000000e+00  0 0
//	 -2.500000000000e-01  1 1
//
// One row per coefficient in monomial order: the value, then the exponent
// of each variable. Zero coefficients are omitted unless WithAllTerms is
// given; a series with no rows renders a single "0" row.
//
// Determinism:
//   - Output depends only on the coefficients and options.
//
// Complexity:
//   - Time O(dim*nv).
func (t TPSA[S]) Render(opts ...RenderOption) string {
	o := gatherRenderOptions(opts...)
	l := layoutOf[S]()
	a := t.view(l)

	var b strings.Builder
	b.WriteString(_fmtHeader)
	b.WriteString(strconv.Itoa(l.nv))
	b.WriteString(_fmtOrder)
	b.WriteString(strconv.Itoa(l.mo))

	rows := 0
	for i, v := range a {
		if v == 0 && !o.allTerms {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(_fmtIndent)
		if v == 0 {
			v = 0 // normalize -0
		}
		if v >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.FormatFloat(v, 'e', o.precision, 64))
		b.WriteString(_fmtGap)
		for j, e := range l.exps[i] {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(e))
		}
		rows++
	}
	if rows == 0 {
		b.WriteByte('\n')
		b.WriteString(_fmtZeroRow)
	}

	return b.String()
}
