// SPDX-License-Identifier: MIT

// Package engine: functional options for rendering.
//   - RenderOption / renderOptions with documented defaults.
//   - WithX constructors panic on nonsensical values (programmer error).

package engine

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of digits after the decimal point in
	// the %e rendering of each coefficient.
	DefaultPrecision = 12

	// DefaultAllTerms renders only non-zero coefficients when false.
	DefaultAllTerms = false
)

// RenderOption mutates rendering options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

type renderOptions struct {
	precision int  // [0, 17]; DefaultPrecision
	allTerms  bool // DefaultAllTerms
}

// WithPrecision sets the digits after the decimal point for each coefficient.
// Panics when p is outside [0, 17].
func WithPrecision(p int) RenderOption {
	if p < 0 || p > 17 {
		panic(panicBadPrecision)
	}

	return func(o *renderOptions) { o.precision = p }
}

// WithAllTerms renders every coefficient, zeros included, in monomial order.
func WithAllTerms() RenderOption {
	return func(o *renderOptions) { o.allTerms = true }
}

// gatherRenderOptions applies opts over the defaults.
func gatherRenderOptions(opts ...RenderOption) renderOptions {
	o := renderOptions{
		precision: DefaultPrecision,
		allTerms:  DefaultAllTerms,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
