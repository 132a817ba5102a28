// SPDX-License-Identifier: MIT

package adapter

import (
	"fmt"

	"github.com/katalvlaran/lvtpsa/engine"
)

// Descriptor identifies a shape: variable count and truncation order.
// The scalar field is always float64.
type Descriptor struct {
	Vars  int
	Order int
}

// DescriptorOf returns the descriptor of shape S.
func DescriptorOf[S engine.Shape]() Descriptor {
	var s S
	return Descriptor{Vars: s.Vars(), Order: s.Order()}
}

// Dim returns the coefficient count C(Vars+Order, Order), or 0 for an
// invalid descriptor.
func (d Descriptor) Dim() int {
	if d.Vars < 1 || d.Order < 0 {
		return 0
	}
	n := 1
	for k := 1; k <= d.Order; k++ {
		n = n * (d.Vars + k) / k // exact: n is C(Vars+k-1, k-1) before the step
	}

	return n
}

// String is the label used in error messages on the typed layer.
func (d Descriptor) String() string {
	return fmt.Sprintf("TPSA(nv=%d, mo=%d)", d.Vars, d.Order)
}
