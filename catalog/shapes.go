// SPDX-License-Identifier: MIT

package catalog

import "github.com/katalvlaran/lvtpsa/adapter"

// Nv6Mo4 is the six-variable, order-four shape.
type Nv6Mo4 struct{}

func (Nv6Mo4) Vars() int  { return 6 }
func (Nv6Mo4) Order() int { return 4 }

// Nv4Mo4 is the four-variable, order-four shape.
type Nv4Mo4 struct{}

func (Nv4Mo4) Vars() int  { return 4 }
func (Nv4Mo4) Order() int { return 4 }

// Nv2Mo6 is the two-variable, order-six shape.
type Nv2Mo6 struct{}

func (Nv2Mo6) Vars() int  { return 2 }
func (Nv2Mo6) Order() int { return 6 }

// Typed aliases for Go callers.
type (
	Tpsa6D = adapter.Object[Nv6Mo4]
	Tpsa4D = adapter.Object[Nv4Mo4]
	Tpsa2D = adapter.Object[Nv2Mo6]
)

// NewTpsa6D builds a Tpsa6D from a host sequence.
func NewTpsa6D(values any) (*Tpsa6D, error) { return adapter.New[Nv6Mo4](values) }

// NewTpsa4D builds a Tpsa4D from a host sequence.
func NewTpsa4D(values any) (*Tpsa4D, error) { return adapter.New[Nv4Mo4](values) }

// NewTpsa2D builds a Tpsa2D from a host sequence.
func NewTpsa2D(values any) (*Tpsa2D, error) { return adapter.New[Nv2Mo6](values) }
