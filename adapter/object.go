// SPDX-License-Identifier: MIT

package adapter

import "github.com/katalvlaran/lvtpsa/engine"

// Operation names, shared by the typed layer and the Class method table.
const (
	opConstruct = "construct"

	MethodCopy       = "copy"
	MethodRender     = "render"
	MethodAdd        = "add"
	MethodAddInPlace = "add_in_place"
	MethodMultiply   = "multiply"
	MethodSin        = "sin"
	MethodCos        = "cos"
	MethodExp        = "exp"
)

// Object is one host-visible series of shape S.
type Object[S engine.Shape] struct {
	inner engine.TPSA[S]
}

// New validates host values and builds an Object.
// MAIN DESCRIPTION:
//   - values must be a host sequence whose every element is a host float.
//   - The validated scalars are forwarded to engine.New unchanged, in order.
//
// Errors:
//   - KindInvalidArgument when values is not a sequence, when any element
//     is not a float, or when the engine rejects the sequence (the engine
//     error is kept as Cause).
func New[S engine.Shape](values any) (*Object[S], error) {
	label := DescriptorOf[S]().String()
	coeffs, err := floatsOf(label, values)
	if err != nil {
		return nil, err
	}
	inner, err := engine.New[S](coeffs)
	if err != nil {
		return nil, invalid(label, opConstruct, "", err)
	}

	return &Object[S]{inner: inner}, nil
}

// Wrap adopts a copy of an engine value.
func Wrap[S engine.Shape](t engine.TPSA[S]) *Object[S] {
	return &Object[S]{inner: t.Clone()}
}

// Descriptor returns the fixed shape of o.
func (o *Object[S]) Descriptor() Descriptor {
	return DescriptorOf[S]()
}

// Engine returns a copy of the held engine value.
func (o *Object[S]) Engine() engine.TPSA[S] {
	return o.inner.Clone()
}

// Copy returns an independent duplicate.
func (o *Object[S]) Copy() *Object[S] {
	return &Object[S]{inner: o.inner.Clone()}
}

// String returns the engine's canonical rendering.
func (o *Object[S]) String() string {
	return o.inner.String()
}

// Add returns o + other. Neither operand changes.
func (o *Object[S]) Add(other *Object[S]) *Object[S] {
	return &Object[S]{inner: o.inner.Add(other.inner)}
}

// AddInPlace replaces o with o + other.
func (o *Object[S]) AddInPlace(other *Object[S]) {
	o.inner.AddAssign(other.inner)
}

// Mul multiplies by a same-shape Object or by a host float.
// Implementation:
//   - Stage 1: operand is a non-nil *Object[S] -> truncated series product.
//   - Stage 2: operand is a host float -> scale every coefficient.
//   - Stage 3: otherwise KindUnsupportedOperand naming both accepted kinds.
//
// Neither operand changes.
func (o *Object[S]) Mul(operand any) (*Object[S], error) {
	if rhs, ok := operand.(*Object[S]); ok && rhs != nil {
		return &Object[S]{inner: o.inner.Mul(rhs.inner)}, nil
	}
	if s, ok := hostFloat(operand); ok {
		return &Object[S]{inner: o.inner.Scale(s)}, nil
	}
	label := DescriptorOf[S]().String()

	return nil, unsupported(label, MethodMultiply, operand, label, kindFloat)
}

// Sin returns sin(o).
func (o *Object[S]) Sin() *Object[S] {
	return &Object[S]{inner: o.inner.Sin()}
}

// Cos returns cos(o).
func (o *Object[S]) Cos() *Object[S] {
	return &Object[S]{inner: o.inner.Cos()}
}

// Exp returns exp(o).
func (o *Object[S]) Exp() *Object[S] {
	return &Object[S]{inner: o.inner.Exp()}
}
