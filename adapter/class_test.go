// SPDX-License-Identifier: MIT

package adapter_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvtpsa/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	small = adapter.NewClass[nv2mo2]("Small")
	large = adapter.NewClass[nv4mo4]("Large")
)

// construct builds a host instance or fails the test.
func construct(t *testing.T, c adapter.Class, values ...any) any {
	t.Helper()
	v, err := c.Construct(values)
	require.NoError(t, err)

	return v
}

// invoke calls a method that must succeed.
func invoke(t *testing.T, c adapter.Class, recv any, method string, args ...any) any {
	t.Helper()
	v, err := c.Invoke(recv, method, args...)
	require.NoError(t, err)

	return v
}

func TestNewClassPanicsOnEmptyName(t *testing.T) {
	assert.Panics(t, func() { adapter.NewClass[nv2mo2]("") })
}

func TestClassSurface(t *testing.T) {
	assert.Equal(t, "Small", small.Name())
	assert.Equal(t, adapter.Descriptor{Vars: 2, Order: 2}, small.Descriptor())

	want := []string{"add", "add_in_place", "copy", "cos", "exp", "multiply", "render", "sin"}
	assert.Equal(t, want, small.Methods())
	assert.Equal(t, small.Methods(), large.Methods(), "every class exposes the same methods")
}

func TestClassConstructErrorUsesName(t *testing.T) {
	_, err := small.Construct([]any{1.0, "x"})
	require.ErrorIs(t, err, adapter.ErrInvalidArgument)
	assert.EqualError(t, err, "tpsa: Small.construct: invalid argument: element 1 is string, want float")
}

func TestClassInvokeFlow(t *testing.T) {
	a := construct(t, small, 1.0)
	b := construct(t, small, 2.0)

	sum := invoke(t, small, a, adapter.MethodAdd, b)
	assert.Equal(t, sum.(*adapter.Object[nv2mo2]).String(), invoke(t, small, sum, adapter.MethodRender))

	out := invoke(t, small, a, adapter.MethodAddInPlace, b)
	assert.Nil(t, out, "add_in_place returns nothing")
	assert.Equal(t, invoke(t, small, construct(t, small, 3.0), adapter.MethodRender), invoke(t, small, a, adapter.MethodRender))

	dup := invoke(t, small, a, adapter.MethodCopy)
	assert.NotSame(t, a, dup)
	assert.Equal(t, invoke(t, small, a, adapter.MethodRender), invoke(t, small, dup, adapter.MethodRender))

	scaled := invoke(t, small, a, adapter.MethodMultiply, 2.0)
	assert.Equal(t, 6.0, scaled.(*adapter.Object[nv2mo2]).Engine().Constant())

	squared := invoke(t, small, a, adapter.MethodMultiply, a)
	assert.Equal(t, 9.0, squared.(*adapter.Object[nv2mo2]).Engine().Constant())

	for _, m := range []string{adapter.MethodSin, adapter.MethodCos, adapter.MethodExp} {
		_, ok := invoke(t, small, a, m).(*adapter.Object[nv2mo2])
		assert.True(t, ok, m)
	}
}

func TestClassUnknownMethod(t *testing.T) {
	a := construct(t, small, 1.0)
	_, err := small.Invoke(a, "tan")
	require.ErrorIs(t, err, adapter.ErrUnknownMethod)
}

func TestClassArity(t *testing.T) {
	a := construct(t, small, 1.0)
	_, err := small.Invoke(a, adapter.MethodSin, 1.0)
	require.ErrorIs(t, err, adapter.ErrInvalidArgument)
	_, err = small.Invoke(a, adapter.MethodMultiply)
	require.ErrorIs(t, err, adapter.ErrInvalidArgument)
}

func TestClassRejectsForeignReceiver(t *testing.T) {
	foreign := construct(t, large, 1.0)
	for _, recv := range []any{foreign, nil, "x", (*adapter.Object[nv2mo2])(nil)} {
		_, err := small.Invoke(recv, adapter.MethodCopy)
		require.ErrorIs(t, err, adapter.ErrUnsupportedOperand)
	}
}

func TestClassAddRejectsCrossDescriptor(t *testing.T) {
	a := construct(t, small, 1.0)
	foreign := construct(t, large, 1.0)

	_, err := small.Invoke(a, adapter.MethodAdd, foreign)
	require.ErrorIs(t, err, adapter.ErrUnsupportedOperand)
	_, err = small.Invoke(a, adapter.MethodAddInPlace, 1.0)
	require.ErrorIs(t, err, adapter.ErrUnsupportedOperand)
	assert.Equal(t, 1.0, a.(*adapter.Object[nv2mo2]).Engine().Constant(), "failed in-place add leaves receiver intact")
}

func TestClassMultiplyErrorNamesClass(t *testing.T) {
	a := construct(t, small, 1.0)
	_, err := small.Invoke(a, adapter.MethodMultiply, "x")
	require.ErrorIs(t, err, adapter.ErrUnsupportedOperand)

	var e *adapter.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "Small", e.Type)
	assert.Equal(t, []string{"Small", "float"}, e.Accepted)
	assert.EqualError(t, err, "tpsa: Small.multiply: unsupported operand string: accepted Small or float")
}
