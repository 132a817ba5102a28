// SPDX-License-Identifier: MIT

package adapter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtpsa/engine"
)

// Class is the host-facing surface of one shape. Every implementation is
// produced by NewClass and exposes the same method set.
type Class interface {
	// Name is the stable host-visible type name.
	Name() string
	// Descriptor is the fixed shape of every instance.
	Descriptor() Descriptor
	// Construct builds an instance from a host sequence (see New).
	Construct(values any) (any, error)
	// Methods lists the invocable method names, sorted.
	Methods() []string
	// Invoke calls method on recv with host arguments. add_in_place returns
	// (nil, nil); render returns a string; the rest return a new instance.
	Invoke(recv any, method string, args ...any) (any, error)
}

// method is one entry of the per-class dispatch table.
type method[S engine.Shape] struct {
	arity int
	call  func(c *class[S], self *Object[S], args []any) (any, error)
}

type class[S engine.Shape] struct {
	name    string
	desc    Descriptor
	label   string // desc.String(), rewritten to name in errors
	methods map[string]method[S]
}

// NewClass generates the Class for shape S under name.
// Panics when name is empty or S is not a valid shape (programmer error).
func NewClass[S engine.Shape](name string) Class {
	if name == "" {
		panic("tpsa: NewClass: empty class name")
	}
	_ = engine.Dim[S]() // validates S and warms the monomial table

	desc := DescriptorOf[S]()

	return &class[S]{
		name:    name,
		desc:    desc,
		label:   desc.String(),
		methods: methodTable[S](),
	}
}

func methodTable[S engine.Shape]() map[string]method[S] {
	unary := func(f func(*Object[S]) *Object[S]) method[S] {
		return method[S]{arity: 0, call: func(_ *class[S], self *Object[S], _ []any) (any, error) {
			return f(self), nil
		}}
	}

	return map[string]method[S]{
		MethodCopy: unary((*Object[S]).Copy),
		MethodSin:  unary((*Object[S]).Sin),
		MethodCos:  unary((*Object[S]).Cos),
		MethodExp:  unary((*Object[S]).Exp),
		MethodRender: {arity: 0, call: func(_ *class[S], self *Object[S], _ []any) (any, error) {
			return self.String(), nil
		}},
		MethodAdd: {arity: 1, call: func(c *class[S], self *Object[S], args []any) (any, error) {
			other, err := c.operand(MethodAdd, args[0])
			if err != nil {
				return nil, err
			}
			return self.Add(other), nil
		}},
		MethodAddInPlace: {arity: 1, call: func(c *class[S], self *Object[S], args []any) (any, error) {
			other, err := c.operand(MethodAddInPlace, args[0])
			if err != nil {
				return nil, err
			}
			self.AddInPlace(other)
			return nil, nil
		}},
		MethodMultiply: {arity: 1, call: func(_ *class[S], self *Object[S], args []any) (any, error) {
			return self.Mul(args[0])
		}},
	}
}

func (c *class[S]) Name() string { return c.name }

func (c *class[S]) Descriptor() Descriptor { return c.desc }

func (c *class[S]) Methods() []string {
	out := make([]string, 0, len(c.methods))
	for name := range c.methods {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

func (c *class[S]) Construct(values any) (any, error) {
	obj, err := New[S](values)
	if err != nil {
		return nil, c.rename(err)
	}

	return obj, nil
}

// Invoke resolves method, checks the receiver and arity, then dispatches.
func (c *class[S]) Invoke(recv any, name string, args ...any) (any, error) {
	m, ok := c.methods[name]
	if !ok {
		return nil, &Error{Kind: KindUnknownMethod, Type: c.name, Op: name}
	}
	self, ok := recv.(*Object[S])
	if !ok || self == nil {
		e := unsupported(c.name, name, recv, c.name)
		e.Detail = "receiver"
		return nil, e
	}
	if len(args) != m.arity {
		return nil, invalid(c.name, name, fmt.Sprintf("expected %d argument(s), got %d", m.arity, len(args)), nil)
	}
	out, err := m.call(c, self, args)
	if err != nil {
		return nil, c.rename(err)
	}

	return out, nil
}

// operand accepts only a non-nil instance of this class.
func (c *class[S]) operand(op string, v any) (*Object[S], error) {
	if o, ok := v.(*Object[S]); ok && o != nil {
		return o, nil
	}

	return nil, unsupported(c.name, op, v, c.name)
}

// rename replaces the typed-layer descriptor label with the class name.
func (c *class[S]) rename(err error) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	if e.Type == c.label {
		e.Type = c.name
	}
	if e.Got == c.label {
		e.Got = c.name
	}
	for i, a := range e.Accepted {
		if a == c.label {
			e.Accepted[i] = c.name
		}
	}

	return e
}
