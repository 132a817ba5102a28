// SPDX-License-Identifier: MIT

// Package registry exposes every catalog class under one host namespace.
//
// A Module is built once and never mutated afterwards, so lookups need no
// locking. Default() builds the process-wide module lazily from
// catalog.Classes(); a catalog defect (duplicate name or descriptor) is a
// startup failure and panics.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvtpsa/adapter"
	"github.com/katalvlaran/lvtpsa/catalog"
	"go.uber.org/zap"
)

// ErrUnknownType indicates a lookup of a name no class is registered under.
var ErrUnknownType = errors.New("registry: unknown type")

// Module is an immutable name -> class table.
type Module struct {
	name   string
	byName map[string]adapter.Class
	order  []adapter.Class // declaration order
}

// New validates classes and builds a Module named name.
// Errors are the catalog sentinels (ErrNilClass, ErrDuplicateName,
// ErrDuplicateDescriptor) wrapped with the module name.
func New(name string, classes []adapter.Class, opts ...Option) (*Module, error) {
	o := gatherOptions(opts...)
	if err := catalog.Validate(classes); err != nil {
		return nil, fmt.Errorf("registry: module %q: %w", name, err)
	}

	m := &Module{
		name:   name,
		byName: make(map[string]adapter.Class, len(classes)),
		order:  append([]adapter.Class(nil), classes...),
	}
	for _, c := range m.order {
		m.byName[c.Name()] = c
		o.logger.Debug("registered type",
			zap.String("module", name),
			zap.String("type", c.Name()),
			zap.Stringer("descriptor", c.Descriptor()),
			zap.Int("dim", c.Descriptor().Dim()),
		)
	}
	o.logger.Info("module ready", zap.String("module", name), zap.Int("types", len(m.order)))

	return m, nil
}

var (
	defaultModule *Module
	defaultOnce   sync.Once
)

// Default returns the process-wide module built from catalog.Classes().
// The first call builds it; later calls return the same *Module.
func Default() *Module {
	defaultOnce.Do(func() {
		m, err := New(DefaultModuleName, catalog.Classes())
		if err != nil {
			panic(err)
		}
		defaultModule = m
	})

	return defaultModule
}

// Name returns the namespace name.
func (m *Module) Name() string {
	return m.name
}

// Lookup returns the class registered under name.
func (m *Module) Lookup(name string) (adapter.Class, bool) {
	c, ok := m.byName[name]
	return c, ok
}

// MustLookup is Lookup for init code; it panics on an unknown name.
func (m *Module) MustLookup(name string) adapter.Class {
	c, ok := m.byName[name]
	if !ok {
		panic(fmt.Sprintf("registry: MustLookup(%q): %v", name, ErrUnknownType))
	}

	return c
}

// Names returns the registered names, sorted.
func (m *Module) Names() []string {
	out := make([]string, 0, len(m.byName))
	for name := range m.byName {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Classes returns the registered classes in declaration order.
func (m *Module) Classes() []adapter.Class {
	return append([]adapter.Class(nil), m.order...)
}

// Len returns the number of registered classes.
func (m *Module) Len() int {
	return len(m.order)
}

// Construct builds an instance of the named type from host values.
func (m *Module) Construct(typeName string, values any) (any, error) {
	c, ok := m.byName[typeName]
	if !ok {
		return nil, fmt.Errorf("registry: %s.%s: %w", m.name, typeName, ErrUnknownType)
	}

	return c.Construct(values)
}

// ClassOf returns the registered class whose instances include v.
func (m *Module) ClassOf(v any) (adapter.Class, bool) {
	d, ok := v.(interface{ Descriptor() adapter.Descriptor })
	if !ok {
		return nil, false
	}
	for _, c := range m.order {
		if c.Descriptor() == d.Descriptor() {
			return c, true
		}
	}

	return nil, false
}
