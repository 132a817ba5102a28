// SPDX-License-Identifier: MIT

package registry_test

import (
	"testing"

	"github.com/katalvlaran/lvtpsa/adapter"
	"github.com/katalvlaran/lvtpsa/catalog"
	"github.com/katalvlaran/lvtpsa/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultIsSingleton(t *testing.T) {
	a, b := registry.Default(), registry.Default()
	require.Same(t, a, b)
	assert.Equal(t, registry.DefaultModuleName, a.Name())
	assert.Equal(t, []string{"Tpsa2D", "Tpsa4D", "Tpsa6D"}, a.Names())
	assert.Equal(t, len(catalog.Classes()), a.Len())
}

func TestDefaultKeepsDeclarationOrder(t *testing.T) {
	var names []string
	for _, c := range registry.Default().Classes() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Tpsa6D", "Tpsa4D", "Tpsa2D"}, names)
}

func TestLookup(t *testing.T) {
	m := registry.Default()
	c, ok := m.Lookup("Tpsa4D")
	require.True(t, ok)
	assert.Equal(t, adapter.Descriptor{Vars: 4, Order: 4}, c.Descriptor())

	_, ok = m.Lookup("Tpsa5D")
	assert.False(t, ok)

	assert.Same(t, c, m.MustLookup("Tpsa4D"))
	assert.Panics(t, func() { m.MustLookup("nope") })
}

func TestConstruct(t *testing.T) {
	m := registry.Default()
	v, err := m.Construct("Tpsa6D", []any{2.0})
	require.NoError(t, err)
	_, ok := v.(*catalog.Tpsa6D)
	assert.True(t, ok)

	_, err = m.Construct("Tpsa9D", []any{2.0})
	require.ErrorIs(t, err, registry.ErrUnknownType)

	_, err = m.Construct("Tpsa6D", []any{1.0, "x"})
	require.ErrorIs(t, err, adapter.ErrInvalidArgument)
}

func TestClassOf(t *testing.T) {
	m := registry.Default()
	v, err := m.Construct("Tpsa2D", []any{1.0})
	require.NoError(t, err)

	c, ok := m.ClassOf(v)
	require.True(t, ok)
	assert.Equal(t, "Tpsa2D", c.Name())

	_, ok = m.ClassOf(1.0)
	assert.False(t, ok)
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := registry.New("dup", []adapter.Class{
		adapter.NewClass[catalog.Nv4Mo4]("A"),
		adapter.NewClass[catalog.Nv6Mo4]("A"),
	})
	require.ErrorIs(t, err, catalog.ErrDuplicateName)

	_, err = registry.New("dup", []adapter.Class{
		adapter.NewClass[catalog.Nv4Mo4]("A"),
		adapter.NewClass[catalog.Nv4Mo4]("B"),
	})
	require.ErrorIs(t, err, catalog.ErrDuplicateDescriptor)

	_, err = registry.New("nil", []adapter.Class{nil})
	require.ErrorIs(t, err, catalog.ErrNilClass)
}

func TestModuleIsIsolatedFromInput(t *testing.T) {
	in := []adapter.Class{adapter.NewClass[catalog.Nv2Mo6]("Only")}
	m, err := registry.New("iso", in)
	require.NoError(t, err)

	in[0] = adapter.NewClass[catalog.Nv4Mo4]("Other")
	_, ok := m.Lookup("Only")
	assert.True(t, ok)
	assert.Equal(t, []string{"Only"}, m.Names())
}

func TestNewLogsRegistrations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := registry.New("logged", catalog.Classes(), registry.WithLogger(zap.New(core)))
	require.NoError(t, err)

	registered := logs.FilterMessage("registered type").All()
	require.Len(t, registered, 3)
	assert.Equal(t, "Tpsa6D", registered[0].ContextMap()["type"])
	assert.Equal(t, "TPSA(nv=6, mo=4)", registered[0].ContextMap()["descriptor"])
	assert.Equal(t, 1, logs.FilterMessage("module ready").Len())
}

func TestWithLoggerPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { registry.WithLogger(nil) })
}
