// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvtpsa/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListTypes(t *testing.T) {
	var out bytes.Buffer
	listTypes(&out, registry.Default())
	assert.Equal(t, "module tpsa\n"+
		"  Tpsa2D   TPSA(nv=2, mo=6)  dim=28\n"+
		"  Tpsa4D   TPSA(nv=4, mo=4)  dim=70\n"+
		"  Tpsa6D   TPSA(nv=6, mo=4)  dim=210\n", out.String())
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	src := "steps:\n  - {let: x, new: Tpsa4D, args: [[0.0]]}\n  - {let: e, call: exp, on: x}\n  - {print: e}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), path, &out, zap.NewNop()))
	assert.Equal(t, "TPSA nv=4 mo=4\n +1.000000000000e+00  0 0 0 0\n", out.String())
}

func TestRunMissingFile(t *testing.T) {
	err := run(context.Background(), filepath.Join(t.TempDir(), "none.yaml"), &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, os.ErrNotExist)
}
