package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/cubits/internal/codegen"
	"github.com/born-ml/cubits/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "cubits "+version+"\n", out.String())
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run([]string{"train"}, &out))
	assert.Contains(t, out.String(), "Commands:")
}

func TestRunWGSL(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"wgsl", "-rank", "2", "-kinds", "word8,int64", "-group", "1"}, &out))

	src := out.String()
	assert.Contains(t, src, "fn toIndex2(")
	assert.NotContains(t, src, "fn toIndex3(")
	assert.Contains(t, src, "@group(1) @binding(0) var<storage, read> tex_word8")
	assert.Contains(t, src, "@group(1) @binding(1) var<storage, read> tex_int64")
}

func TestRunWGSLWithoutDouble(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"wgsl", "-double=false"}, &out))
	assert.NotContains(t, out.String(), "fetch_double")
	assert.Contains(t, out.String(), "fetch_float")

	err := run([]string{"wgsl", "-double=false", "-kinds", "double"}, &out)
	require.ErrorIs(t, err, codegen.ErrDoubleUnsupported)
}

func TestRunWGSLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wgsl")
	var out bytes.Buffer
	require.NoError(t, run([]string{"wgsl", "-kinds", "none", "-o", path}, &out))
	assert.Zero(t, out.Len())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "fn fromIndex5(")
}

func TestParseKinds(t *testing.T) {
	ks, err := parseKinds("float, char")
	require.NoError(t, err)
	assert.Equal(t, []device.Kind{device.Float, device.CharKind}, ks)

	_, err = parseKinds("float,quad")
	require.ErrorContains(t, err, "quad")
}
