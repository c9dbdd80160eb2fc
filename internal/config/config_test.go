package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndent(t *testing.T) {
	cs := DefaultCodeStyle()
	assert.Equal(t, "  a\n  b", cs.Indent("a\nb"))
	assert.Equal(t, "  a\n\n  b", cs.Indent("a\n\nb"))

	wide := &CodeStyle{IndentWidth: 4}
	assert.Equal(t, "    a", wide.Indent("a"))
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
output = "Algorithms"
namespace = "app::gen"
header-only = false

[code-style]
indent-width = 4

[[kernel-namespace]]
name = "kernels"

[[kernel-namespace.kernel]]
name = "scale"
signature = "void scale(double * dst)"
definition = "loop(dst);"
headers = ["<cmath>"]

[[kernel-namespace.kernel.param]]
name = "dst"
type = "double *"

[[function]]
name = "callScale"
kernel = "kernels::scale"
inline = true
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, "Algorithms", m.Output)
	assert.Equal(t, "app::gen", m.Namespace)
	assert.False(t, m.HeaderOnly)
	assert.Equal(t, 4, m.CodeStyle.IndentWidth)

	require.Len(t, m.KernelNamespaces, 1)
	require.Len(t, m.KernelNamespaces[0].Kernels, 1)
	k := m.KernelNamespaces[0].Kernels[0]
	assert.Equal(t, "scale", k.Name)
	require.Len(t, k.Params, 1)
	assert.Equal(t, "double *", k.Params[0].Type)

	require.Len(t, m.Functions, 1)
	assert.Equal(t, "kernels::scale", m.Functions[0].Kernel)
	assert.True(t, m.Functions[0].Inline)
}

func TestLoadManifestDefaultsCodeStyle(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, `output = "Out"`))
	require.NoError(t, err)
	assert.Equal(t, 2, m.CodeStyle.IndentWidth)
}

func TestLoadManifestRequiresOutput(t *testing.T) {
	_, err := LoadManifest(writeManifest(t, `namespace = "x"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
