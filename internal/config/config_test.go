package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AppliesDefaults(t *testing.T) {
	g, err := Parse([]byte("output: types.go\n"))
	require.NoError(t, err)

	assert.Equal(t, "schema", g.Package)
	assert.Equal(t, "types.go", g.Output)
	assert.True(t, g.ImportsEnabled())
}

func TestParse_FullDocument(t *testing.T) {
	doc := `package: notes
output: notes/types.go
header: "Source: notes.xsd"
resolve_imports: false
`

	g, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "notes", g.Package)
	assert.Equal(t, "notes/types.go", g.Output)
	assert.Equal(t, "Source: notes.xsd", g.Header)
	assert.False(t, g.ImportsEnabled())
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("package: [unclosed"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: orders\n"), 0o644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "orders", g.Package)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
