package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagnet/iptrie"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefixes.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
# comment line
85.0.0.0 8 0
85.0.1.0 8 1

not-enough-fields
85.0.0.0 9 2
`)

	e := iptrie.New()
	defer e.Teardown()

	loaded, skipped, err := loadFile(e, path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded)
	assert.Equal(t, 1, skipped)

	result, err := e.GetNetString("85.0.1.1")
	require.NoError(t, err)
	assert.Equal(t, "85.0.1.0/24", result.Network)
	assert.EqualValues(t, 3, result.Flags)
}

func TestLoadFileMissing(t *testing.T) {
	e := iptrie.New()
	defer e.Teardown()

	_, _, err := loadFile(e, filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Error(t, err)
}
