package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadLevel(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "arena.lvl")
	original := Default()

	require.NoError(t, Save(filename, original))
	loaded, err := Load(filename)

	require.NoError(t, err)
	assert.Equal(t, original, loaded)
	assert.Equal(t, mgl32.Vec3{-600, 0, 120}, loaded.PlayerStart.Vec3())
	assert.True(t, loaded.Props[0].IsSimulated())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.lvl"))

	assert.Error(t, err)
}

func TestLoadRejectsUncompressedFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "plain.lvl")
	require.NoError(t, os.WriteFile(filename, []byte("not a level"), 0o644))

	_, err := Load(filename)

	assert.ErrorContains(t, err, "not gzip compressed")
}
