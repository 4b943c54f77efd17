package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/memmaker/prototype/config"
	"github.com/memmaker/prototype/engine/level"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSettings(t *testing.T, yaml string) config.Settings {
	t.Helper()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName+".yaml"), []byte(yaml), 0644))
	}
	require.NoError(t, config.Load(dir))
	settings, err := config.Get()
	require.NoError(t, err)
	return settings
}

func TestAutopilotPicksUpWeaponAndFires(t *testing.T) {
	session, err := NewSession(loadSettings(t, ""))
	require.NoError(t, err)
	defer session.Shutdown()
	pilot := NewAutopilot(session)

	pilot.Run(240, 1.0/60.0)

	pawn := session.Pawn()
	require.NotNil(t, pawn)
	require.NotNil(t, pawn.Weapon)
	assert.Positive(t, pilot.fired)
	assert.Positive(t, session.Audio.PlayCount())
	assert.Contains(t, session.Status(), "impacts")
}

func TestNewSessionLoadsLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.nbt.gz")
	lvl := level.Default()
	lvl.Name = "SmallArena"
	lvl.Props = lvl.Props[:1]
	require.NoError(t, level.Save(path, lvl))

	session, err := NewSession(loadSettings(t, "level: \""+path+"\"\n"))
	require.NoError(t, err)
	defer session.Shutdown()

	assert.Equal(t, "SmallArena", session.Level.Name)
	require.NotNil(t, session.Pawn())
}

func TestNewSessionFailsOnMissingLevel(t *testing.T) {
	_, err := NewSession(loadSettings(t, "level: \""+filepath.Join(t.TempDir(), "missing.gz")+"\"\n"))

	assert.Error(t, err)
}
