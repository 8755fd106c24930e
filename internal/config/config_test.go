package config

import (
	"os"
	"path/filepath"
	"testing"

	"farmdrive/internal/components"
	"farmdrive/internal/physics"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"window": { "width": 1600 },
		"scene": { "file": "farm.json" },
		"metrics": { "enabled": true },
		"physics": { "gravity": -20, "broadPhase": "grid", "iterations": 5 },
		"vehicle": { "maxSpeed": 12 }
	}`)

	require.NoError(t, Load(dir))

	game := Game()
	assert.Equal(t, "debug", game.LogLevel)
	assert.Equal(t, 1600, game.Window.Width)
	assert.Equal(t, 720, game.Window.Height, "sibling keys keep their defaults")
	assert.Equal(t, "farm.json", game.SceneFile)
	assert.True(t, game.MetricsEnabled)

	p := Physics()
	assert.Equal(t, float32(-20), p.Gravity)
	assert.Equal(t, physics.BroadPhaseGrid, p.BroadPhase)
	assert.Equal(t, 5, p.Iterations)
	assert.Equal(t, physics.DefaultConfig().Slop, p.Slop)

	assert.Equal(t, float32(12), Vehicle().MaxSpeed)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{}`)))

	assert.Equal(t, physics.DefaultConfig(), Physics())
	assert.Equal(t, components.DefaultVehicleTuning(), Vehicle())

	game := Game()
	assert.Equal(t, "info", game.LogLevel)
	assert.Equal(t, WindowConfig{Width: 1280, Height: 720, Title: "Farm Drive", TargetFPS: 60}, game.Window)
	assert.Empty(t, game.SceneFile)
	assert.False(t, game.MetricsEnabled)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsBadPhysics(t *testing.T) {
	t.Cleanup(viper.Reset)
	err := Load(writeConfig(t, `{ "physics": { "broadPhase": "octree" } }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "octree")

	viper.Reset()
	err = Load(writeConfig(t, `{ "physics": { "iterations": 0 } }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations")
}
