package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.yaml")
	content := `
variant: classic
seed: 99
window:
  tps: 30
terrain:
  pad_chance: 0.25
flight:
  gravity: 0.02
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Variant)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 30, cfg.Window.TPS)
	assert.Equal(t, 1280, cfg.Window.Width, "unset fields keep their defaults")
	assert.Equal(t, 0.25, cfg.Terrain.PadChance)
	assert.Equal(t, 20.0, cfg.Terrain.Spacing)
	assert.Equal(t, 0.02, cfg.Flight.Gravity)
	assert.Equal(t, 0.1, cfg.Flight.BurnRate)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flight:\n  gravitee: 1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rover.yaml")
	want := Default()
	want.Variant = "classic"
	want.Flight.SafeLandingSpeed = 12

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	err := cfg.Apply(map[string]string{
		"flight.gravity":     "0.05",
		"terrain.pad_chance": "0.5",
		"window.tps":         "120",
		"seed":               "-4",
		"log.pretty":         "false",
		"scores.path":        "",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Flight.Gravity)
	assert.Equal(t, 0.5, cfg.Terrain.PadChance)
	assert.Equal(t, 120, cfg.Window.TPS)
	assert.Equal(t, int64(-4), cfg.Seed)
	assert.False(t, cfg.Log.Pretty)
	assert.Empty(t, cfg.Scores.Path)
}

func TestWindowWidthDrivesTerrain(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Apply(map[string]string{"window.width": "1920"}))
	assert.Equal(t, 1920.0, cfg.Terrain.ScreenWidth)
	require.NoError(t, cfg.Validate())

	err := cfg.Apply(map[string]string{"terrain.screen_width": "640"})
	assert.ErrorIs(t, err, ErrUnknownKey)

	path := filepath.Join(t.TempDir(), "wide.yaml")
	content := "window:\n  width: 800\nterrain:\n  screen_width: 300\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800.0, loaded.Terrain.ScreenWidth)

	bad := Default()
	bad.Window.Width = 1920
	assert.Error(t, bad.Validate())
}

func TestApplyErrors(t *testing.T) {
	cfg := Default()
	err := cfg.Apply(map[string]string{"flight.warp": "9"})
	assert.ErrorIs(t, err, ErrUnknownKey)

	err = cfg.Apply(map[string]string{"flight.gravity": "heavy"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, Default().Flight.Gravity, cfg.Flight.Gravity)

	assert.NoError(t, cfg.Apply(nil))
}

func TestKeysCoverEveryTunable(t *testing.T) {
	cfg := Default()
	keys := cfg.Keys()
	assert.Contains(t, keys, "flight.safe_landing_speed")
	assert.Contains(t, keys, "terrain.jitter")
	assert.Contains(t, keys, "variant")
	assert.IsIncreasing(t, keys)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	bad := Default()
	bad.Variant = "hover"
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.Window.TPS = 0
	assert.Error(t, bad.Validate())

	bad = Default()
	bad.Log.Level = "shout"
	assert.Error(t, bad.Validate())
}
