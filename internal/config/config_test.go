package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curvelab.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"port = 9000\nshare = false\nseed_times = [0.0, 2.0]\nseed_values = [1.0, 1.0]\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.False(t, cfg.Share)
	assert.Equal(t, []float64{0, 2}, cfg.SeedTimes)
	// Untouched fields keep defaults.
	assert.Equal(t, 256, cfg.SampleSteps)
}

func TestLoadRejectsMismatchedSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curvelab.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"seed_times = [0.0, 1.0]\nseed_values = [1.0]\n",
	), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
