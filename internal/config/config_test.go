package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Grid.Days)
	assert.Equal(t, 7, cfg.Grid.Periods)
	assert.Equal(t, 200, cfg.Solve.MaxAttempts)
	assert.Equal(t, 300, cfg.Solve.RetryMaxAttempts)
	assert.Equal(t, 5, cfg.Solve.DistributionGateThreshold)
	assert.Equal(t, 3, cfg.Solve.OptimizerSweeps)
	assert.Equal(t, 2, cfg.Solve.EvictionMultiplier)
	assert.Equal(t, 10, cfg.Solve.MaxEvictions)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, os.Setenv("SOLVE_MAX_ATTEMPTS", "500"))
	defer os.Unsetenv("SOLVE_MAX_ATTEMPTS")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Solve.MaxAttempts)
}

func TestSolveConfigToSolveOptions(t *testing.T) {
	sc := SolveConfig{
		MaxAttempts:               10,
		RetryMaxAttempts:          20,
		DistributionGateThreshold: 2,
		OptimizerSweeps:           1,
		EvictionMultiplier:        3,
		MaxEvictions:              4,
	}
	opts := sc.ToSolveOptions()
	assert.Equal(t, 10, opts.MaxAttempts)
	assert.Equal(t, 20, opts.RetryMaxAttempts)
	assert.Equal(t, 2, opts.DistributionGateThreshold)
	assert.Equal(t, 1, opts.OptimizerSweeps)
	assert.Equal(t, 3, opts.EvictionMultiplier)
	assert.Equal(t, 4, opts.MaxEvictions)
}
