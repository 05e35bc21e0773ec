// Package config loads process-wide defaults for the timetable CLI from
// the environment, with sane fallbacks so the binary runs unconfigured.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/russross/classtimetable/internal/timetable"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the resolved process configuration: the ambient environment
// plus the default solver tuning knobs a command can still override with
// explicit flags.
type Config struct {
	Env string

	Log LogConfig

	Grid  GridConfig
	Solve SolveConfig
}

// LogConfig selects the zap build and encoding used by internal/logging.
type LogConfig struct {
	Level  string
	Format string
}

// GridConfig is the default weekly grid shape applied when a request omits
// one.
type GridConfig struct {
	Days    int
	Periods int
}

// SolveConfig mirrors timetable.SolveOptions so it can be sourced from the
// environment instead of hard-coded flag defaults.
type SolveConfig struct {
	MaxAttempts               int
	RetryMaxAttempts          int
	DistributionGateThreshold int
	OptimizerSweeps           int
	EvictionMultiplier        int
	MaxEvictions              int
	Seed                      int64
}

// ToSolveOptions converts the loaded defaults into the type the solver
// package consumes.
func (s SolveConfig) ToSolveOptions() timetable.SolveOptions {
	return timetable.SolveOptions{
		MaxAttempts:               s.MaxAttempts,
		RetryMaxAttempts:          s.RetryMaxAttempts,
		DistributionGateThreshold: s.DistributionGateThreshold,
		OptimizerSweeps:           s.OptimizerSweeps,
		EvictionMultiplier:        s.EvictionMultiplier,
		MaxEvictions:              s.MaxEvictions,
	}
}

// Load reads configuration from the environment (and a .env file, if one is
// present in the working directory), falling back to setDefaults for
// anything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Env: v.GetString("ENV"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Grid: GridConfig{
			Days:    v.GetInt("GRID_DAYS"),
			Periods: v.GetInt("GRID_PERIODS"),
		},
		Solve: SolveConfig{
			MaxAttempts:               v.GetInt("SOLVE_MAX_ATTEMPTS"),
			RetryMaxAttempts:          v.GetInt("SOLVE_RETRY_MAX_ATTEMPTS"),
			DistributionGateThreshold: v.GetInt("SOLVE_DISTRIBUTION_GATE_THRESHOLD"),
			OptimizerSweeps:           v.GetInt("SOLVE_OPTIMIZER_SWEEPS"),
			EvictionMultiplier:        v.GetInt("SOLVE_EVICTION_MULTIPLIER"),
			MaxEvictions:              v.GetInt("SOLVE_MAX_EVICTIONS"),
			Seed:                      v.GetInt64("SOLVE_SEED"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("GRID_DAYS", timetable.DefaultDimensions.Days)
	v.SetDefault("GRID_PERIODS", timetable.DefaultDimensions.Periods)

	defaults := timetable.SolveOptions{}.Resolve()
	v.SetDefault("SOLVE_MAX_ATTEMPTS", defaults.MaxAttempts)
	v.SetDefault("SOLVE_RETRY_MAX_ATTEMPTS", defaults.RetryMaxAttempts)
	v.SetDefault("SOLVE_DISTRIBUTION_GATE_THRESHOLD", defaults.DistributionGateThreshold)
	v.SetDefault("SOLVE_OPTIMIZER_SWEEPS", defaults.OptimizerSweeps)
	v.SetDefault("SOLVE_EVICTION_MULTIPLIER", defaults.EvictionMultiplier)
	v.SetDefault("SOLVE_MAX_EVICTIONS", defaults.MaxEvictions)
	v.SetDefault("SOLVE_SEED", 1)
}
