// Package logging builds the structured logger shared by the CLI commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/russross/classtimetable/internal/config"
)

// New builds a zap logger configured from cfg. Production environments start
// from zap's production config, anything else from its development config.
// In either case the encoding is JSON when cfg.Log.Format is "json" and the
// human-readable console encoder otherwise, and an unparseable level falls
// back to info.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Env == config.EnvProduction {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Log.Format {
	case "json":
		zapCfg.Encoding = "json"
	default:
		zapCfg.Encoding = "console"
	}

	if cfg.Log.Level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.DisableStacktrace = true

	return zapCfg.Build()
}

// RunFields produces the common set of fields attached to every log line
// for a single solve run: its correlation ID and the seed that drove it.
func RunFields(runID string, seed int64) []zap.Field {
	return []zap.Field{
		zap.String("run_id", runID),
		zap.Int64("seed", seed),
	}
}
