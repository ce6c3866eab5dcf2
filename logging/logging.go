// Package logging builds the zap logger used by the grafos command.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/grafos/config"
)

// NewLogger builds a zap logger writing to stderr, shaped by cfg.LogFormat
// and cfg.LogLevel.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	return Config(cfg).Build()
}

// Config returns the zap configuration NewLogger builds from cfg.
// Console output never carries stack traces; JSON output keeps them for
// error entries.
func Config(cfg *config.Config) zap.Config {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.LogFormat, "console") {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(Level(cfg.LogLevel))

	return zapCfg
}

// Level maps a config level name to a zap level; unknown names map to info.
func Level(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
