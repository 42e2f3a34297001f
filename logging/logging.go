// logging/logging.go
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ValidLogLevels are the level names accepted in configuration.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// IsValidLogLevel reports whether level names one of ValidLogLevels,
// ignoring case.
func IsValidLogLevel(level string) bool {
	_, ok := parseLevel(level)
	return ok
}

func parseLevel(level string) (zapcore.Level, bool) {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, valid := range ValidLogLevels {
		if level == valid {
			var l zapcore.Level
			if err := l.UnmarshalText([]byte(level)); err == nil {
				return l, true
			}
		}
	}
	return zapcore.InfoLevel, false
}

// baseConfig picks the encoder for env: JSON for "prod", the console
// development encoder otherwise. Both write ISO8601 timestamps to stderr.
func baseConfig(env string) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	if env == "prod" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg
}

// BootstrapLogger is the info-level console logger used until config is
// loaded. It never fails; a build error yields a no-op logger.
func BootstrapLogger() *zap.Logger {
	cfg := baseConfig("dev")
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// BuildLogger returns the service logger for level and env. An unknown level
// runs at info and prints a one-line warning to stderr.
func BuildLogger(level, env string) (*zap.Logger, error) {
	cfg := baseConfig(env)
	lvl, ok := parseLevel(level)
	if !ok {
		_, _ = os.Stderr.WriteString("WARNING: log level " + `"` + level + `"` +
			" not in [" + strings.Join(ValidLogLevels, " ") + "], using info\n")
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
