package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the process-wide logger. It stays a no-op until Init runs, so
// packages may log during tests without any setup.
var L = zap.NewNop()

// Init builds the global logger. `level` accepts the usual zap level names;
// production mode switches to JSON output.
func Init(level string, isProduction bool) error {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
		fmt.Fprintf(os.Stderr, "Warning: invalid log level '%s', using 'info'. Error: %v\n", level, err)
	}

	var err error
	if isProduction {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
		L, err = cfg.Build()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
		L, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("failed to initialize zap logger: %w", err)
	}

	return nil
}

// Sync flushes buffered entries. Call before the process exits.
func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}
