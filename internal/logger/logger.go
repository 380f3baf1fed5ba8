// Package logger holds the process-wide diagnostic logger.
//
// Emoji output goes to stdout and must stay machine-consumable, so all
// diagnostics go to stderr and are off unless --verbose is set.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global sugared logger. It is a no-op until Initialize is
// called, so packages can log unconditionally.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize switches the global logger to console output on stderr.
func Initialize(verbose bool) error {
	if !verbose {
		return nil
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stderr),
		zap.DebugLevel,
	)
	Logger = zap.New(core).Sugar()
	return nil
}
