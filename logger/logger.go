package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProgressLogger logs the main steps of the rendering pipeline.
var ProgressLogger = newConsole(zapcore.InfoLevel).Named("vellum.progress")

// WarningLogger emits a warning for each non fatal defect, like a malformed
// declaration value falling back to its default.
var WarningLogger = newConsole(zapcore.WarnLevel).Named("vellum.warning")

func newConsole(level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetLoggers replaces the package loggers, for applications embedding the
// engine with their own logging setup. A nil argument leaves the
// corresponding logger untouched.
func SetLoggers(progress, warning *zap.SugaredLogger) {
	if progress != nil {
		ProgressLogger = progress
	}
	if warning != nil {
		WarningLogger = warning
	}
}
