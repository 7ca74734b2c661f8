package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/duncansachdeva/printlabel/internal/domain/ports"
)

// ZapLogger implements ports.Logger on top of zap's sugared logger,
// writing to a log file next to the executable so spooler problems can
// be diagnosed after the fact.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewFileLogger creates a logger writing to logDir/app.log (the
// directory is created if missing). Falls back to stderr when the file
// cannot be opened, so a locked-down working directory never kills the
// app.
func NewFileLogger(logDir string) ports.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if err := os.MkdirAll(logDir, 0o755); err == nil {
		cfg.OutputPaths = []string{filepath.Join(logDir, "app.log")}
		cfg.ErrorOutputPaths = []string{filepath.Join(logDir, "app.log")}
	} else {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	return &ZapLogger{sugar: l.Sugar()}
}

// NewNopLogger returns a logger that discards everything. Used in
// tests and by the CLI when -quiet is set.
func NewNopLogger() ports.Logger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debugf(msg, args...) }
func (l *ZapLogger) Info(msg string, args ...interface{})  { l.sugar.Infof(msg, args...) }
func (l *ZapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warnf(msg, args...) }
func (l *ZapLogger) Error(msg string, args ...interface{}) { l.sugar.Errorf(msg, args...) }
func (l *ZapLogger) Fatal(msg string, args ...interface{}) { l.sugar.Fatalf(msg, args...) }

// Printf formatted output (compatibility)
func (l *ZapLogger) Printf(format string, args ...interface{}) { l.sugar.Infof(format, args...) }
