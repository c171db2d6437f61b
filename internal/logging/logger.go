package logging

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelNone  = "none"
)

// Logger carries diagnostics to stderr. Operator-facing output goes through
// presentation.Printer instead.
type Logger struct {
	z *zap.Logger
}

// New returns a console-encoded logger writing to w at the given level.
func New(w io.Writer, level string) (Logger, error) {
	if level == LevelNone || w == nil {
		return Nop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return Logger{}, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return Logger{z: zap.New(core)}, nil
}

func Nop() Logger {
	return Logger{z: zap.NewNop()}
}

func (l Logger) base() *zap.Logger {
	if l.z == nil {
		return zap.NewNop()
	}
	return l.z
}

func (l Logger) Debug(msg string, fields ...zap.Field) { l.base().Debug(msg, fields...) }
func (l Logger) Info(msg string, fields ...zap.Field)  { l.base().Info(msg, fields...) }
func (l Logger) Warn(msg string, fields ...zap.Field)  { l.base().Warn(msg, fields...) }
func (l Logger) Error(msg string, fields ...zap.Field) { l.base().Error(msg, fields...) }

func (l Logger) Verbosef(format string, args ...any) {
	l.base().Sugar().Debugf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.base().Core().Enabled(zapcore.DebugLevel) {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Debug(label+" finished", zap.Duration("took", elapsed))
	}
}

func (l Logger) Sync() {
	_ = l.base().Sync()
}
