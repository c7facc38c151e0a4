package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents logging severity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// Logger is a leveled logger driven by the count of -v flags.
// It is built once per process and handed to the components that log.
type Logger struct {
	sugar     *zap.SugaredLogger
	level     Level
	verbosity int
}

// New returns a logger writing to stderr at the level implied by verbosity.
func New(verbosity int) *Logger {
	return NewWithWriter(os.Stderr, verbosity)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, verbosity int) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	l := &Logger{sugar: zap.New(core).Sugar()}
	l.SetVerbosity(verbosity)
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar(), level: LevelError}
}

// SetVerbosity configures logger output from count of -v flags (0-4).
func (l *Logger) SetVerbosity(count int) {
	if count < 0 {
		count = 0
	}
	if count > 4 {
		count = 4
	}
	l.verbosity = count
	switch count {
	case 0:
		l.level = LevelWarn
	case 1:
		l.level = LevelInfo
	case 2:
		l.level = LevelDebug
	default:
		l.level = LevelTrace
	}
}

// Verbosity returns the stored -v count.
func (l *Logger) Verbosity() int {
	return l.verbosity
}

// LevelName returns current level label.
func (l *Logger) LevelName() string {
	return LevelToString(l.level)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// LevelToString converts a Level to human readable text.
func LevelToString(lv Level) string {
	switch lv {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLevel returns Level + verbosity count from string.
func ParseLevel(s string) (Level, int, error) {
	switch strings.ToLower(s) {
	case "error":
		return LevelError, 0, nil
	case "warn", "warning":
		return LevelWarn, 0, nil
	case "info":
		return LevelInfo, 1, nil
	case "debug":
		return LevelDebug, 2, nil
	case "trace":
		return LevelTrace, 4, nil
	default:
		return LevelWarn, 0, fmt.Errorf("unknown level %s", s)
	}
}

func (l *Logger) enabled(lv Level) bool {
	return lv <= l.level
}

func (l *Logger) Warnf(format string, args ...any) {
	if l.enabled(LevelWarn) {
		l.sugar.Warnf(format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l.enabled(LevelInfo) {
		l.sugar.Infof(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.enabled(LevelDebug) {
		l.sugar.Debugf(format, args...)
	}
}

// Tracef goes out at zap's debug level with a trace marker.
func (l *Logger) Tracef(format string, args ...any) {
	if l.enabled(LevelTrace) {
		l.sugar.Debugf("[trc] "+format, args...)
	}
}
