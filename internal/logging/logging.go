// Package logging builds the console logger used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted on the command line and in the config file.
const (
	LevelNone   = "none"   // errors only
	LevelNormal = "normal" // progress and results
	LevelDebug  = "debug"  // everything
)

// ErrInvalidLevel indicates an unknown level name.
var ErrInvalidLevel = errors.New("invalid log level")

// New returns a console logger writing info and debug entries to stdout and
// warnings and errors to stderr. An empty level means LevelNormal.
func New(level string, stdout, stderr io.Writer) (*zap.Logger, error) {
	var low zapcore.Level
	switch level {
	case LevelNormal, "":
		low = zapcore.InfoLevel
	case LevelDebug:
		low = zapcore.DebugLevel
	case LevelNone:
		low = zapcore.WarnLevel
	default:
		return nil, fmt.Errorf("%w: %q (must be %s, %s or %s)", ErrInvalidLevel, level, LevelNone, LevelNormal, LevelDebug)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(ec)

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return low <= lvl && lvl < zapcore.WarnLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(stdout)), lowPriority),
		zapcore.NewCore(enc.Clone(), zapcore.Lock(zapcore.AddSync(stderr)), highPriority),
	)
	return zap.New(core), nil
}
