// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InfraLogger is the process wide logger. It is usable before InitLoggers is
// called and only prints V(0) messages, warnings and errors until then.
var InfraLogger = NewLogger(newZapLogger(zapcore.InfoLevel), 0)

type Logger struct {
	verbosity atomic.Int32
	sugared   *zap.SugaredLogger
}

type VerboseLogger struct {
	enabled bool
	sugared *zap.SugaredLogger
}

func NewLogger(base *zap.Logger, verbosity int) *Logger {
	l := &Logger{sugared: base.Sugar()}
	l.verbosity.Store(int32(verbosity))
	return l
}

// InitLoggers replaces InfraLogger with a production zap logger honoring the
// given verbosity. Verbosity 5 and above also enables debug level output.
func InitLoggers(verbosity int) error {
	level := zapcore.InfoLevel
	if verbosity >= 5 {
		level = zapcore.DebugLevel
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true
	base, err := config.Build()
	if err != nil {
		return err
	}
	InfraLogger = NewLogger(base, verbosity)
	return nil
}

func newZapLogger(level zapcore.Level) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func (l *Logger) SetVerbosity(verbosity int) {
	l.verbosity.Store(int32(verbosity))
}

func (l *Logger) V(level int) *VerboseLogger {
	return &VerboseLogger{
		enabled: int32(level) <= l.verbosity.Load(),
		sugared: l.sugared,
	}
}

func (l *Logger) Errorf(template string, args ...interface{}) {
	l.sugared.Errorf(template, args...)
}

func (l *Logger) Warningf(template string, args ...interface{}) {
	l.sugared.Warnf(template, args...)
}

func (l *Logger) Sync() error {
	return l.sugared.Sync()
}

func (v *VerboseLogger) Enabled() bool {
	return v.enabled
}

func (v *VerboseLogger) Info(args ...interface{}) {
	if v.enabled {
		v.sugared.Info(args...)
	}
}

func (v *VerboseLogger) Infof(template string, args ...interface{}) {
	if v.enabled {
		v.sugared.Infof(template, args...)
	}
}

func (v *VerboseLogger) Warnf(template string, args ...interface{}) {
	if v.enabled {
		v.sugared.Warnf(template, args...)
	}
}

func (v *VerboseLogger) Debugf(template string, args ...interface{}) {
	if v.enabled {
		v.sugared.Debugf(template, args...)
	}
}
