/*
NAME
  logging.go

DESCRIPTION
  Package logging provides a small leveled logger used by the mts
  encoder and the example cmd/ binaries. It mirrors the shape of
  github.com/ausocean/utils/logging (Debug/Info/Warn/Error(msg string,
  kv ...interface{})) but is self-contained, backed by zap.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logging provides a small leveled logger backed by zap.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels, lowest to highest.
const (
	Debug int8 = iota
	Info
	Warning
	Error
	Fatal
)

// Logger is the leveled logging interface used throughout this module.
// Each method takes a message and an optional list of alternating
// key/value pairs, in the style of a structured logger.
type Logger interface {
	Debug(msg string, kv ...interface{})
	Info(msg string, kv ...interface{})
	Warn(msg string, kv ...interface{})
	Error(msg string, kv ...interface{})
	Fatal(msg string, kv ...interface{})
}

// sugarLogger adapts a zap.SugaredLogger to Logger.
type sugarLogger struct {
	z *zap.SugaredLogger
}

// New returns a Logger that writes to out at the given minimum level.
// If suppress is true, stack traces are omitted even at Error/Fatal.
func New(level int8, out io.Writer, suppress bool) Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(out), zapLevel(level))

	var opts []zap.Option
	if !suppress {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	z := zap.New(core, opts...)
	return &sugarLogger{z: z.Sugar()}
}

func zapLevel(level int8) zapcore.Level {
	switch {
	case level <= Debug:
		return zapcore.DebugLevel
	case level == Info:
		return zapcore.InfoLevel
	case level == Warning:
		return zapcore.WarnLevel
	case level == Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

func (l *sugarLogger) Debug(msg string, kv ...interface{}) { l.z.Debugw(msg, kv...) }
func (l *sugarLogger) Info(msg string, kv ...interface{})  { l.z.Infow(msg, kv...) }
func (l *sugarLogger) Warn(msg string, kv ...interface{})  { l.z.Warnw(msg, kv...) }
func (l *sugarLogger) Error(msg string, kv ...interface{}) { l.z.Errorw(msg, kv...) }
func (l *sugarLogger) Fatal(msg string, kv ...interface{}) { l.z.Fatalw(msg, kv...) }
