// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	plainStr = "plain"
	jsonStr  = "json"

	FormatDescription = "The structure of log format. Defaults to 'plain'. Options are: 'plain', 'json'"
)

// Format modes available
type Format int

const (
	Plain Format = iota
	JSON
)

var (
	termTimeEncoder = zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]")

	levelNames = map[zapcore.Level]string{
		Fatal.ZapLevel(): fatalStr,
		Error.ZapLevel(): errorStr,
		Warn.ZapLevel():  warnStr,
		Info.ZapLevel():  infoStr,
		Trace.ZapLevel(): traceStr,
		Debug.ZapLevel(): debugStr,
		Verbo.ZapLevel(): verboStr,
	}
)

// ToFormat converts a string to Format.
func ToFormat(f string) (Format, error) {
	switch strings.ToLower(f) {
	case plainStr, "":
		return Plain, nil
	case jsonStr:
		return JSON, nil
	default:
		return Plain, fmt.Errorf("unknown log format: %q", f)
	}
}

func (f Format) String() string {
	if f == JSON {
		return jsonStr
	}
	return plainStr
}

// ConsoleEncoder returns the encoder used for the display core.
func (f Format) ConsoleEncoder() zapcore.Encoder {
	if f == JSON {
		return zapcore.NewJSONEncoder(newEncoderConfig(zapcore.EpochTimeEncoder))
	}
	return zapcore.NewConsoleEncoder(newEncoderConfig(termTimeEncoder))
}

// FileEncoder returns the encoder used for rotated log files.
func (f Format) FileEncoder() zapcore.Encoder {
	if f == JSON {
		return zapcore.NewJSONEncoder(newEncoderConfig(zapcore.EpochTimeEncoder))
	}
	return zapcore.NewConsoleEncoder(newEncoderConfig(zapcore.ISO8601TimeEncoder))
}

func newEncoderConfig(timeEncoder zapcore.TimeEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    levelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	name, ok := levelNames[l]
	if !ok {
		name = l.CapitalString()
	}
	enc.AppendString(name)
}
