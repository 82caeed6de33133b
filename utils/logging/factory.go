// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/maps"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// SetLogLevel sets the file log level of the logger with the given name.
	SetLogLevel(name string, level Level) error

	// SetDisplayLevel sets the display level of the logger with the given name.
	SetDisplayLevel(name string, level Level) error

	// GetLoggerNames returns the names of all logs created by this factory
	GetLoggerNames() []string

	// Close stops and clears all of a Factory's instantiated loggers
	Close()
}

type logWrapper struct {
	logger       Logger
	displayLevel zapLevelSetter
	logLevel     zapLevelSetter
}

type zapLevelSetter interface {
	SetLevel(Level)
}

type atomicLevel struct {
	core WrappedCore
}

func (a atomicLevel) SetLevel(l Level) {
	a.core.AtomicLevel.SetLevel(l.ZapLevel())
}

type noopLevel struct{}

func (noopLevel) SetLevel(Level) {}

type factory struct {
	config Config
	lock   sync.RWMutex

	// For each logger created by this factory:
	// Logger name --> the logger.
	loggers map[string]logWrapper
}

// NewFactory returns a new instance of a Factory producing loggers configured with
// the values set in the [config] parameter
func NewFactory(config Config) Factory {
	return &factory{
		config:  config,
		loggers: make(map[string]logWrapper),
	}
}

// Assumes [f.lock] is held
func (f *factory) makeLogger(config Config) (Logger, error) {
	if _, ok := f.loggers[config.LoggerName]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", config.LoggerName)
	}

	consoleCore := NewWrappedCore(config.DisplayLevel, stdout{os.Stdout}, config.LogFormat.ConsoleEncoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying
	cores := []WrappedCore{consoleCore}

	wrapper := logWrapper{
		displayLevel: atomicLevel{core: consoleCore},
		logLevel:     noopLevel{},
	}
	if config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxFiles,
			Compress:   config.Compress,
		}
		fileCore := NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder())
		cores = append(cores, fileCore)
		wrapper.logLevel = atomicLevel{core: fileCore}
	}

	wrapper.logger = NewLogger(config.MsgPrefix, cores...)
	f.loggers[config.LoggerName] = wrapper
	return wrapper.logger, nil
}

func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	config := f.config
	config.LoggerName = name
	if config.MsgPrefix == "" {
		config.MsgPrefix = name
	}
	return f.makeLogger(config)
}

func (f *factory) SetLogLevel(name string, level Level) error {
	f.lock.RLock()
	defer f.lock.RUnlock()

	logger, ok := f.loggers[name]
	if !ok {
		return fmt.Errorf("logger with name %q not found", name)
	}
	logger.logLevel.SetLevel(level)
	return nil
}

func (f *factory) SetDisplayLevel(name string, level Level) error {
	f.lock.RLock()
	defer f.lock.RUnlock()

	logger, ok := f.loggers[name]
	if !ok {
		return fmt.Errorf("logger with name %q not found", name)
	}
	logger.displayLevel.SetLevel(level)
	return nil
}

func (f *factory) GetLoggerNames() []string {
	f.lock.RLock()
	defer f.lock.RUnlock()

	return maps.Keys(f.loggers)
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, lw := range f.loggers {
		lw.logger.Stop()
	}
	f.loggers = nil
}

// stdout must never be closed by Logger.Stop.
type stdout struct {
	io.Writer
}

func (stdout) Close() error { return nil }
