// Package log is the leveled logging facade for the model-description
// core. It stays a silent no-op until a logger is installed.
package log

import (
	"errors"
	"io"
	stdlog "log"
	"os"

	"github.com/neuronlabs/uni-logger"
)

const (
	// LDEBUG3 is the most verbose debug level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the second debug level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the base debug level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the info level.
	LINFO = unilogger.INFO
	// LWARNING is the warning level.
	LWARNING = unilogger.WARNING
	// LERROR is the error level.
	LERROR = unilogger.ERROR
	// LUNKNOWN is the unspecified level.
	LUNKNOWN = unilogger.UNKNOWN
)

var (
	logger         unilogger.LeveledLogger
	currentLevel   = LINFO
	debugLeveled   unilogger.DebugLeveledLogger
	isDebugLeveled bool
)

// Default installs a unilogger.BasicLogger writing to os.Stderr.
func Default() {
	basic := unilogger.NewBasicLogger(os.Stderr, "", stdlog.Ldate|stdlog.Ltime|stdlog.Lshortfile)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// New installs a unilogger.BasicLogger writing to out with the given
// prefix and stdlib log flags.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// SetLogger installs l as the package logger and pushes the current
// level onto it when it supports level setting.
func SetLogger(l unilogger.LeveledLogger) {
	logger = l

	if depth, ok := l.(unilogger.OutputDepthGetter); ok {
		if setter, ok := l.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}
	if lvlSetter, ok := l.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}
	debugLeveled, isDebugLeveled = l.(unilogger.DebugLeveledLogger)
}

// Logger returns the installed logger, nil when none is set.
func Logger() unilogger.LeveledLogger {
	return logger
}

// Level returns the current logging level.
func Level() unilogger.Level {
	return currentLevel
}

// SetLevel changes the logging level for the installed logger.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.New("unknown logging level")
	}
	if level == currentLevel {
		return nil
	}
	currentLevel = level
	if logger == nil {
		return nil
	}
	lvlSetter, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return errors.New("installed logger cannot change level")
	}
	lvlSetter.SetLevel(currentLevel)
	return nil
}

// Debug writes a LDEBUG log.
func Debug(args ...interface{}) {
	if logger != nil {
		logger.Debug(args...)
	}
}

// Debugf writes a formatted LDEBUG log.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debug2 writes a LDEBUG2 log, degrading to LDEBUG when the installed
// logger has no debug sublevels.
func Debug2(args ...interface{}) {
	if isDebugLeveled {
		debugLeveled.Debug2(args...)
		return
	}
	if logger != nil {
		logger.Debug(args...)
	}
}

// Debug2f writes a formatted LDEBUG2 log.
func Debug2f(format string, args ...interface{}) {
	if isDebugLeveled {
		debugLeveled.Debug2f(format, args...)
		return
	}
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debug3 writes a LDEBUG3 log, degrading to LDEBUG when the installed
// logger has no debug sublevels.
func Debug3(args ...interface{}) {
	if isDebugLeveled {
		debugLeveled.Debug3(args...)
		return
	}
	if logger != nil {
		logger.Debug(args...)
	}
}

// Debug3f writes a formatted LDEBUG3 log.
func Debug3f(format string, args ...interface{}) {
	if isDebugLeveled {
		debugLeveled.Debug3f(format, args...)
		return
	}
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Info writes a LINFO log.
func Info(args ...interface{}) {
	if logger != nil {
		logger.Info(args...)
	}
}

// Infof writes a formatted LINFO log.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warning writes a LWARNING log.
func Warning(args ...interface{}) {
	if logger != nil {
		logger.Warning(args...)
	}
}

// Warningf writes a formatted LWARNING log.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Error writes a LERROR log.
func Error(args ...interface{}) {
	if logger != nil {
		logger.Error(args...)
	}
}

// Errorf writes a formatted LERROR log.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}
