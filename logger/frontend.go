//go:build !notrace

package logger

import (
	"fmt"

	"github.com/philipp01105/topolog/core"
)

// callerSkip skips logf and the exported front-end function
const callerSkip = 2

// Tracef logs a trace message targeted at the calling package
func Tracef(format string, args ...interface{}) {
	logf("", core.TraceLevel, format, args)
}

// Debugf logs a debug message targeted at the calling package
func Debugf(format string, args ...interface{}) {
	logf("", core.DebugLevel, format, args)
}

// Infof logs an info message targeted at the calling package
func Infof(format string, args ...interface{}) {
	logf("", core.InfoLevel, format, args)
}

// Warnf logs a warning message targeted at the calling package
func Warnf(format string, args ...interface{}) {
	logf("", core.WarnLevel, format, args)
}

// Errorf logs an error message targeted at the calling package
func Errorf(format string, args ...interface{}) {
	logf("", core.ErrorLevel, format, args)
}

// Target names the filter target explicitly instead of using the calling
// package:
//
//	logger.Target("net").Debugf("dialing %s", addr)
type Target string

// Tracef logs a trace message for target t
func (t Target) Tracef(format string, args ...interface{}) {
	logf(string(t), core.TraceLevel, format, args)
}

// Debugf logs a debug message for target t
func (t Target) Debugf(format string, args ...interface{}) {
	logf(string(t), core.DebugLevel, format, args)
}

// Infof logs an info message for target t
func (t Target) Infof(format string, args ...interface{}) {
	logf(string(t), core.InfoLevel, format, args)
}

// Warnf logs a warning message for target t
func (t Target) Warnf(format string, args ...interface{}) {
	logf(string(t), core.WarnLevel, format, args)
}

// Errorf logs an error message for target t
func (t Target) Errorf(format string, args ...interface{}) {
	logf(string(t), core.ErrorLevel, format, args)
}

// logf resolves the call site, checks the filter and only then formats
// the message.
func logf(target string, level core.Level, format string, args []interface{}) {
	if level > MaxLevel() {
		return
	}

	caller := core.GetCaller(callerSkip)
	if target == "" {
		target = caller.Module
	}
	if !admit(target, level) {
		return
	}

	Log(target, level, caller.Module, uint32(caller.Line), fmt.Sprintf(format, args...))
}
