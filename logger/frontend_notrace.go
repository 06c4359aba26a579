//go:build notrace

package logger

// With the notrace build tag every front-end call compiles to nothing.
// Initialize, Emit, Log and Enabled remain available.

func Tracef(format string, args ...interface{}) {}

func Debugf(format string, args ...interface{}) {}

func Infof(format string, args ...interface{}) {}

func Warnf(format string, args ...interface{}) {}

func Errorf(format string, args ...interface{}) {}

type Target string

func (t Target) Tracef(format string, args ...interface{}) {}

func (t Target) Debugf(format string, args ...interface{}) {}

func (t Target) Infof(format string, args ...interface{}) {}

func (t Target) Warnf(format string, args ...interface{}) {}

func (t Target) Errorf(format string, args ...interface{}) {}
