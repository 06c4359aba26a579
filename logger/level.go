package logger

import (
	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/filter"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	OffLevel   = core.OffLevel
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// ParseLevel converts a configuration token to a Level; see filter.ParseLevel
func ParseLevel(s string) Level {
	return filter.ParseLevel(s)
}
