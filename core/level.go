package core

// Level represents the severity of a log record. Levels are totally
// ordered from least verbose (OffLevel) to most verbose (TraceLevel).
type Level int8

const (
	// OffLevel disables logging; no record is ever emitted at this level
	OffLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarnLevel for warning messages
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for the most verbose tracing output
	TraceLevel
)

// MaxLevel is the most verbose level.
const MaxLevel = TraceLevel

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "OFF"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= OffLevel && l <= TraceLevel
}

// Enabled reports whether a record at level l passes the given threshold.
// OffLevel records never pass.
func (l Level) Enabled(threshold Level) bool {
	return l != OffLevel && l <= threshold
}

// Max returns the more verbose of two levels.
func Max(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}

// Levels lists the emitting levels from least to most verbose.
func Levels() []Level {
	return []Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}
}
