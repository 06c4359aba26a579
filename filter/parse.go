package filter

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/philipp01105/topolog/core"
)

// EnvVar is the environment variable read by FromEnv and logger.Initialize.
const EnvVar = "TOPO_LOG"

// Parse builds a Filter from a configuration string of the form
//
//	target[=level],target[=level],...
//
// A bare target means info. The target "all" sets the default level.
// Later entries win over earlier ones. Parse never fails: unknown level
// tokens mean info and entries without a target name are ignored.
func Parse(s string) Filter {
	f := Filter{
		Default: core.OffLevel,
		Targets: make(map[string]core.Level),
	}

	for _, entry := range strings.Split(s, ",") {
		target := entry
		level := core.InfoLevel
		if strings.Contains(entry, "=") {
			pieces := strings.Split(entry, "=")
			target = pieces[0]
			level = ParseLevel(pieces[1])
		}

		switch target {
		case "":
			continue
		case AllTarget:
			f.Default = level
		default:
			f.Targets[target] = level
		}
	}

	return f
}

// ParseLevel converts a level token to a Level. Tokens are matched
// exactly: trace/5, debug/4, info/3, warn/2, error/1. Anything else,
// including the empty string, is InfoLevel.
func ParseLevel(token string) core.Level {
	switch token {
	case "trace", "5":
		return core.TraceLevel
	case "debug", "4":
		return core.DebugLevel
	case "info", "3":
		return core.InfoLevel
	case "warn", "2":
		return core.WarnLevel
	case "error", "1":
		return core.ErrorLevel
	default:
		return core.InfoLevel
	}
}

// levelToken is the inverse of ParseLevel.
func levelToken(l core.Level) string {
	if l == core.OffLevel {
		return "off"
	}
	return strings.ToLower(l.String())
}

// Lookup reads the environment variable name. A value that is not valid
// UTF-8 is reported as absent.
func Lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	if !ok || !utf8.ValidString(v) {
		return "", false
	}
	return v, true
}

// FromEnv parses the environment variable name. When it is absent the
// result has an Off default and no targets, so nothing is emitted.
func FromEnv(name string) Filter {
	v, ok := Lookup(name)
	if !ok {
		return Filter{Default: core.OffLevel, Targets: map[string]core.Level{}}
	}
	return Parse(v)
}
