package logger

import (
	"github.com/philipp01105/topolog/filter"
)

// Source supplies the filter installed by InitializeFrom.
type Source func() (filter.Filter, error)

// EnvSource reads the filter from the environment variable name. It never
// fails; an absent or non-UTF-8 value yields a filter that emits nothing.
func EnvSource(name string) Source {
	return func() (filter.Filter, error) {
		return filter.FromEnv(name), nil
	}
}

// StringSource parses a fixed configuration string.
func StringSource(s string) Source {
	return func() (filter.Filter, error) {
		return filter.Parse(s), nil
	}
}
