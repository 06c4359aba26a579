package filter

import (
	"sort"
	"strings"

	"github.com/philipp01105/topolog/core"
)

// AllTarget is the target name that sets the global default level.
const AllTarget = "all"

// Filter decides per target which levels are emitted. A Filter is built
// once by Parse and never mutated afterwards.
type Filter struct {
	// Default is the verbosity floor applied to every target.
	Default core.Level
	// Targets holds per-target levels keyed by non-empty target name.
	Targets map[string]core.Level
}

// Threshold returns the effective threshold for target: its own level if
// configured, otherwise Default, and never less verbose than Default.
//
// Because the two are combined with Max, a target configured below the
// default (e.g. "net=error,all=debug") still logs at the default's
// verbosity. Only a target level more verbose than Default changes
// anything.
func (f Filter) Threshold(target string) core.Level {
	level, ok := f.Targets[target]
	if !ok {
		level = f.Default
	}
	return core.Max(level, f.Default)
}

// Enabled reports whether a record for target at level should be emitted.
func (f Filter) Enabled(target string, level core.Level) bool {
	return level.Enabled(f.Threshold(target))
}

// MaxThreshold returns the most verbose threshold any target can reach.
func (f Filter) MaxThreshold() core.Level {
	top := f.Default
	for _, level := range f.Targets {
		top = core.Max(top, level)
	}
	return top
}

// Clone returns a deep copy of f.
func (f Filter) Clone() Filter {
	c := Filter{Default: f.Default}
	if f.Targets != nil {
		c.Targets = make(map[string]core.Level, len(f.Targets))
		for k, v := range f.Targets {
			c.Targets[k] = v
		}
	}
	return c
}

// Equal reports whether f and o hold the same default and target levels.
func (f Filter) Equal(o Filter) bool {
	if f.Default != o.Default || len(f.Targets) != len(o.Targets) {
		return false
	}
	for k, v := range f.Targets {
		if ov, ok := o.Targets[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// TargetNames returns the configured target names in sorted order.
func (f Filter) TargetNames() []string {
	names := make([]string, 0, len(f.Targets))
	for name := range f.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders f as a configuration string. For a Filter produced by
// Parse, parsing the result yields an equal Filter. An Off default is
// omitted.
func (f Filter) String() string {
	var b strings.Builder
	if f.Default != core.OffLevel {
		b.WriteString(AllTarget)
		b.WriteByte('=')
		b.WriteString(levelToken(f.Default))
	}
	for _, name := range f.TargetNames() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(levelToken(f.Targets[name]))
	}
	return b.String()
}
