package logger

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/filter"
)

// The global logger starts absent, is set by the first Initialize or
// Install, may be replaced by later calls, and is never torn down. Every
// read and write of it happens under mu, so a whole check, format and
// write sequence completes before the next one starts.
var (
	mu     sync.Mutex
	active *Logger
	frozen bool

	// maxLevel is the facade gate checked by front-ends before they take
	// the lock. It stays Off until a logger is installed.
	maxLevel atomic.Int32
)

var (
	// ErrFrozen is returned when the global logger was fixed by Freeze
	ErrFrozen = errors.New("global logger is frozen")
	// ErrNilLogger is returned by Install for a nil logger
	ErrNilLogger = errors.New("nil logger")
)

// Initialize reads TOPO_LOG and installs a logger writing to stderr,
// replacing any previously installed logger.
func Initialize() error {
	return InitializeFrom(EnvSource(filter.EnvVar))
}

// InitializeFrom loads a filter from src and installs a logger writing to
// stderr. If src fails the current logger is kept.
func InitializeFrom(src Source) error {
	f, err := src()
	if err != nil {
		return errors.Wrap(err, "load filter")
	}
	return Install(NewBuilder().WithFilter(f).Build())
}

// Install makes l the global logger and opens the facade gate to
// TraceLevel so that all filtering happens in l.
func Install(l *Logger) error {
	if l == nil {
		return ErrNilLogger
	}

	mu.Lock()
	defer mu.Unlock()

	if frozen {
		return ErrFrozen
	}
	active = l
	SetMaxLevel(core.MaxLevel)
	return nil
}

// Freeze fixes the installed logger for the rest of the process. Later
// Initialize, InitializeFrom and Install calls return ErrFrozen.
func Freeze() {
	mu.Lock()
	frozen = true
	mu.Unlock()
}

// Emit hands rec to the global logger. It is a no-op until a logger has
// been installed.
func Emit(rec *core.Record) {
	mu.Lock()
	defer mu.Unlock()

	if active == nil {
		return
	}
	active.Log(rec)
}

// Log builds a record from its parts and emits it through the global
// logger.
func Log(target string, level core.Level, module string, line uint32, msg string) {
	rec := core.GetRecord()
	rec.Target = target
	rec.Level = level
	rec.Module = module
	rec.Line = line
	rec.Message = msg
	Emit(rec)
	core.PutRecord(rec)
}

// Enabled reports whether the global logger would emit a record for
// target at level. It is false until a logger has been installed.
func Enabled(target string, level core.Level) bool {
	if level > MaxLevel() {
		return false
	}

	mu.Lock()
	defer mu.Unlock()

	return active != nil && active.Enabled(target, level)
}

// admit is Enabled for the front-ends. A refused record is counted as
// suppressed by the installed logger, as if it had reached Log.
func admit(target string, level core.Level) bool {
	mu.Lock()
	defer mu.Unlock()

	if active == nil {
		return false
	}
	if !active.Enabled(target, level) {
		active.stats.IncrementSuppressed(level)
		return false
	}
	return true
}

// MaxLevel returns the facade gate level
func MaxLevel() core.Level {
	return core.Level(maxLevel.Load())
}

// SetMaxLevel sets the facade gate level. Calls above it are dropped by
// the front-ends before any work is done.
func SetMaxLevel(l core.Level) {
	maxLevel.Store(int32(l))
}

// CurrentFilter returns a copy of the installed logger's filter and
// whether a logger is installed.
func CurrentFilter() (filter.Filter, bool) {
	mu.Lock()
	defer mu.Unlock()

	if active == nil {
		return filter.Filter{}, false
	}
	return active.Filter(), true
}

// CurrentStats returns a snapshot of the installed logger's counters, or
// of the process-wide counters when no logger is installed.
func CurrentStats() Snapshot {
	mu.Lock()
	s := processStats
	if active != nil {
		s = active.stats
	}
	mu.Unlock()
	return s.Snapshot()
}
