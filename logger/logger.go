package logger

import (
	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/filter"
	"github.com/philipp01105/topolog/handler"
)

// Logger pairs a Filter with the Handler that writes enabled records
// (immutable)
type Logger struct {
	filter  filter.Filter
	handler handler.Handler
	stats   *Stats
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	filter  filter.Filter
	handler handler.Handler
	stats   *Stats
}

// NewBuilder creates a new logger builder. Without WithFilter the logger
// emits nothing.
func NewBuilder() *Builder {
	return &Builder{
		filter: filter.Parse(""),
	}
}

// WithFilter sets the filter
func (b *Builder) WithFilter(f filter.Filter) *Builder {
	b.filter = f.Clone()
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithStats sets the counters updated by the logger (default: the
// process-wide counters returned by CurrentStats)
func (b *Builder) WithStats(s *Stats) *Builder {
	b.stats = s
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil {
		h = handler.NewConsoleHandler(handler.ConsoleConfig{})
	}
	s := b.stats
	if s == nil {
		s = processStats
	}
	return &Logger{
		filter:  b.filter,
		handler: h,
		stats:   s,
	}
}

// Enabled reports whether a record for target at level would be emitted
func (l *Logger) Enabled(target string, level core.Level) bool {
	return l.filter.Enabled(target, level)
}

// Log emits rec if the filter enables it. Write failures are counted,
// never retried.
func (l *Logger) Log(rec *core.Record) {
	if !l.filter.Enabled(rec.Target, rec.Level) {
		l.stats.IncrementSuppressed(rec.Level)
		return
	}

	if err := l.handler.Handle(rec); err != nil {
		l.stats.IncrementFailed()
		return
	}
	l.stats.IncrementEmitted(rec.Level)
}

// Filter returns a copy of the logger's filter
func (l *Logger) Filter() filter.Filter {
	return l.filter.Clone()
}

// Stats returns the logger's counters
func (l *Logger) Stats() *Stats {
	return l.stats
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	return l.handler.Close()
}
