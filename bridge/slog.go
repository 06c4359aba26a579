package bridge

import (
	"context"
	"log/slog"

	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/logger"
)

// SlogHandler implements slog.Handler on top of the global logger.
type SlogHandler struct {
	target string
	groups string
	attrs  []byte
}

// NewSlogHandler creates a slog.Handler emitting to target. An empty
// target selects the package of each logging call.
func NewSlogHandler(target string) *SlogHandler {
	return &SlogHandler{target: target}
}

// Enabled reports whether the handler handles records at the given level.
// Without a fixed target only the facade gate is consulted; the filter
// decides again when the record is emitted.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l := FromSlogLevel(level)
	if s.target == "" {
		return l <= logger.MaxLevel()
	}
	return logger.Enabled(s.target+s.groups, l)
}

// Handle converts record into a core record and emits it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	module, line := frame(record.PC)

	target := s.target
	if target == "" {
		target = module
	}
	target += s.groups

	msg := make([]byte, 0, len(record.Message)+len(s.attrs)+16*record.NumAttrs())
	msg = append(msg, record.Message...)
	msg = append(msg, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		msg = appendAttr(msg, "", a)
		return true
	})

	logger.Log(target, FromSlogLevel(record.Level), module, line, string(msg))
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	newAttrs := make([]byte, len(s.attrs), len(s.attrs)+16*len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, "", a)
	}
	return &SlogHandler{
		target: s.target,
		groups: s.groups,
		attrs:  newAttrs,
	}
}

// WithGroup returns a new SlogHandler whose target is extended by name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		target: s.target,
		groups: s.groups + "." + name,
		attrs:  s.attrs,
	}
}

// FromSlogLevel converts a slog.Level to a core.Level. Levels below
// slog.LevelDebug become TraceLevel.
func FromSlogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders a, flattening groups into dotted keys.
func appendAttr(b []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return b
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if prefix != "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			b = appendAttr(b, key, ga)
		}
		return b
	}
	if a.Value.Kind() == slog.KindString {
		return appendPair(b, key, a.Value.String())
	}
	return appendPair(b, key, a.Value.Any())
}
