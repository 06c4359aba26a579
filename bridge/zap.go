package bridge

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/logger"
)

// ZapCore implements zapcore.Core on top of the global logger. The name of
// the zap logger, when set, is the target; otherwise the core's target,
// otherwise the calling package.
type ZapCore struct {
	target string
	fields []byte
}

// NewZapCore creates a zapcore.Core emitting to target. Build the zap
// logger with zap.AddCaller() for module and line to be reported.
func NewZapCore(target string) *ZapCore {
	return &ZapCore{target: target}
}

// Enabled consults the facade gate only
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return FromZapLevel(level) <= logger.MaxLevel()
}

// With returns a core that appends fields to every message
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	newFields := make([]byte, len(c.fields), len(c.fields)+16*len(fields))
	copy(newFields, c.fields)
	return &ZapCore{
		target: c.target,
		fields: appendFields(newFields, fields),
	}
}

// Check adds the core to ce when the filter enables the entry. Without a
// known target the decision is left to the filter at write time.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	if target := c.targetOf(ent); target != "" && !logger.Enabled(target, FromZapLevel(ent.Level)) {
		return ce
	}
	return ce.AddCore(ent, c)
}

// Write emits the entry through the global logger
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	module, line := unknownModule, uint32(0)
	if ent.Caller.Defined {
		line = uint32(ent.Caller.Line)
		if ent.Caller.Function != "" {
			module = core.PackagePath(ent.Caller.Function)
		} else {
			module, _ = frame(ent.Caller.PC)
		}
	}

	target := c.targetOf(ent)
	if target == "" {
		target = module
	}

	msg := make([]byte, 0, len(ent.Message)+len(c.fields)+16*len(fields))
	msg = append(msg, ent.Message...)
	msg = append(msg, c.fields...)
	msg = appendFields(msg, fields)

	logger.Log(target, FromZapLevel(ent.Level), module, line, string(msg))
	return nil
}

// Sync is a no-op; every record is written before Write returns
func (c *ZapCore) Sync() error {
	return nil
}

func (c *ZapCore) targetOf(ent zapcore.Entry) string {
	if ent.LoggerName != "" {
		return ent.LoggerName
	}
	return c.target
}

// FromZapLevel converts a zapcore.Level to a core.Level. DPanic, Panic and
// Fatal become ErrorLevel, custom levels below Debug become TraceLevel.
func FromZapLevel(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	case level == zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendFields encodes fields with a map encoder and appends them in
// call order.
func appendFields(b []byte, fields []zapcore.Field) []byte {
	if len(fields) == 0 {
		return b
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Key] {
			continue
		}
		seen[f.Key] = true
		if v, ok := enc.Fields[f.Key]; ok {
			b = appendPair(b, f.Key, v)
		}
	}
	return b
}
