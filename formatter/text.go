package formatter

import (
	"bytes"
	"os"
	"strconv"

	"github.com/philipp01105/topolog/core"
)

// TextFormatter renders records as
//
//	[LEVEL - tid - module:line] message
//
// with the level padded to five columns and the goroutine id padded to
// three. The goroutine id is read while formatting, so Format must run on
// the goroutine that made the log call.
type TextFormatter struct {
	Config
	levels [core.MaxLevel + 1]string
	plain  string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	colored := cfg.Color.Enabled(cfg.Output)

	f := &TextFormatter{Config: cfg}
	for l := core.OffLevel; l <= core.MaxLevel; l++ {
		f.levels[l] = levelToken(l, colored)
	}
	f.plain = levelToken(core.Level(-1), false)
	return f
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatRecord(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatRecord writes the formatted record into buf
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	if rec.Level.Valid() {
		buf.WriteString(f.levels[rec.Level])
	} else {
		buf.WriteString(f.plain)
	}

	buf.WriteString(" - ")
	start := buf.Len()
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), core.ThreadID(), 10))
	for n := buf.Len() - start; n < 3; n++ {
		buf.WriteByte(' ')
	}

	buf.WriteString(" - ")
	buf.WriteString(rec.Module)
	buf.WriteByte(':')
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(rec.Line), 10))
	buf.WriteString("] ")

	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}
