package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/topolog/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format formats a record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer)
}

// Config holds formatter configuration
type Config struct {
	// Color selects when the level token is colored (default: ColorAlways)
	Color ColorMode
	// Output is the writer checked by ColorAuto (default: os.Stderr)
	Output io.Writer
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the shared pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
