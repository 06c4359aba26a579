package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/formatter"
)

// ConsoleHandler writes records to stderr (or any io.Writer). It is
// synchronous: Handle returns after the record has been written.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter with ColorAlways)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{Output: cfg.Writer})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache BufferFormatter to format into the handler-owned buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	return h
}

// Handle formats the record and writes it with a single Write call
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatRecord(rec, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(rec)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, err = h.writer.Write(data)
	h.mu.Unlock()
	return err
}

// Writer returns the destination writer
func (h *ConsoleHandler) Writer() io.Writer {
	return h.writer
}

// Close is a no-op; the console handler does not own its writer
func (h *ConsoleHandler) Close() error {
	return nil
}
