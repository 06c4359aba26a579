package handler

import (
	"github.com/philipp01105/topolog/core"
)

// Handler defines the interface for record handlers
type Handler interface {
	// Handle writes a record that has already passed the filter
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}
