package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/topolog/core"
)

// MultiHandler sends records to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle sends the record to every handler. All handlers are tried even
// if one fails; the failures are combined into one error.
func (h *MultiHandler) Handle(rec *core.Record) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(rec))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
