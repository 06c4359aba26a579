package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/handler"
)

// noopHandler accepts records without formatting them, isolating the cost
// of the front-end, caller lookup and filter decision.
type noopHandler struct {
	records atomic.Uint64
}

func newNoopHandler() *noopHandler {
	return &noopHandler{}
}

var _ handler.Handler = (*noopHandler)(nil)

func (h *noopHandler) Handle(rec *core.Record) error {
	h.records.Add(1)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
