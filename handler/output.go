package handler

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownOutput is returned by ParseOutput for unsupported names
var ErrUnknownOutput = errors.New("unknown output")

// ParseOutput resolves an output name to a writer. Supported names are
// "stderr" (also the empty string) and "stdout".
func ParseOutput(name string) (io.Writer, error) {
	switch strings.ToLower(name) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return nil, errors.Wrapf(ErrUnknownOutput, "%q", name)
	}
}

// ParseOutputs resolves a comma separated list of output names and builds
// one handler per writer with newHandler. Several outputs are combined in
// a MultiHandler.
func ParseOutputs(names string, newHandler func(io.Writer) Handler) (Handler, error) {
	var handlers []Handler
	for _, name := range strings.Split(names, ",") {
		w, err := ParseOutput(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, newHandler(w))
	}
	if len(handlers) == 1 {
		return handlers[0], nil
	}
	return NewMultiHandler(handlers...), nil
}
