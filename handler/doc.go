// Package handler provides the Handler interface and its built-in
// implementations for writing records that passed the filter.
//
// All handlers are synchronous: Handle returns once the record has been
// written. Ordering and atomicity across goroutines are provided by the
// logger's global lock; ConsoleHandler additionally serializes its own
// writes so it is safe to use on its own.
//
// Built-in handlers:
//
//   - ConsoleHandler formats a record and writes it to any io.Writer
//     (default: stderr) with a single Write call.
//   - MultiHandler fans out a single record to multiple child handlers and
//     combines their errors with go.uber.org/multierr.
//
// ParseOutput and ParseOutputs map the configuration names "stderr" and
// "stdout" to writers.
package handler
