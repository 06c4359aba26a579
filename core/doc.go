// Package core defines the shared types used across topolog.
//
// It provides the Level type with its six-step ordering
// (Off < Error < Warn < Info < Debug < Trace), the Record type that
// represents a single log call, and helpers for resolving the calling
// package, line and goroutine.
//
// Record objects are pooled via sync.Pool. Callers get a Record with
// GetRecord and return it with PutRecord once it has been emitted.
//
// The module of a record is the import path of the package that made the
// log call, as returned by PackagePath. It doubles as the default target
// when the caller does not name one.
package core
