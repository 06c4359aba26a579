package core

import "github.com/petermattis/goid"

// ThreadID returns the numeric id of the calling goroutine. The id is
// stable for the lifetime of the goroutine and never reused while it runs.
func ThreadID() int64 {
	return goid.Get()
}
