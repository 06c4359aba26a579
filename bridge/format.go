package bridge

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/philipp01105/topolog/core"
)

// unknownModule is used when a facade does not report its call site
const unknownModule = "?"

// appendPair appends " key=value" to b. Strings that would be ambiguous in
// a key=value list are quoted.
func appendPair(b []byte, key string, val interface{}) []byte {
	b = append(b, ' ')
	b = append(b, key...)
	b = append(b, '=')

	var s string
	switch v := val.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	case error:
		s = v.Error()
	default:
		s = fmt.Sprint(v)
	}
	if needsQuote(s) {
		return strconv.AppendQuote(b, s)
	}
	return append(b, s...)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, " =\"\t\r\n")
}

// frame resolves a program counter to the package path and line number of
// its function.
func frame(pc uintptr) (string, uint32) {
	if pc == 0 {
		return unknownModule, 0
	}
	f, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if f.Function == "" {
		return unknownModule, uint32(f.Line)
	}
	return core.PackagePath(f.Function), uint32(f.Line)
}
