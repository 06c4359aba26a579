package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Record represents a single log call with all its metadata
type Record struct {
	Target  string
	Level   Level
	Module  string
	Line    uint32
	Message string
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	Module    string
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a zeroed Record from the pool
func GetRecord() *Record {
	return recordPool.Get().(*Record)
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// GetCaller retrieves caller information. skip has the same meaning as
// for runtime.Caller.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		Module:    PackagePath(funcName),
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// PackagePath extracts the import path of the package that declares the
// fully qualified function name fn, e.g.
// "github.com/a/b/pkg.(*T).Method.func1" becomes "github.com/a/b/pkg".
// Dots the linker escaped in the last path element ("yaml%2ev3") are
// restored.
func PackagePath(fn string) string {
	if fn == "" {
		return ""
	}
	slash := strings.LastIndexByte(fn, '/')
	path := fn
	if dot := strings.IndexByte(fn[slash+1:], '.'); dot >= 0 {
		path = fn[:slash+1+dot]
	}
	if strings.Contains(path, "%2e") {
		path = strings.ReplaceAll(path, "%2e", ".")
	}
	return path
}
