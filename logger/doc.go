// Package logger is the public API of topolog. Most users only need to
// import this package.
//
// A program calls Initialize once, typically from main. It reads the
// TOPO_LOG environment variable (see package filter for the grammar) and
// installs a logger that writes to stderr:
//
//	if err := logger.Initialize(); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	}
//	logger.Infof("listening on %s", addr)
//	logger.Target("net").Tracef("read %d bytes", n)
//
// Without TOPO_LOG nothing is printed. Each emitted record is one line:
//
//	[DEBUG - 18  - github.com/acme/app/net:42] dialing 10.0.0.1
//
// The level is colored, 18 is the id of the logging goroutine, and the
// module is the import path of the calling package. The calling package
// is also the filter target unless one is named with Target.
//
// There is one global logger. Initialize, InitializeFrom and Install
// replace it as a whole; nothing of the previous configuration survives.
// Every log call holds the same mutex while it checks the filter, formats
// and writes, so lines from concurrent goroutines never interleave.
// Logging before the first Initialize is a silent no-op.
//
// Building with -tags notrace turns Tracef, Debugf, Infof, Warnf, Errorf
// and the Target methods into empty functions. Initialize, Emit, Log and
// Enabled stay available for bridges and tools.
//
// For custom output use the Builder and Install:
//
//	l := logger.NewBuilder().
//	    WithFilter(filter.Parse("all=info,db=trace")).
//	    WithHandler(handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stdout})).
//	    Build()
//	logger.Install(l)
package logger
