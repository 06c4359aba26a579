package logger_test

import (
	"fmt"
	"os"

	"github.com/philipp01105/topolog/filter"
	"github.com/philipp01105/topolog/formatter"
	"github.com/philipp01105/topolog/handler"
	"github.com/philipp01105/topolog/logger"
)

// Configure from TOPO_LOG and log through the package-level front-ends.
func Example() {
	if err := logger.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	logger.Infof("listening on %s", ":8080")
	logger.Target("net").Tracef("read %d bytes", 512)
}

// Build a logger with an explicit filter and plain output on stdout.
func ExampleNewBuilder() {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{Color: formatter.ColorNever, Output: os.Stdout}),
	})

	l := logger.NewBuilder().
		WithFilter(filter.Parse("all=warn,db=trace")).
		WithHandler(h).
		Build()

	if err := logger.Install(l); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	logger.Target("db").Debugf("query took %dms", 3)
}

// Check a target before doing expensive work for a log line.
func ExampleEnabled() {
	if logger.Enabled("cache", logger.DebugLevel) {
		logger.Target("cache").Debugf("entries: %v", []string{"a", "b"})
	}
}
