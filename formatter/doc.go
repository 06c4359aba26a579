// Package formatter defines how records are rendered into bytes.
//
// It exposes the Formatter interface, which returns a []byte, and the
// optional BufferFormatter, which appends into a caller-owned
// bytes.Buffer. Handlers check for BufferFormatter at construction time
// and prefer it, so a record is formatted and written with a single
// Write call.
//
// TextFormatter produces the one-line layout
//
//	[INFO  - 7   - github.com/acme/app/net:42] connected
//
// The level token is colored with github.com/fatih/color (error red, warn
// yellow, info green, debug blue, trace magenta). Colored tokens are
// pre-computed per level when the formatter is built, so the common path
// is a single WriteString call. ColorAuto colors only when the output is
// a terminal (github.com/mattn/go-isatty) and NO_COLOR is unset.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
