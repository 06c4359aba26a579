package formatter

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/philipp01105/topolog/core"
)

// ColorMode selects when level tokens are wrapped in ANSI color codes
type ColorMode int8

const (
	// ColorAlways colors every level token
	ColorAlways ColorMode = iota
	// ColorNever writes plain level tokens
	ColorNever
	// ColorAuto colors only when the output is a terminal and NO_COLOR is unset
	ColorAuto
)

// String returns the configuration name of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	case ColorAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "always", "never" or "auto" to a ColorMode.
// The empty string is ColorAlways.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	case "auto":
		return ColorAuto, nil
	default:
		return ColorAlways, errors.Errorf("unknown color mode %q", s)
	}
}

// Enabled reports whether output written to w should be colored.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorAuto:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return false
	}
}

// levelColors maps each emitting level to its foreground color
var levelColors = [...]color.Attribute{
	core.ErrorLevel: color.FgRed,
	core.WarnLevel:  color.FgYellow,
	core.InfoLevel:  color.FgGreen,
	core.DebugLevel: color.FgBlue,
	core.TraceLevel: color.FgMagenta,
}

// levelToken returns the level name left-aligned in a field of five,
// wrapped in its color when colored is true.
func levelToken(l core.Level, colored bool) string {
	name := l.String()
	if pad := 5 - len(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}
	if !colored || l == core.OffLevel || !l.Valid() {
		return name
	}

	c := color.New(levelColors[l])
	// fatih/color disables itself when stdout is not a terminal; the
	// mode has already been decided by the caller.
	c.EnableColor()
	return c.Sprint(name)
}
