package config

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/philipp01105/topolog/filter"
	"github.com/philipp01105/topolog/formatter"
	"github.com/philipp01105/topolog/handler"
	"github.com/philipp01105/topolog/logger"
)

const (
	// EnvColor overrides log.color
	EnvColor = "TOPO_LOG_COLOR"
	// EnvOutput overrides log.output
	EnvOutput = "TOPO_LOG_OUTPUT"
)

// Config is the file and environment configuration
type Config struct {
	Log LogConfig `toml:"log"`

	path string
}

// LogConfig is the [log] table
type LogConfig struct {
	Filter string `toml:"filter"`
	Color  string `toml:"color"`
	Output string `toml:"output"`
}

// Default returns the configuration used when neither a file nor the
// environment set anything: no filter, colored output on stderr.
func Default() Config {
	return Config{
		Log: LogConfig{
			Color:  formatter.ColorAlways.String(),
			Output: "stderr",
		},
	}
}

// Load reads path, applies the environment overrides and validates the
// result. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.path = path

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, errors.Wrapf(err, "read config %s", path)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := filter.Lookup(filter.EnvVar); ok {
		c.Log.Filter = v
	}
	if v, ok := filter.Lookup(EnvColor); ok && v != "" {
		c.Log.Color = v
	}
	if v, ok := filter.Lookup(EnvOutput); ok && v != "" {
		c.Log.Output = v
	}
}

// Validate checks the color mode and output names
func (c Config) Validate() error {
	if _, err := formatter.ParseColorMode(c.Log.Color); err != nil {
		return errors.Wrap(err, "log.color")
	}
	if _, err := handler.ParseOutputs(c.Log.Output, discard); err != nil {
		return errors.Wrap(err, "log.output")
	}
	return nil
}

func discard(io.Writer) handler.Handler { return nil }

// Path returns the file the configuration was loaded from
func (c Config) Path() string {
	return c.path
}

// Filter parses log.filter
func (c Config) Filter() filter.Filter {
	return filter.Parse(c.Log.Filter)
}

// Build creates a logger with the configured filter, color mode and outputs
func (c Config) Build() (*logger.Logger, error) {
	mode, err := formatter.ParseColorMode(c.Log.Color)
	if err != nil {
		return nil, errors.Wrap(err, "log.color")
	}

	h, err := handler.ParseOutputs(c.Log.Output, func(w io.Writer) handler.Handler {
		return handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer:    w,
			Formatter: formatter.NewTextFormatter(formatter.Config{Color: mode, Output: w}),
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "log.output")
	}

	return logger.NewBuilder().
		WithFilter(c.Filter()).
		WithHandler(h).
		Build(), nil
}

// Apply builds the logger and installs it as the global logger, replacing
// the previous one as a whole.
func (c Config) Apply() error {
	l, err := c.Build()
	if err != nil {
		return err
	}
	return logger.Install(l)
}

// Source returns a logger.Source that reloads the file on every call
func (c Config) Source() logger.Source {
	path := c.path
	return func() (filter.Filter, error) {
		fresh, err := Load(path)
		if err != nil {
			return filter.Filter{}, err
		}
		return fresh.Filter(), nil
	}
}
