package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/philipp01105/topolog/config"
)

// options are the persistent flags shared by every subcommand
type options struct {
	configPath string
	filter     string
	color      string
	output     string

	flags *pflag.FlagSet
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "topolog",
		Short:        "Inspect and exercise TOPO_LOG configurations",
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "Path to a TOML configuration file")
	pf.StringVarP(&o.filter, "filter", "f", "", "Filter string, overrides TOPO_LOG and the file")
	pf.StringVar(&o.color, "color", "", "Color mode: always, never or auto")
	pf.StringVar(&o.output, "output", "", "Output: stderr, stdout or both comma separated")
	o.flags = pf

	cmd.AddCommand(
		newCheckCmd(o),
		newEmitCmd(o),
		newWatchCmd(o),
	)
	return cmd
}

// load reads path with config.Load and applies the flags that were set on
// the command line. Precedence is flags, then environment, then file.
func (o *options) load(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	o.flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		switch f.Name {
		case "filter":
			cfg.Log.Filter = o.filter
		case "color":
			cfg.Log.Color = o.color
		case "output":
			cfg.Log.Output = o.output
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "flags")
	}
	return cfg, nil
}

func (o *options) loadConfig() (config.Config, error) {
	return o.load(o.configPath)
}
