package main

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipp01105/topolog/logger"
)

const (
	argsModule  = "args"
	stdinModule = "stdin"
)

func newEmitCmd(o *options) *cobra.Command {
	var target, level string

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Emit a message, or each line of stdin, through the configured logger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Apply(); err != nil {
				return err
			}
			lvl := logger.ParseLevel(level)

			if len(args) > 0 {
				t := target
				if t == "" {
					t = argsModule
				}
				logger.Log(t, lvl, argsModule, 0, strings.Join(args, " "))
				return nil
			}

			t := target
			if t == "" {
				t = stdinModule
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			var line uint32
			for scanner.Scan() {
				line++
				logger.Log(t, lvl, stdinModule, line, scanner.Text())
			}
			return errors.Wrap(scanner.Err(), "read stdin")
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "Target name (default: the module, args or stdin)")
	cmd.Flags().StringVarP(&level, "level", "l", "info", "Level: error, warn, info, debug, trace or 1-5")
	return cmd
}
