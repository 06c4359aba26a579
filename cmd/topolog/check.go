package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/philipp01105/topolog/filter"
)

func newCheckCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [target...]",
		Short: "Print the effective threshold of each target",
		Long: `Resolves the configuration and prints the default threshold followed by
the effective threshold of each named target, or of every configured target
when none are named. A target's threshold is never below the default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig()
			if err != nil {
				return err
			}
			f := cfg.Filter()

			targets := args
			if len(targets) == 0 {
				targets = f.TargetNames()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "filter\t%s\n", f)
			fmt.Fprintf(tw, "%s\t%s\n", filter.AllTarget, f.Default)
			for _, t := range targets {
				fmt.Fprintf(tw, "%s\t%s\n", t, f.Threshold(t))
			}
			return tw.Flush()
		},
	}
}
