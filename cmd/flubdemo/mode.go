package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xgx-io/flub"
)

func modeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Print the representation and trace strategy of this build",
		Run: func(cmd *cobra.Command, _ []string) {
			trace := "manual"
			if flub.BacktraceBuild {
				trace = "backtrace"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "representation: %s\n", flub.CurrentMode())
			fmt.Fprintf(cmd.OutOrStdout(), "trace:          %s\n", trace)
		},
	}
}
