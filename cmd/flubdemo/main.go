// Command flubdemo walks flubs through small call chains so the report
// format, the representation and the trace strategy of a build can be seen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "flubdemo",
		Short: "Demonstrate flub error values",
		Long: `flubdemo throws, propagates and consumes flubs.

  • throw: foo() throws, bar() appends, the caller catches
  • toss:  hello() tosses into static storage, world() appends, the caller grabs
  • mode:  show the representation and trace strategy of this build

Flags may also come from FLUBDEMO_* environment variables or a TOML file
given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to a TOML config file")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")
	root.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	root.AddCommand(
		throwCmd(v),
		tossCmd(v),
		modeCmd(),
	)
	return root
}
