package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xgx-io/flub"
)

// helloStorage is the static flub hello() tosses into. It outlives every
// grab and is reused on each call.
var helloStorage flub.Flub

func tossCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toss",
		Short: "Toss a flub into static storage in hello(), append in world(), grab it",
		Long: `Toss into static storage and grab.

hello() initializes a package-level flub in place, world() appends itself,
and the caller grabs the result: the report is printed and the diagnostics
released, while the storage stays for the next toss.

Examples:
  flubdemo toss
  flubdemo toss --repeat=3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.Debug, cfg.Verbose)
			runToss(reporter(cmd, cfg, log), cfg, log)
			return nil
		},
	}

	cmd.Flags().String("code", "0xDEADBEEF", "Flub code (decimal or 0x hex, non-zero)")
	cmd.Flags().String("message", "Badness ensued!", "Flub message")
	cmd.Flags().Int("repeat", 1, "How many times to toss into the same storage")
	cmd.Flags().Bool("log", false, "Report through the logger instead of the text block")

	return cmd
}

func hello(cfg *Config) flub.Ref {
	return flub.Toss(&helloStorage, cfg.Message, cfg.Code).Append("hello()")
}

func world(cfg *Config) flub.Ref {
	if r := hello(cfg); r.Failed() {
		return r.Append("world()")
	}
	return flub.Ref{}
}

func runToss(rep flub.Reporter, cfg *Config, log zerolog.Logger) {
	log.Info().Str("mode", flub.CurrentMode().String()).Msg("toss/grab example")

	for i := 0; i < max(cfg.Repeat, 1); i++ {
		if r := world(cfg); r.Failed() {
			log.Debug().Int("round", i).Stringer("flub", r).Msg("grabbed")
			flub.GrabTo(rep, r)
		}
	}
}
