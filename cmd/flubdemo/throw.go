package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xgx-io/flub"
)

func throwCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "throw",
		Short: "Throw a flub in foo(), append in bar(), catch it",
		Long: `Throw a heap flub and catch it.

foo() throws and names itself, bar() appends any --site values and then
itself, and the caller catches the result: the report is printed and the
flub released.

Examples:
  flubdemo throw
  flubdemo throw --code=0xDEADBEEF --message="Badness ensued!"
  flubdemo throw --site=a --site=b --max-trace=2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.Debug, cfg.Verbose)
			runThrow(reporter(cmd, cfg, log), cfg, log)
			return nil
		},
	}

	cmd.Flags().String("code", "1", "Flub code (decimal or 0x hex, non-zero)")
	cmd.Flags().String("message", "An error occurred!", "Flub message")
	cmd.Flags().StringSlice("site", nil, "Extra call sites appended by bar()")
	cmd.Flags().Int("max-trace", 0, "Cap the trace depth (0 = unbounded)")
	cmd.Flags().Bool("log", false, "Report through the logger instead of the text block")

	return cmd
}

type throwChain struct {
	cfg   *Config
	alloc flub.Allocator
}

func (c throwChain) foo() flub.Ref {
	return flub.ThrowWith(c.alloc, c.cfg.Message, c.cfg.Code).Append("foo()")
}

func (c throwChain) bar() flub.Ref {
	r := c.foo()
	if !r.Failed() {
		return flub.Ref{}
	}
	for _, site := range c.cfg.Sites {
		r = r.Append(site)
	}
	return r.Append("bar()")
}

func runThrow(rep flub.Reporter, cfg *Config, log zerolog.Logger) {
	log.Info().Str("mode", flub.CurrentMode().String()).Msg("throw/catch example")

	chain := throwChain{cfg: cfg, alloc: cfg.allocator()}
	if r := chain.bar(); r.Failed() {
		log.Debug().Stringer("flub", r).Bool("truncated", r.Truncated()).Msg("caught")
		flub.CatchTo(rep, r)
	}
}
