package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xgx-io/flub"
)

// newLogger returns a console logger on w. The level is warn unless verbose
// (info) or debug (debug) is set.
func newLogger(w io.Writer, debug, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	} else if verbose {
		level = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// reporter picks where consumed flubs are reported.
func reporter(cmd *cobra.Command, cfg *Config, log zerolog.Logger) flub.Reporter {
	if cfg.Log {
		return flub.NewLogReporter(log)
	}
	return flub.NewTextReporter(cmd.ErrOrStderr())
}
