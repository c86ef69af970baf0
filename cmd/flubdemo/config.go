package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xgx-io/flub"
)

const envPrefix = "FLUBDEMO"

// Config is the resolved configuration of one flubdemo run. Sources, highest
// precedence first: flags set on the command line, FLUBDEMO_* environment
// variables, the --config file, flag defaults.
type Config struct {
	Code     flub.Code
	Message  string
	Sites    []string
	MaxTrace int
	Repeat   int
	Log      bool
	Debug    bool
	Verbose  bool
}

var errZeroCode = errors.New("code must be non-zero")

func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	code, err := parseCode(v.GetString("code"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Code:     code,
		Message:  v.GetString("message"),
		Sites:    v.GetStringSlice("site"),
		MaxTrace: v.GetInt("max-trace"),
		Repeat:   v.GetInt("repeat"),
		Log:      v.GetBool("log"),
		Debug:    v.GetBool("debug"),
		Verbose:  v.GetBool("verbose"),
	}, nil
}

// parseCode accepts decimal, 0x hex and 0o/0b forms.
func parseCode(s string) (flub.Code, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid code %q: %w", s, err)
	}
	if n == 0 {
		return 0, errZeroCode
	}
	return flub.Code(n), nil
}

// allocator returns the allocator the run throws with.
func (c *Config) allocator() flub.Allocator {
	if c.MaxTrace > 0 {
		return flub.BoundedAllocator{MaxTrace: c.MaxTrace}
	}
	return flub.DefaultAllocator()
}
