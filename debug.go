// debug.go — misuse checks compiled in with the flubdebug build tag.
//
// Production builds perform none of these checks: debugChecks is a constant
// and every call site is guarded by it.
package flub

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var debugLog = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).With().Timestamp().Str("component", "flub").Logger()

// warnZeroCode logs a warning when code is the success sentinel and reports
// whether it did. Construction goes ahead either way.
func warnZeroCode(log zerolog.Logger, code Code) bool {
	if code != CodeOK {
		return false
	}
	log.Warn().
		Uint64("code", uint64(code)).
		Str("mode", CurrentMode().String()).
		Msg("flub thrown with code 0; 0 means success and breaks compact flubs, use a non-zero code")
	return true
}

// assertLive panics in debug builds when f was already released.
func assertLive(f *Flub) {
	if debugChecks && f.released {
		panic("flub: use of a released flub")
	}
}
