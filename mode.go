// mode.go — build-time representation strategy.
//
// A build is either verbose (heap records with message and trace) or compact
// (the code travels inside the Ref, nothing is allocated). The choice is made
// with the flubcompact build tag and surfaces as the CompactBuild constant, so
// the compiler drops the unused branch from Throw, Toss and Append.
//
//	go build              → verbose
//	go build -tags flubcompact → compact
package flub

// Mode names a flub representation.
type Mode uint8

const (
	// ModeVerbose is the diagnostic-rich representation.
	ModeVerbose Mode = iota
	// ModeCompact is the code-only, zero-allocation representation.
	ModeCompact
)

func (m Mode) String() string {
	switch m {
	case ModeVerbose:
		return "verbose"
	case ModeCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// CurrentMode reports the representation this binary was built with.
func CurrentMode() Mode {
	if CompactBuild {
		return ModeCompact
	}
	return ModeVerbose
}
