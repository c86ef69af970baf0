//go:build flubdebug

package flub

// debugChecks enables the code-0 warning and release assertions.
const debugChecks = true
