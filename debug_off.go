//go:build !flubdebug

package flub

const debugChecks = false
