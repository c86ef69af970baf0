//go:build !flubcompact

package flub

// CompactBuild reports whether the binary was built with the flubcompact tag.
const CompactBuild = false
