//go:build !debug

package debug

// Enabled reports whether assertions are compiled in.
const Enabled = false

// Assert does nothing in release builds.
func Assert(_ bool, _ string) {}
