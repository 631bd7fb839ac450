//go:build !dscheck

package assert

// Enabled reports whether contract checks are compiled in.
const Enabled = false

// That is a no-op without the dscheck build tag.
func That(bool, string) {}
