//go:build unchecked_debug
// +build unchecked_debug

package unchecked

// Debug is true when preconditions are asserted before every write.
const Debug = true
