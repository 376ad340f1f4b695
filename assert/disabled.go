//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True does nothing when assertions are disabled.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False does nothing when assertions are disabled.
func False(value bool, args ...any) {
	// Intentionally left blank
}
