//go:build !darwin

package platform

// IsAppActive always returns true on non-macOS platforms
func IsAppActive() bool {
	return true
}

// ActivateApp is a no-op on non-macOS platforms; the alert window raises
// itself with Show and RequestFocus instead.
func ActivateApp() {}

// RequestAttention is a no-op on non-macOS platforms
func RequestAttention() {}
