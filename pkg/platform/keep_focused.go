// Package platform holds the OS-specific pieces of the desktop shell.
package platform

import "time"

// KeepFocused polls the application focus every interval until stop is
// closed. Whenever the app is found in the background it is activated
// and raise is called so the caller can show its window again.
func KeepFocused(stop <-chan struct{}, interval time.Duration, raise func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if IsAppActive() {
				continue
			}
			ActivateApp()
			if raise != nil {
				raise()
			}
		}
	}
}
