//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework AppKit
#import <Cocoa/Cocoa.h>
#import <AppKit/AppKit.h>

int kitchenAppActive() {
    return [NSApp isActive] ? 1 : 0;
}

void kitchenActivateApp() {
    [NSApp activateIgnoringOtherApps:YES];
}

void kitchenBounceDock() {
    [NSApp requestUserAttention:NSCriticalRequest];
}
*/
import "C"

// IsAppActive reports whether the timer is the frontmost application
func IsAppActive() bool {
	return C.kitchenAppActive() == 1
}

// ActivateApp brings the timer in front of other applications
func ActivateApp() {
	C.kitchenActivateApp()
}

// RequestAttention bounces the Dock icon until the app is activated
func RequestAttention() {
	C.kitchenBounceDock()
}
