//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

static int wl_screen_capture_trusted(void) {
    return CGPreflightScreenCaptureAccess();
}
*/
import "C"

// IsScreenCaptureTrusted returns true if the process has screen recording
// permission. Without it the window server omits window titles.
func IsScreenCaptureTrusted() bool {
	return C.wl_screen_capture_trusted() != 0
}

// permissionHint returns instructions to append to an ErrUnavailable error
// when screen recording permission is missing.
func permissionHint() string {
	if IsScreenCaptureTrusted() {
		return ""
	}
	return "\n\n" +
		"Grant permission at: System Settings > Privacy & Security > Screen Recording\n" +
		"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n" +
		"Then restart the terminal and try again."
}
