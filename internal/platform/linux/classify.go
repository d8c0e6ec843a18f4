package linux

import "math"

// Window-server layers, numbered like the macOS window levels so that layer
// filters mean the same thing on every platform.
const (
	layerNormal       = 0
	layerFloating     = 3
	layerDock         = 20
	layerNotification = 23
	layerBelow        = -1
)

// Conventional values for the fields X11 has no equivalent for.
const (
	sharingReadOnly = 1
	storeBuffered   = 2
	bytesPerPixel   = 4
)

// sticky is the _NET_WM_DESKTOP value for windows shown on every desktop.
const sticky = 0xFFFFFFFF

// excluded reports whether a client should be left out of the snapshot:
// desktop backgrounds and hidden (minimized or shaded) windows.
func excluded(types, states []string) bool {
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DESKTOP" {
			return true
		}
	}
	for _, s := range states {
		if s == "_NET_WM_STATE_HIDDEN" {
			return true
		}
	}
	return false
}

// onCurrentDesktop reports whether a window on desktop is visible while
// current is the active desktop.
func onCurrentDesktop(desktop, current uint) bool {
	return desktop == sticky || desktop == current
}

func layerFor(types, states []string) int {
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DOCK":
			return layerDock
		case "_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return layerNotification
		}
	}
	for _, s := range states {
		switch s {
		case "_NET_WM_STATE_ABOVE":
			return layerFloating
		case "_NET_WM_STATE_BELOW":
			return layerBelow
		}
	}
	return layerNormal
}

// opacity converts a _NET_WM_WINDOW_OPACITY value to 0.0–1.0.
func opacity(v uint) float64 {
	if v >= math.MaxUint32 {
		return 1
	}
	return float64(v) / math.MaxUint32
}

func memoryEstimate(width, height int) int64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int64(width) * int64(height) * bytesPerPixel
}

// frontToBack reverses a bottom-to-top stacking list in place.
func frontToBack[T any](stack []T) []T {
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}
