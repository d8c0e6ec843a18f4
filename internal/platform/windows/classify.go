package windows

import (
	"path/filepath"
	"strings"
)

const (
	wsExTopmost = 0x00000008
	wsExLayered = 0x00080000
	wsExToolWin = 0x00000080

	lwaAlpha = 0x00000002
)

const (
	layerNormal   = 0
	layerFloating = 3

	sharingReadOnly = 1
	storeBuffered   = 2
	bytesPerPixel   = 4
)

// layerFor maps extended window styles onto macOS-style window levels.
func layerFor(exStyle uint32) int {
	if exStyle&wsExTopmost != 0 {
		return layerFloating
	}
	return layerNormal
}

// alphaFor returns the window opacity. Only layered windows with LWA_ALPHA
// set carry one.
func alphaFor(exStyle uint32, alpha byte, flags uint32) float64 {
	if exStyle&wsExLayered == 0 || flags&lwaAlpha == 0 {
		return 1
	}
	return float64(alpha) / 255
}

// listed reports whether a visible top-level window belongs in the snapshot.
// Tool windows without a title are helper surfaces, not application windows.
func listed(exStyle uint32, title string, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return exStyle&wsExToolWin == 0 || title != ""
}

// windowInfo is what the snapshot filter reads from one window. ok is false
// when the window is gone.
type windowInfo struct {
	exStyle       uint32
	title         string
	width, height int
	ok            bool
}

// listedWindows keeps the handles whose windows are still present and listed.
func listedWindows[H any](hwnds []H, info func(H) windowInfo) []H {
	kept := make([]H, 0, len(hwnds))
	for _, h := range hwnds {
		if wi := info(h); wi.ok && listed(wi.exStyle, wi.title, wi.width, wi.height) {
			kept = append(kept, h)
		}
	}
	return kept
}

// appName turns an executable name into a display name.
func appName(exe string) string {
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func memoryEstimate(width, height int) int64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int64(width) * int64(height) * bytesPerPixel
}
