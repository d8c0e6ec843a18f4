// Package darwin provides the macOS window source using CoreGraphics and
// CoreFoundation. All functionality requires CGo; without it the package is
// empty and no source is registered.
package darwin
