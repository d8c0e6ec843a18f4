// Package linux provides the X11 window source. Windows come from the EWMH
// client stacking list and are described as XML property lists using the
// same keys as the macOS window server, so they go through the same decoder.
package linux
