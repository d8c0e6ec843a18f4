// Package windows provides the Win32 window source built on EnumWindows.
package windows
