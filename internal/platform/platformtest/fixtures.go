package platformtest

import "fmt"

// Window describes a fixture window. X and Y are spliced into the document
// verbatim, so `"10"` yields a quoted string leaf and `10` an integer leaf.
type Window struct {
	Number    int
	OwnerName string
	OwnerPID  int
	Name      string
	X, Y      string
	Width     int
	Height    int
	Layer     int
}

// Description renders w the way the macOS window server describes a window
// dictionary.
func (w Window) Description() string {
	name := ""
	if w.Name != "" {
		name = fmt.Sprintf("    kCGWindowName = %q;\n", w.Name)
	}
	return fmt.Sprintf(`{
    kCGWindowAlpha = 1;
    kCGWindowBounds =     {
        Height = %d;
        Width = %d;
        X = %s;
        Y = %s;
    };
    kCGWindowIsOnscreen = 1;
    kCGWindowLayer = %d;
    kCGWindowMemoryUsage = 1104;
%s    kCGWindowNumber = %d;
    kCGWindowOwnerName = %q;
    kCGWindowOwnerPID = %d;
    kCGWindowSharingState = 1;
    kCGWindowStoreType = 1;
}`, w.Height, w.Width, w.X, w.Y, w.Layer, name, w.Number, w.OwnerName, w.OwnerPID)
}

// Editor is a window whose X coordinate arrives as a quoted string.
var Editor = Window{
	Number:    412,
	OwnerName: "Code",
	OwnerPID:  100,
	Name:      "Editor",
	X:         `"10"`,
	Y:         "20",
	Width:     800,
	Height:    600,
}

// Terminal sits on a display left of the main one.
var Terminal = Window{
	Number:    77,
	OwnerName: "Terminal",
	OwnerPID:  200,
	Name:      "zsh",
	X:         `"-1440"`,
	Y:         "0",
	Width:     1440,
	Height:    900,
}

// MenuBar is an untitled system window above the normal layer.
var MenuBar = Window{
	Number:    3,
	OwnerName: "Window Server",
	OwnerPID:  150,
	X:         "0",
	Y:         "0",
	Width:     1440,
	Height:    25,
	Layer:     24,
}

// Unparsable is a description the decoder rejects.
const Unparsable = `{ kCGWindowNumber = 9; kCGWindowBounds = { X = {}; }; }`
