package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned on platforms without a compiled backend.
var ErrUnsupported = fmt.Errorf("winlist is not supported on %s/%s; supported: darwin (cgo), linux (X11), windows", runtime.GOOS, runtime.GOARCH)

// ErrUnavailable means the window server refused to produce a snapshot,
// usually for lack of permission. It is distinct from an empty result.
var ErrUnavailable = errors.New("window list unavailable")

// ErrEmptyDescription marks an element the native layer could not describe.
var ErrEmptyDescription = errors.New("empty window description")

// ErrElementPanic marks an element whose processing panicked.
var ErrElementPanic = errors.New("panic while reading window")
