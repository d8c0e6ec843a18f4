package platform

import (
	"sync"

	"github.com/mj1618/winlist/internal/model"
)

// NewSourceFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewSourceFunc func() (Source, error)

// mu keeps a single default-source enumeration in flight. The native window
// server APIs are not assumed to be reentrant.
var mu sync.Mutex

// NewSource returns the Source for the current OS.
func NewSource() (Source, error) {
	if NewSourceFunc == nil {
		return nil, ErrUnsupported
	}
	return NewSourceFunc()
}

// List enumerates the on-screen windows using the default source.
func List(opts ...Option) (*Report, error) {
	mu.Lock()
	defer mu.Unlock()

	src, err := NewSource()
	if err != nil {
		return nil, err
	}
	return Enumerate(src, opts...)
}

// ListWindows returns the decoded on-screen windows, front to back.
// Windows that could not be read are skipped. An empty result is not an error.
func ListWindows(opts ...Option) ([]model.Window, error) {
	report, err := List(opts...)
	if err != nil {
		return nil, err
	}
	return report.Windows, nil
}

// ListDescriptions returns the canonical text of each on-screen window
// without decoding it.
func ListDescriptions(opts ...Option) ([]string, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	report, err := List(append(all, RawDescriptions())...)
	if err != nil {
		return nil, err
	}
	return report.Descriptions, nil
}
