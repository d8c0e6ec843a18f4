//go:build darwin && cgo

package darwin

import "github.com/mj1618/winlist/internal/platform"

func init() {
	platform.NewSourceFunc = func() (platform.Source, error) {
		return NewSource(), nil
	}
}
