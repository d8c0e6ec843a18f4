//go:build darwin && cgo

package darwin

import (
	"errors"
	"testing"

	"github.com/mj1618/winlist/internal/platform"
)

func TestSource_SnapshotReleaseIsIdempotent(t *testing.T) {
	snap, err := NewSource().Snapshot()
	if errors.Is(err, platform.ErrUnavailable) {
		t.Skip("window server unavailable: ", err)
	}
	if err != nil {
		t.Fatal(err)
	}
	if snap.Count() < 0 {
		t.Errorf("negative count %d", snap.Count())
	}
	snap.Release()
	snap.Release()
}

func TestSource_EnumerateDecodesLiveWindows(t *testing.T) {
	report, err := platform.Enumerate(NewSource())
	if errors.Is(err, platform.ErrUnavailable) {
		t.Skip("window server unavailable: ", err)
	}
	if err != nil {
		t.Fatal(err)
	}
	if got := len(report.Windows) + report.SkippedCount(); got != report.Total {
		t.Errorf("windows + skipped = %d, want total %d", got, report.Total)
	}
	for i, w := range report.Windows {
		if w.Index != i {
			t.Errorf("window %d has Index %d", i, w.Index)
		}
		if w.OwnerName == "" {
			t.Errorf("window %d has no owner name", i)
		}
	}
}

func TestSnapshot_AtOutOfRangePanics(t *testing.T) {
	snap, err := NewSource().Snapshot()
	if err != nil {
		t.Skip("window server unavailable: ", err)
	}
	defer snap.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	snap.At(snap.Count())
}
