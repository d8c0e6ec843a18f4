package platform

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewSource_UsesRegisteredFunc(t *testing.T) {
	orig := NewSourceFunc
	defer func() { NewSourceFunc = orig }()

	want := errors.New("registered")
	NewSourceFunc = func() (Source, error) { return nil, want }
	if _, err := NewSource(); err != want {
		t.Errorf("expected the registered constructor's error, got: %v", err)
	}
}

func TestNewSource_NoBackendImported(t *testing.T) {
	// The platform test binary imports no backend package.
	if NewSourceFunc != nil {
		t.Fatal("NewSourceFunc should be unset without a backend import")
	}
	_, err := NewSource()
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestListDescriptions_DoesNotMutateCallerOptions(t *testing.T) {
	orig := NewSourceFunc
	NewSourceFunc = func() (Source, error) { return nil, ErrUnavailable }
	defer func() { NewSourceFunc = orig }()

	marker := WithLogger(nil)
	opts := make([]Option, 1, 2)
	opts[0] = marker
	backing := opts[:2]
	sentinel := func(*options) {}
	backing[1] = sentinel

	_, _ = ListDescriptions(opts...)
	if fmt.Sprintf("%p", backing[1]) != fmt.Sprintf("%p", sentinel) {
		t.Error("ListDescriptions wrote into the caller's option slice")
	}
}

func TestNewSource_UnsupportedPlatform(t *testing.T) {
	orig := NewSourceFunc
	NewSourceFunc = nil
	defer func() { NewSourceFunc = orig }()

	_, err := NewSource()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestListWindows_PropagatesSourceError(t *testing.T) {
	orig := NewSourceFunc
	NewSourceFunc = func() (Source, error) { return nil, ErrUnavailable }
	defer func() { NewSourceFunc = orig }()

	windows, err := ListWindows()
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
	if windows != nil {
		t.Errorf("expected nil windows, got %v", windows)
	}

	descriptions, err := ListDescriptions()
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
	if descriptions != nil {
		t.Errorf("expected nil descriptions, got %v", descriptions)
	}
}
