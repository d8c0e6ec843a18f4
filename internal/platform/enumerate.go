package platform

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/winlist/internal/decode"
	"github.com/mj1618/winlist/internal/model"
)

// Skip records an element that was dropped from an enumeration.
type Skip struct {
	Position int   // index of the element in the native snapshot
	Err      error // why it was dropped
}

// Report is the outcome of one enumeration pass.
type Report struct {
	// Windows holds the decoded windows in snapshot order. Index is dense
	// from 0. Empty in raw mode.
	Windows []model.Window

	// Descriptions holds the raw canonical text of each described element
	// in snapshot order. Only filled in raw mode.
	Descriptions []string

	// Skipped lists the elements that were dropped.
	Skipped []Skip

	// Total is the number of elements in the native snapshot.
	Total int
}

// SkippedCount returns how many elements were dropped.
func (r *Report) SkippedCount() int {
	return len(r.Skipped)
}

// Option configures Enumerate.
type Option func(*options)

type options struct {
	logger *slog.Logger
	raw    bool
}

// WithLogger sets the logger skips are reported to. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// RawDescriptions collects each element's canonical text without decoding it.
func RawDescriptions() Option {
	return func(o *options) { o.raw = true }
}

// Enumerate takes one snapshot from src and turns it into a Report.
//
// A snapshot failure is returned as an error with a nil Report. Every
// element-level failure (missing description, decode error, panic) drops
// that element and is recorded in Report.Skipped. The snapshot is released
// exactly once before Enumerate returns.
func Enumerate(src Source, opts ...Option) (*Report, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	snap, err := src.Snapshot()
	if err != nil {
		return nil, err
	}
	defer snap.Release()

	report := &Report{Total: snap.Count()}
	if o.raw {
		report.Descriptions = make([]string, 0, report.Total)
	} else {
		report.Windows = make([]model.Window, 0, report.Total)
	}

	for i := 0; i < report.Total; i++ {
		text, w, err := readElement(snap, i, o.raw)
		if err != nil {
			report.Skipped = append(report.Skipped, Skip{Position: i, Err: err})
			o.logger.Debug("skipping window", "position", i, "err", err)
			continue
		}
		if o.raw {
			report.Descriptions = append(report.Descriptions, text)
			continue
		}
		w.Index = len(report.Windows)
		report.Windows = append(report.Windows, w)
	}

	o.logger.Debug("enumerated windows",
		"total", report.Total,
		"kept", report.Total-report.SkippedCount(),
		"skipped", report.SkippedCount())
	return report, nil
}

// readElement describes and, unless raw, decodes the element at position i.
// A panic from the native element or the decoder becomes an error.
func readElement(snap Snapshot, i int, raw bool) (text string, w model.Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrElementPanic, r)
		}
	}()

	text, ok := snap.At(i).Describe()
	if !ok || text == "" {
		return "", model.Window{}, ErrEmptyDescription
	}
	if raw {
		return text, model.Window{}, nil
	}
	w, err = decode.Decode(text)
	if err != nil {
		return "", model.Window{}, err
	}
	return text, w, nil
}
