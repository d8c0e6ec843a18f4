package model

import "strings"

// WindowFilter selects windows after enumeration. Zero values match
// everything; Layer is only applied when non-nil so that layer 0 can be
// requested explicitly.
type WindowFilter struct {
	App   string  // case-insensitive owner name
	PID   int     // owner process id (0 = unset)
	Layer *int    // window-server layer
	BBox  *Bounds // keep windows intersecting this rectangle
}

// IsZero reports whether f matches every window.
func (f WindowFilter) IsZero() bool {
	return f.App == "" && f.PID == 0 && f.Layer == nil && f.BBox == nil
}

// Match reports whether w passes the filter.
func (f WindowFilter) Match(w Window) bool {
	if f.App != "" && !strings.EqualFold(w.OwnerName, f.App) {
		return false
	}
	if f.PID != 0 && w.OwnerPID != f.PID {
		return false
	}
	if f.Layer != nil && w.Layer != *f.Layer {
		return false
	}
	if f.BBox != nil && !w.Bounds.Intersects(*f.BBox) {
		return false
	}
	return true
}

// FilterWindows returns the windows matching f, preserving order. Index
// values are left as assigned by the enumeration, so they can be matched
// back to the unfiltered result.
func FilterWindows(windows []Window, f WindowFilter) []Window {
	if f.IsZero() {
		return windows
	}
	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		if f.Match(w) {
			result = append(result, w)
		}
	}
	return result
}

// App is one owning application, aggregated from its windows.
type App struct {
	Name    string `yaml:"app"     json:"app"`
	PID     int    `yaml:"pid"     json:"pid"`
	Windows int    `yaml:"windows" json:"windows"`
}

// Apps aggregates windows to unique (owner name, pid) pairs in first-seen
// order, which is front-to-back stacking order.
func Apps(windows []Window) []App {
	type key struct {
		name string
		pid  int
	}
	pos := make(map[key]int)
	apps := []App{}
	for _, w := range windows {
		k := key{w.OwnerName, w.OwnerPID}
		if i, ok := pos[k]; ok {
			apps[i].Windows++
			continue
		}
		pos[k] = len(apps)
		apps = append(apps, App{Name: w.OwnerName, PID: w.OwnerPID, Windows: 1})
	}
	return apps
}
