package model

import "fmt"

// Bounds is a window rectangle in global screen coordinates. X and Y may be
// negative on multi-display setups.
type Bounds struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Intersects reports whether b and o overlap.
func (b Bounds) Intersects(o Bounds) bool {
	return b.X < o.X+o.Width && b.X+b.Width > o.X &&
		b.Y < o.Y+o.Height && b.Y+b.Height > o.Y
}

// Window describes one on-screen window as reported by the window server.
//
// SharingState and StoreType are passed through as the native codes; no
// meaning is attached to them here.
type Window struct {
	Index        int     `yaml:"index"        json:"index"`
	Number       int     `yaml:"number"       json:"number"`
	OwnerName    string  `yaml:"ownerName"    json:"ownerName"`
	OwnerPID     int     `yaml:"ownerPid"     json:"ownerPid"`
	Name         string  `yaml:"name"         json:"name"`
	Bounds       Bounds  `yaml:"bounds"       json:"bounds"`
	Layer        int     `yaml:"layer"        json:"layer"`
	Alpha        float64 `yaml:"alpha"        json:"alpha"`
	IsOnscreen   int     `yaml:"isOnscreen"   json:"isOnscreen"`
	MemoryUsage  int64   `yaml:"memoryUsage"  json:"memoryUsage"`
	SharingState int     `yaml:"sharingState" json:"sharingState"`
	StoreType    int     `yaml:"storeType"    json:"storeType"`
}

// String renders a one-line summary used by the text output format.
func (w Window) String() string {
	title := w.Name
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%s %q pid=%d id=%d bounds=%d,%d %dx%d layer=%d",
		w.OwnerName, title, w.OwnerPID, w.Number,
		w.Bounds.X, w.Bounds.Y, w.Bounds.Width, w.Bounds.Height, w.Layer)
}
