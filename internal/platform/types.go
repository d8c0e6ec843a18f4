package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/winlist/internal/model"
)

// ParseBBox parses a "x,y,w,h" string into a Bounds.
func ParseBBox(s string) (*model.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return nil, fmt.Errorf("invalid bbox %q: width and height must not be negative", s)
	}
	return &model.Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// ListOptions controls window/app listing.
type ListOptions struct {
	Raw   bool          // Print canonical descriptions instead of decoded windows
	Apps  bool          // List applications instead of windows
	PID   int           // Filter by PID
	App   string        // Filter by app name
	Layer *int          // Filter by window-server layer (nil = all)
	BBox  *model.Bounds // Only windows intersecting this rectangle (nil = no filter)
}

// Filter returns the window filter described by the options.
func (o ListOptions) Filter() model.WindowFilter {
	return model.WindowFilter{App: o.App, PID: o.PID, Layer: o.Layer, BBox: o.BBox}
}
