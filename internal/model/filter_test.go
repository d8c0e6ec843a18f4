package model

import "testing"

func sampleWindows() []Window {
	return []Window{
		{Index: 0, Number: 10, OwnerName: "Code", OwnerPID: 100, Layer: 0, Bounds: Bounds{X: 10, Y: 10, Width: 50, Height: 30}},
		{Index: 1, Number: 11, OwnerName: "Dock", OwnerPID: 200, Layer: 20, Bounds: Bounds{X: 200, Y: 200, Width: 50, Height: 30}},
		{Index: 2, Number: 12, OwnerName: "code", OwnerPID: 100, Layer: 0, Bounds: Bounds{X: 90, Y: 90, Width: 50, Height: 30}},
		{Index: 3, Number: 13, OwnerName: "Safari", OwnerPID: 300, Layer: 0, Bounds: Bounds{X: -1440, Y: 0, Width: 1440, Height: 900}},
	}
}

func intPtr(v int) *int { return &v }

func TestFilterWindows_NoFilters(t *testing.T) {
	result := FilterWindows(sampleWindows(), WindowFilter{})
	if len(result) != 4 {
		t.Errorf("expected 4 windows, got %d", len(result))
	}
}

func TestFilterWindows_AppIsCaseInsensitive(t *testing.T) {
	result := FilterWindows(sampleWindows(), WindowFilter{App: "CODE"})
	if len(result) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(result))
	}
	if result[0].Index != 0 || result[1].Index != 2 {
		t.Errorf("filtering should keep original indices, got %d and %d", result[0].Index, result[1].Index)
	}
}

func TestFilterWindows_PID(t *testing.T) {
	result := FilterWindows(sampleWindows(), WindowFilter{PID: 300})
	if len(result) != 1 || result[0].OwnerName != "Safari" {
		t.Errorf("expected only Safari, got %+v", result)
	}
}

func TestFilterWindows_LayerZeroIsExplicit(t *testing.T) {
	result := FilterWindows(sampleWindows(), WindowFilter{Layer: intPtr(0)})
	if len(result) != 3 {
		t.Errorf("expected 3 layer-0 windows, got %d", len(result))
	}
	result = FilterWindows(sampleWindows(), WindowFilter{Layer: intPtr(20)})
	if len(result) != 1 || result[0].OwnerName != "Dock" {
		t.Errorf("expected only Dock on layer 20, got %+v", result)
	}
}

func TestFilterWindows_BBox(t *testing.T) {
	bbox := Bounds{X: 0, Y: 0, Width: 100, Height: 100}
	result := FilterWindows(sampleWindows(), WindowFilter{BBox: &bbox})
	if len(result) != 2 {
		t.Fatalf("expected 2 windows (inside + overlapping), got %d", len(result))
	}
	if result[0].Number != 10 || result[1].Number != 12 {
		t.Errorf("unexpected windows: %d, %d", result[0].Number, result[1].Number)
	}
}

func TestFilterWindows_BBoxNegativeCoordinates(t *testing.T) {
	bbox := Bounds{X: -100, Y: 100, Width: 10, Height: 10}
	result := FilterWindows(sampleWindows(), WindowFilter{BBox: &bbox})
	if len(result) != 1 || result[0].OwnerName != "Safari" {
		t.Errorf("expected Safari on the left display, got %+v", result)
	}
}

func TestFilterWindows_Combined(t *testing.T) {
	result := FilterWindows(sampleWindows(), WindowFilter{App: "code", PID: 100, Layer: intPtr(0)})
	if len(result) != 2 {
		t.Errorf("expected 2 windows, got %d", len(result))
	}
	result = FilterWindows(sampleWindows(), WindowFilter{App: "code", PID: 999})
	if len(result) != 0 {
		t.Errorf("expected no windows, got %d", len(result))
	}
}

func TestBounds_Intersects(t *testing.T) {
	a := Bounds{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		b    Bounds
		want bool
	}{
		{Bounds{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{Bounds{X: 10, Y: 0, Width: 10, Height: 10}, false}, // touching edge
		{Bounds{X: -5, Y: -5, Width: 6, Height: 6}, true},
		{Bounds{X: 20, Y: 20, Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%+v.Intersects(%+v) = %v, want %v", a, tt.b, got, tt.want)
		}
	}
}

func TestApps_AggregatesInStackingOrder(t *testing.T) {
	windows := []Window{
		{OwnerName: "Safari", OwnerPID: 300},
		{OwnerName: "Code", OwnerPID: 100},
		{OwnerName: "Safari", OwnerPID: 300},
	}
	apps := Apps(windows)
	if len(apps) != 2 {
		t.Fatalf("expected 2 apps, got %d", len(apps))
	}
	if apps[0].Name != "Safari" || apps[0].Windows != 2 {
		t.Errorf("first app: got %+v", apps[0])
	}
	if apps[1].Name != "Code" || apps[1].Windows != 1 {
		t.Errorf("second app: got %+v", apps[1])
	}
}

func TestApps_EmptyIsNotNil(t *testing.T) {
	if apps := Apps(nil); apps == nil {
		t.Error("Apps(nil) should return an empty, non-nil slice")
	}
}

func TestWindowString(t *testing.T) {
	w := Window{OwnerName: "Code", OwnerPID: 100, Number: 412, Bounds: Bounds{X: 10, Y: 20, Width: 800, Height: 600}}
	want := `Code "(untitled)" pid=100 id=412 bounds=10,20 800x600 layer=0`
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
