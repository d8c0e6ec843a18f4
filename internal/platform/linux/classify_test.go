package linux

import "testing"

func TestExcluded(t *testing.T) {
	tests := []struct {
		name   string
		types  []string
		states []string
		want   bool
	}{
		{"normal", []string{"_NET_WM_WINDOW_TYPE_NORMAL"}, nil, false},
		{"untyped", nil, nil, false},
		{"desktop", []string{"_NET_WM_WINDOW_TYPE_DESKTOP"}, nil, true},
		{"hidden", nil, []string{"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_HIDDEN"}, true},
		{"dock is listed", []string{"_NET_WM_WINDOW_TYPE_DOCK"}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := excluded(tt.types, tt.states); got != tt.want {
				t.Errorf("excluded(%v, %v) = %v, want %v", tt.types, tt.states, got, tt.want)
			}
		})
	}
}

func TestOnCurrentDesktop(t *testing.T) {
	if !onCurrentDesktop(2, 2) {
		t.Error("window on the current desktop should be visible")
	}
	if onCurrentDesktop(1, 2) {
		t.Error("window on another desktop should not be visible")
	}
	if !onCurrentDesktop(sticky, 2) {
		t.Error("sticky window should be visible")
	}
}

func TestLayerFor(t *testing.T) {
	tests := []struct {
		types  []string
		states []string
		want   int
	}{
		{nil, nil, layerNormal},
		{[]string{"_NET_WM_WINDOW_TYPE_DOCK"}, nil, layerDock},
		{[]string{"_NET_WM_WINDOW_TYPE_NOTIFICATION"}, nil, layerNotification},
		{nil, []string{"_NET_WM_STATE_ABOVE"}, layerFloating},
		{nil, []string{"_NET_WM_STATE_BELOW"}, layerBelow},
		{[]string{"_NET_WM_WINDOW_TYPE_DOCK"}, []string{"_NET_WM_STATE_BELOW"}, layerDock},
	}
	for _, tt := range tests {
		if got := layerFor(tt.types, tt.states); got != tt.want {
			t.Errorf("layerFor(%v, %v) = %d, want %d", tt.types, tt.states, got, tt.want)
		}
	}
}

func TestOpacity(t *testing.T) {
	if got := opacity(0xFFFFFFFF); got != 1 {
		t.Errorf("opacity(max) = %v, want 1", got)
	}
	if got := opacity(0); got != 0 {
		t.Errorf("opacity(0) = %v, want 0", got)
	}
	if got := opacity(0x7FFFFFFF); got < 0.49 || got > 0.51 {
		t.Errorf("opacity(half) = %v, want ~0.5", got)
	}
}

func TestMemoryEstimate(t *testing.T) {
	if got := memoryEstimate(800, 600); got != 800*600*4 {
		t.Errorf("memoryEstimate(800, 600) = %d", got)
	}
	if got := memoryEstimate(-1, 600); got != 0 {
		t.Errorf("memoryEstimate with negative width = %d, want 0", got)
	}
}

func TestFrontToBack(t *testing.T) {
	got := frontToBack([]int{1, 2, 3, 4})
	want := []int{4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frontToBack = %v, want %v", got, want)
		}
	}
	if len(frontToBack([]int{})) != 0 {
		t.Error("empty stack should stay empty")
	}
}
