package platform

import (
	"testing"

	"github.com/mj1618/winlist/internal/model"
)

func TestParseBBox_Valid(t *testing.T) {
	b, err := ParseBBox("10,20,300,400")
	if err != nil {
		t.Fatal(err)
	}
	if b.X != 10 || b.Y != 20 || b.Width != 300 || b.Height != 400 {
		t.Errorf("got %+v, want {10 20 300 400}", b)
	}
}

func TestParseBBox_WithSpaces(t *testing.T) {
	b, err := ParseBBox("10, 20, 300, 400")
	if err != nil {
		t.Fatal(err)
	}
	if b.X != 10 || b.Y != 20 || b.Width != 300 || b.Height != 400 {
		t.Errorf("got %+v, want {10 20 300 400}", b)
	}
}

func TestParseBBox_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10,20,300",
		"10,20,300,400,500",
		"a,b,c,d",
		"10,20,abc,400",
		"10,20,-1,400",
	}
	for _, s := range tests {
		_, err := ParseBBox(s)
		if err == nil {
			t.Errorf("ParseBBox(%q) should fail", s)
		}
	}
}

func TestListOptions_Filter(t *testing.T) {
	layer := 0
	bbox := &model.Bounds{Width: 10, Height: 10}
	f := ListOptions{App: "Code", PID: 7, Layer: &layer, BBox: bbox}.Filter()
	if f.App != "Code" || f.PID != 7 || f.Layer != &layer || f.BBox != bbox {
		t.Errorf("unexpected filter: %+v", f)
	}
	if !(ListOptions{Apps: true, Raw: true}).Filter().IsZero() {
		t.Error("display-only options should not produce a filter")
	}
}
