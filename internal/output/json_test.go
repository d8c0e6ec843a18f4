package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mj1618/winlist/internal/model"
)

func TestPrintJSON_Compact(t *testing.T) {
	out := captureStdout(t, func() error { return PrintJSON(sampleWindows()) })

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count([]byte(out), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}

	var decoded []model.Window
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Name != "Editor" {
		t.Errorf("unexpected windows: %+v", decoded)
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	out := captureStdout(t, func() error { return PrintPrettyJSON(sampleWindows()) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", out)
	}
	if !strings.Contains(out, `  {`) {
		t.Errorf("pretty output should be indented, got:\n%s", out)
	}
}

func TestPrint_JSONHonorsPretty(t *testing.T) {
	origFormat, origPretty := OutputFormat, PrettyOutput
	OutputFormat, PrettyOutput = FormatJSON, true
	defer func() { OutputFormat, PrettyOutput = origFormat, origPretty }()

	out := captureStdout(t, func() error { return Print(AppList{{Name: "Code", PID: 1, Windows: 1}}) })
	if !strings.Contains(out, "\n  {\n") || !strings.Contains(out, `"app": "Code"`) {
		t.Errorf("unexpected pretty JSON:\n%s", out)
	}
}

func TestPrintJSON_NoHTMLEscape(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintJSON(WindowList{{Name: "<b>&</b>"}})
	})
	if !strings.Contains(out, "<b>&</b>") {
		t.Errorf("HTML characters should not be escaped, got:\n%s", out)
	}
}
