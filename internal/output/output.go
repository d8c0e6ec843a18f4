package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mj1618/winlist/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatText

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat converts a flag or config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use text, yaml, or json)", s)
	}
}

// Texter is implemented by results that have a human-readable rendering.
type Texter interface {
	Text() string
}

// WindowList is the result of `list`.
type WindowList []model.Window

// Text renders the list as a 1-indexed numbered summary.
func (l WindowList) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d windows:\n", len(l))
	for i, w := range l {
		fmt.Fprintf(&b, "  %d: %s\n", i+1, w)
	}
	return b.String()
}

// DescriptionList is the result of `list --raw`: canonical native text.
type DescriptionList []string

// Text renders each description under its 1-indexed position.
func (l DescriptionList) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d windows:\n", len(l))
	for i, d := range l {
		fmt.Fprintf(&b, "  %d: %s\n", i+1, d)
	}
	return b.String()
}

// AppList is the result of `list --apps`.
type AppList []model.App

// Text renders one app per line.
func (l AppList) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d apps:\n", len(l))
	for i, a := range l {
		fmt.Fprintf(&b, "  %d: %s pid=%d windows=%d\n", i+1, a.Name, a.PID, a.Windows)
	}
	return b.String()
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	case FormatText:
		return PrintText(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintText writes the text rendering of v to stdout.
func PrintText(v interface{}) error {
	t, ok := v.(Texter)
	if !ok {
		return fmt.Errorf("text output not supported for %T", v)
	}
	_, err := fmt.Fprint(os.Stdout, t.Text())
	return err
}
