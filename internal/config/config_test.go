package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "text" || cfg.List.Layer != NoLayer {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadFromPath_OverlaysDefaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, `
format: json
serve:
  port: 9090
list:
  layer: 0
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Serve.Port != 9090 || cfg.Serve.Transport != "stdio" {
		t.Errorf("Serve = %+v, want port 9090 with default transport", cfg.Serve)
	}
	if cfg.List.Layer != 0 {
		t.Errorf("List.Layer = %d, want 0", cfg.List.Layer)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestLoadFromPath_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown key", "colour: red\n", "colour"},
		{"unknown nested key", "serve:\n  host: localhost\n", "host"},
		{"bad format", "format: xml\n", "format"},
		{"bad transport", "serve:\n  transport: sse\n", "serve.transport"},
		{"bad port", "serve:\n  port: 70000\n", "serve.port"},
		{"bad layer", "list:\n  layer: -5\n", "list.layer"},
		{"bad yaml", "format: [\n", "config.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromPath(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := DefaultConfigPath()
	if err != nil {
		t.Skip("no home directory:", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".config", "winlist", "config.yaml")) {
		t.Errorf("unexpected path %q", path)
	}
}
