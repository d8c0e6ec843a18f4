package cmd

import (
	"testing"

	"github.com/mj1618/winlist/internal/config"
)

func TestServeCommand_Flags(t *testing.T) {
	flags := serveCmd.Flags()
	if f := flags.Lookup("transport"); f == nil || f.Value.Type() != "string" || f.DefValue != "stdio" {
		t.Errorf("unexpected transport flag: %+v", f)
	}
	if f := flags.Lookup("port"); f == nil || f.Value.Type() != "int" || f.DefValue != "8080" {
		t.Errorf("unexpected port flag: %+v", f)
	}
}

func TestServeConfig_FlagsOverrideConfig(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	orig := cfg
	cfg = config.Default()
	cfg.Serve.Port = 9000
	cfg.Serve.Transport = "streamable-http"
	defer func() { cfg = orig }()

	sc := serveConfig(serveCmd)
	if sc.Port != 9000 || sc.Transport != "streamable-http" {
		t.Errorf("expected config values, got %+v", sc)
	}

	serveCmd.Flags().Set("port", "9191")
	sc = serveConfig(serveCmd)
	if sc.Port != 9191 || sc.Transport != "streamable-http" {
		t.Errorf("expected flag port with config transport, got %+v", sc)
	}
}
