package app

import (
	"flag"
	"io"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	args := []string{"-frontend", "tui", "-seed", "9", "-param", "max_age=5", "-param", " rows = 10 ", "-show-params"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Frontend != "tui" || cfg.Seed != 9 || !cfg.ShowParams {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Params["max_age"] != "5" || cfg.Params["rows"] != "10" {
		t.Fatalf("params = %v", cfg.Params)
	}
}

func TestConfigRejectsBareParam(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-param", "max_age"}); err == nil {
		t.Fatal("expected error for parameter without value")
	}
}
