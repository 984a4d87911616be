package hetu_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hetu-script/hetu-go/pkg/hetu"
)

func TestLoadConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hetu.yaml")
	contents := "working_directory: ./scripts\ndebug: true\nmax_call_depth: 256\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := hetu.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WorkingDirectory != "./scripts" {
		t.Errorf("WorkingDirectory = %q", cfg.WorkingDirectory)
	}
	if !cfg.Debug {
		t.Error("expected Debug to be true")
	}
	if cfg.MaxCallDepth != 256 {
		t.Errorf("MaxCallDepth = %d", cfg.MaxCallDepth)
	}
}

func TestConfigOptionsOmitsZeroFields(t *testing.T) {
	cfg := hetu.Config{}
	if got := len(cfg.Options()); got != 0 {
		t.Errorf("expected 0 options for a zero-value Config, got %d", got)
	}

	cfg2 := hetu.Config{Debug: true}
	if got := len(cfg2.Options()); got != 1 {
		t.Errorf("expected 1 option for Debug-only Config, got %d", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := hetu.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
