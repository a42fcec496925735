package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jogll1/J-JMPL/internal/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("got %+v, want default %+v", cfg, config.Default())
	}
}

func TestLoadOverridesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jmplrc.yaml")
	content := "prompt: \"jmpl> \"\ntrace: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "jmpl> " {
		t.Errorf("got prompt %q, want %q", cfg.Prompt, "jmpl> ")
	}
	if !cfg.Trace {
		t.Error("expected trace to be true")
	}
}
