package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/korpuslab/docx2dict/internal/normalize"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Script != "detect" {
		t.Errorf("expected script %q, got %q", "detect", cfg.Script)
	}
	if cfg.WindowWidth != 40 {
		t.Errorf("expected window width 40, got %d", cfg.WindowWidth)
	}
	if cfg.Jobs != 0 {
		t.Errorf("expected jobs 0, got %d", cfg.Jobs)
	}
}

func TestParsedScript(t *testing.T) {
	tests := []struct {
		value string
		want  normalize.Script
	}{
		{"detect", normalize.ScriptDetect},
		{"Latn", normalize.ScriptLatin},
		{"Cyrl", normalize.ScriptCyrillic},
		{"klingon", normalize.ScriptDetect},
	}
	for _, tt := range tests {
		cfg := &Config{Script: tt.value}
		if got := cfg.ParsedScript(); got != tt.want {
			t.Errorf("ParsedScript(%q): expected %v, got %v", tt.value, tt.want, got)
		}
	}
}

func TestLoaderMissingFileReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.yaml"))
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Script != DefaultConfig().Script || cfg.WindowWidth != DefaultConfig().WindowWidth {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoaderSaveLoad(t *testing.T) {
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "nested", "config.yaml"))
	want := &Config{
		Script:        "Cyrl",
		WindowWidth:   20,
		Jobs:          4,
		Continuations: "§",
		Output:        OutputConfig{Path: "out.yaml", KeepFailures: true},
	}
	if err := loader.Save(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLoaderExpandsEnvVars(t *testing.T) {
	t.Setenv("DOCX2DICT_TEST_OUT", "/tmp/entries.yaml")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "script: Latn\noutput:\n  path: ${DOCX2DICT_TEST_OUT}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := NewLoaderWithPath(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Path != "/tmp/entries.yaml" {
		t.Errorf("expected expanded path, got %q", cfg.Output.Path)
	}
	if cfg.Script != "Latn" {
		t.Errorf("expected script %q, got %q", "Latn", cfg.Script)
	}
}

func TestLoaderInit(t *testing.T) {
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.yaml"))
	if loader.Exists() {
		t.Fatal("expected no config file yet")
	}
	if err := loader.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loader.Exists() {
		t.Error("expected the config file to exist")
	}
	if err := loader.Init(); err == nil {
		t.Error("expected an error initializing twice")
	}
}
