package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/korreman/sway-overfocus/internal/target"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
bindings:
  tab-next: [group-rw, float-rw]
  win-left: [split-ls, output-ls]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	targets, ok := cfg.Resolve("tab-next")
	if !ok {
		t.Fatal("binding tab-next not resolved")
	}
	if len(targets) != 2 {
		t.Fatalf("tab-next resolved to %d targets, want 2", len(targets))
	}
	if targets[0].Kind != target.KindGroup || targets[1].Kind != target.KindFloat {
		t.Errorf("tab-next order not preserved: %v", targets)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"bindings": {"next": ["workspace-rw"]}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := cfg.Resolve("next"); !ok {
		t.Error("binding next not resolved")
	}
}

func TestResolveUnknown(t *testing.T) {
	cfg := &Config{Bindings: map[string][]string{"a": {"split-rs"}}}
	if _, ok := cfg.Resolve("b"); ok {
		t.Error("unknown binding resolved")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad target token", "config.yaml", "bindings:\n  next: [warp-rs]\n"},
		{"empty binding", "config.yaml", "bindings:\n  next: []\n"},
		{"bad yaml", "config.yaml", ":\n  - ["},
		{"unsupported extension", "config.toml", "bindings = {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
