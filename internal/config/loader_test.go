package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "keys:\n  up: k\n  down: j\ntheme:\n  fish: cyan\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Keys.Up != "k" || cfg.Keys.Down != "j" {
		t.Errorf("keys = %+v, expected up=k down=j", cfg.Keys)
	}
	if cfg.Theme.Fish != "cyan" {
		t.Errorf("theme.fish = %q, expected cyan", cfg.Theme.Fish)
	}
	// Unset values fall back to defaults
	if cfg.Keys.Quit != "q" {
		t.Errorf("keys.quit = %q, expected default q", cfg.Keys.Quit)
	}
	if cfg.Theme.Pipe != "green" {
		t.Errorf("theme.pipe = %q, expected default green", cfg.Theme.Pipe)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"multi-char key", "keys:\n  up: up\n", "single printable character"},
		{"empty key", "keys:\n  quit: \"\"\n", "single printable character"},
		{"duplicate key", "keys:\n  down: w\n", "bound to both"},
		{"unknown color", "theme:\n  pipe: chartreuse\n", "theme.pipe"},
		{"bad yaml", "keys: [", "config: parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, expected it to contain %q", err.Error(), tc.want)
			}
		})
	}
}
