package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSokobanConfigIsValid(t *testing.T) {
	if err := DefaultSokobanConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultSokobanYAML)
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSokobanConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSokobanConfig())
	}
}

func TestLoadSokobanCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("levels:\n  dir: ./packs/classic\n  start: 3\ngameplay:\n  auto_advance: false\ndisplay:\n  theme: ascii\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSokoban(path)
	if err != nil {
		t.Fatalf("LoadSokoban() failed: %v", err)
	}

	if cfg.Levels.Dir != "./packs/classic" {
		t.Errorf("Levels.Dir = %q, expected %q", cfg.Levels.Dir, "./packs/classic")
	}
	if cfg.Levels.Start != 3 {
		t.Errorf("Levels.Start = %d, expected 3", cfg.Levels.Start)
	}
	if cfg.Gameplay.AutoAdvance {
		t.Error("Gameplay.AutoAdvance = true, expected false")
	}
	if cfg.Display.Theme != ThemeASCII {
		t.Errorf("Display.Theme = %q, expected %q", cfg.Display.Theme, ThemeASCII)
	}
	// Unset fields keep their defaults
	if cfg.Gameplay.HistoryLimit != 1000 {
		t.Errorf("Gameplay.HistoryLimit = %d, expected 1000", cfg.Gameplay.HistoryLimit)
	}
	if !cfg.Display.ShowHelp {
		t.Error("Display.ShowHelp = false, expected true")
	}
}

func TestLoadSokobanErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSokoban(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSokoban(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("display:\n  theme: neon\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSokoban(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown theme error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SokobanConfig)
		valid  bool
	}{
		{"defaults", func(*SokobanConfig) {}, true},
		{"unbounded history", func(c *SokobanConfig) { c.Gameplay.HistoryLimit = 0 }, true},
		{"zero delay", func(c *SokobanConfig) { c.Gameplay.AdvanceDelaySeconds = 0 }, true},
		{"negative history", func(c *SokobanConfig) { c.Gameplay.HistoryLimit = -1 }, false},
		{"negative delay", func(c *SokobanConfig) { c.Gameplay.AdvanceDelaySeconds = -5 }, false},
		{"negative start", func(c *SokobanConfig) { c.Levels.Start = -1 }, false},
		{"empty theme", func(c *SokobanConfig) { c.Display.Theme = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSokobanConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}
