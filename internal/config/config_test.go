package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Colors.Node != DefaultNodeColor {
		t.Errorf("expected node color %q, got %q", DefaultNodeColor, cfg.Colors.Node)
	}
	if cfg.Colors.Line != DefaultLineColor {
		t.Errorf("expected line color %q, got %q", DefaultLineColor, cfg.Colors.Line)
	}
	if cfg.ReducedMotion {
		t.Error("reduced motion should be off by default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg.Header.Height != DefaultConfig().Header.Height {
		t.Errorf("expected default header height, got %d", cfg.Header.Height)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "particle-header.yml")
	data := []byte(`
window:
  width: 1600
header:
  height: 300
colors:
  node: "#ff8800"
reduced_motion: true
log:
  level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Width != 1600 {
		t.Errorf("window.width: got %d, want 1600", cfg.Window.Width)
	}
	if cfg.Window.Height != 640 {
		t.Errorf("window.height should keep default 640, got %d", cfg.Window.Height)
	}
	if cfg.Header.Height != 300 {
		t.Errorf("header.height: got %d, want 300", cfg.Header.Height)
	}
	if cfg.Colors.Node != "#ff8800" {
		t.Errorf("colors.node: got %q", cfg.Colors.Node)
	}
	if cfg.Colors.Line != DefaultLineColor {
		t.Errorf("colors.line should keep default, got %q", cfg.Colors.Line)
	}
	if !cfg.ReducedMotion {
		t.Error("reduced_motion: expected true")
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("log level: got %v, want debug", cfg.LogLevel())
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PHEADER_REDUCED_MOTION", "true")
	t.Setenv("PHEADER_HEADER__HEIGHT", "180")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.ReducedMotion {
		t.Error("expected reduced_motion from env")
	}
	if cfg.Header.Height != 180 {
		t.Errorf("header.height: got %d, want 180", cfg.Header.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, true},
		{"header taller than window", func(c *Config) { c.Header.Height = c.Window.Height + 1 }, true},
		{"zero rows", func(c *Config) { c.Header.Rows = 0 }, true},
		{"zero cell", func(c *Config) { c.Header.CellW = 0 }, true},
		{"zero fps", func(c *Config) { c.Terminal.FPS = 0 }, true},
		{"fps at cap", func(c *Config) { c.Terminal.FPS = MaxFPS }, false},
		{"fps above cap", func(c *Config) { c.Terminal.FPS = 2_000_000_000 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"upper case level", func(c *Config) { c.Log.Level = "WARN" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
