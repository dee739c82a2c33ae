package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nested keys: PHEADER_COLORS__NODE -> colors.node.
const EnvPrefix = "PHEADER_"

// Config is the runtime configuration, corresponding to particle-header.yml.
type Config struct {
	Window         WindowConfig   `yaml:"window" koanf:"window"`
	Header         HeaderConfig   `yaml:"header" koanf:"header"`
	Colors         ColorConfig    `yaml:"colors" koanf:"colors"`
	ReducedMotion  bool           `yaml:"reduced_motion" koanf:"reduced_motion"`
	PauseUnfocused bool           `yaml:"pause_unfocused" koanf:"pause_unfocused"`
	Catalogue      string         `yaml:"catalogue" koanf:"catalogue"`
	Terminal       TerminalConfig `yaml:"terminal" koanf:"terminal"`
	Log            LogConfig      `yaml:"log" koanf:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
	Title  string `yaml:"title" koanf:"title"`
}

// HeaderConfig sizes the region the particle field lives in. Height is used
// by the window host; Rows and the cell size by the terminal host.
type HeaderConfig struct {
	Height int `yaml:"height" koanf:"height"`
	Rows   int `yaml:"rows" koanf:"rows"`
	CellW  int `yaml:"cell_w" koanf:"cell_w"`
	CellH  int `yaml:"cell_h" koanf:"cell_h"`
}

// ColorConfig holds the two color tokens. Empty values fall back to the
// built-in literals.
type ColorConfig struct {
	Node string `yaml:"node" koanf:"node"`
	Line string `yaml:"line" koanf:"line"`
}

type TerminalConfig struct {
	FPS int `yaml:"fps" koanf:"fps"`
}

type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 640,
			Title:  "Particle Header - Click a filter, O: open catalogue, Esc/Q: Quit",
		},
		Header: HeaderConfig{
			Height: 220,
			Rows:   12,
			CellW:  8,
			CellH:  16,
		},
		Colors: ColorConfig{
			Node: DefaultNodeColor,
			Line: DefaultLineColor,
		},
		Terminal: TerminalConfig{FPS: 30},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PHEADER_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

var validLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var validFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Header.Height <= 0 || c.Header.Height > c.Window.Height {
		return fmt.Errorf("header.height must be in (0, %d], got %d", c.Window.Height, c.Header.Height)
	}
	if c.Header.Rows <= 0 {
		return fmt.Errorf("header.rows must be positive")
	}
	if c.Header.CellW <= 0 || c.Header.CellH <= 0 {
		return fmt.Errorf("header cell size must be positive, got %dx%d", c.Header.CellW, c.Header.CellH)
	}
	if c.Terminal.FPS <= 0 || c.Terminal.FPS > MaxFPS {
		return fmt.Errorf("terminal.fps must be in [1, %d], got %d", MaxFPS, c.Terminal.FPS)
	}
	if _, ok := validLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	return nil
}

// LogLevel returns the slog level for log.level. Validate must have passed.
func (c *Config) LogLevel() slog.Level {
	return validLevels[strings.ToLower(c.Log.Level)]
}
