package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ruminaider/tabpick/internal/render"
	"go.yaml.in/yaml/v3"
)

// Output modes. Exactly one emission form is used per configuration.
const (
	OutputLines = "lines"
	OutputTable = "table"
)

// Flavors are the palette presets a config may name.
var Flavors = []string{"latte", "frappe", "macchiato", "mocha"}

// Config represents ~/.config/tabpick/config.yaml.
type Config struct {
	Output  string        `yaml:"output,omitempty"`
	Flavor  string        `yaml:"flavor,omitempty"`
	Palette Palette       `yaml:"palette,omitempty"`
	Refresh time.Duration `yaml:"refresh,omitempty"`
	Socket  string        `yaml:"socket,omitempty"`
}

// Palette holds per-role color overrides. Each value is "#rrggbb" or an
// 8-bit index; empty keeps the flavor's color.
type Palette struct {
	Green      string `yaml:"green,omitempty"`
	Red        string `yaml:"red,omitempty"`
	Cyan       string `yaml:"cyan,omitempty"`
	Magenta    string `yaml:"magenta,omitempty"`
	Orange     string `yaml:"orange,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Output: OutputLines,
		Flavor: "mocha",
	}
}

// Parse parses config.yaml bytes into a Config, filling in defaults and
// rejecting unknown modes, flavors and colors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = OutputLines
	}
	if cfg.Flavor == "" {
		cfg.Flavor = "mocha"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	switch c.Output {
	case OutputLines, OutputTable:
	default:
		return fmt.Errorf("invalid output %q: want %q or %q", c.Output, OutputLines, OutputTable)
	}
	if !isFlavor(c.Flavor) {
		return fmt.Errorf("invalid flavor %q: want one of %v", c.Flavor, Flavors)
	}
	if c.Refresh < 0 {
		return fmt.Errorf("invalid refresh %s: must not be negative", c.Refresh)
	}
	_, err := c.Palette.Apply(render.DefaultPalette())
	return err
}

// Apply overlays the overrides on base.
func (p Palette) Apply(base render.Palette) (render.Palette, error) {
	out := base
	for _, o := range []struct {
		role string
		val  string
		dst  *render.Color
	}{
		{"green", p.Green, &out.Green},
		{"red", p.Red, &out.Red},
		{"cyan", p.Cyan, &out.Cyan},
		{"magenta", p.Magenta, &out.Magenta},
		{"orange", p.Orange, &out.Orange},
		{"background", p.Background, &out.Background},
	} {
		if o.val == "" {
			continue
		}
		c, err := render.ParseColor(o.val)
		if err != nil {
			return base, fmt.Errorf("palette %s: %w", o.role, err)
		}
		*o.dst = c
	}
	return out, nil
}

// Load reads the config at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func isFlavor(name string) bool {
	for _, f := range Flavors {
		if f == name {
			return true
		}
	}
	return false
}
