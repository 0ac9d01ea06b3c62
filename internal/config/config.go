package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	TPS          = 60

	// Field population
	AreaPerParticle = 30000
	WrapMargin      = 20.0

	// Particle attribute ranges, [min, min+span)
	MinSize        = 3.0
	SizeSpan       = 4.0
	MinOpacity     = 0.02
	OpacitySpan    = 0.04
	MaxSpeed       = 0.15
	MaxAngularStep = 0.005

	// Parallax
	ParallaxStrength = 20.0

	// Theme colours
	DarkFill        = "#00d4ff"
	LightFill       = "#0064c8"
	DarkBackground  = "#0a0e27"
	LightBackground = "#f0f4f8"

	// Chime
	ChimeSampleRate = 44100
	ChimeDarkHz     = 440.0
	ChimeLightHz    = 660.0
)

// Config is the on-disk configuration, ~/.hexfield/config.yaml.
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Seed      int64   `yaml:"seed"`
	HUD       bool    `yaml:"hud"`
	Sound     bool    `yaml:"sound"`
	LogLevel  string  `yaml:"log_level"`
	ThemePath string  `yaml:"theme_path"`
	Palette   Palette `yaml:"palette"`
}

// Palette holds hex colours for both themes.
type Palette struct {
	DarkFill        string `yaml:"dark_fill"`
	LightFill       string `yaml:"light_fill"`
	DarkBackground  string `yaml:"dark_background"`
	LightBackground string `yaml:"light_background"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:     WindowWidth,
		Height:    WindowHeight,
		LogLevel:  "info",
		ThemePath: filepath.Join(Dir(), "theme.yaml"),
		Palette: Palette{
			DarkFill:        DarkFill,
			LightFill:       LightFill,
			DarkBackground:  DarkBackground,
			LightBackground: LightBackground,
		},
	}
}

// Dir returns ~/.hexfield, or ./.hexfield when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".hexfield")
	}
	return filepath.Join(home, ".hexfield")
}

// DefaultPath returns the default config file path: ~/.hexfield/config.yaml
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the configuration from the given YAML file path.
// If the file does not exist, it returns the defaults with no error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.Palette.Resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RGB is an 8-bit colour without alpha.
type RGB struct {
	R, G, B uint8
}

// ResolvedPalette is a Palette with its hex strings parsed.
type ResolvedPalette struct {
	DarkFill, LightFill             RGB
	DarkBackground, LightBackground RGB
}

// Fill returns the particle colour for the theme.
func (p ResolvedPalette) Fill(dark bool) RGB {
	if dark {
		return p.DarkFill
	}
	return p.LightFill
}

// Background returns the clear colour for the theme.
func (p ResolvedPalette) Background(dark bool) RGB {
	if dark {
		return p.DarkBackground
	}
	return p.LightBackground
}

// Resolve parses every colour of the palette.
func (p Palette) Resolve() (ResolvedPalette, error) {
	var out ResolvedPalette
	for _, f := range []struct {
		name string
		hex  string
		dst  *RGB
	}{
		{"dark_fill", p.DarkFill, &out.DarkFill},
		{"light_fill", p.LightFill, &out.LightFill},
		{"dark_background", p.DarkBackground, &out.DarkBackground},
		{"light_background", p.LightBackground, &out.LightBackground},
	} {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return ResolvedPalette{}, fmt.Errorf("palette %s %q: %w", f.name, f.hex, err)
		}
		r, g, b := c.RGB255()
		*f.dst = RGB{R: r, G: g, B: b}
	}
	return out, nil
}
