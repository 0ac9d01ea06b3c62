package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != WindowWidth || cfg.Height != WindowHeight {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, WindowWidth, WindowHeight)
	}
	if cfg.Palette.DarkFill != DarkFill {
		t.Errorf("dark fill = %q, want %q", cfg.Palette.DarkFill, DarkFill)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("width: 640\nheight: 480\nseed: 7\nhud: true\npalette:\n  dark_fill: \"#ff0000\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 || cfg.Seed != 7 || !cfg.HUD {
		t.Errorf("unexpected config: %+v", cfg)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Palette.LightFill != LightFill {
		t.Errorf("light fill = %q, want default %q", cfg.Palette.LightFill, LightFill)
	}

	p, err := cfg.Palette.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := p.Fill(true); got != (RGB{R: 255}) {
		t.Errorf("dark fill = %+v, want red", got)
	}
}

func TestLoadRejectsBadColour(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("palette:\n  light_fill: blue\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-hex colour")
	}
}

func TestDefaultPalette(t *testing.T) {
	p, err := Default().Palette.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	tests := []struct {
		name string
		got  RGB
		want RGB
	}{
		{"dark fill", p.Fill(true), RGB{0, 212, 255}},
		{"light fill", p.Fill(false), RGB{0, 100, 200}},
		{"dark background", p.Background(true), RGB{10, 14, 39}},
		{"light background", p.Background(false), RGB{240, 244, 248}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}
