package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/light-blaster/parameter"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadMissingFile verifies a missing file yields defaults without error
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Arena.Width != parameter.ArenaWidth || !cfg.Audio.Enabled {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

// TestLoadPartialOverride verifies unset keys keep their defaults
func TestLoadPartialOverride(t *testing.T) {
	path := writeFile(t, `
[arena]
width = 900
seed = 7

[audio]
music = 0.25

[debug]
overlay = true

[keys]
j = "move_down"
esc = "quit"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Arena.Width != 900 || cfg.Arena.Height != parameter.ArenaHeight || cfg.Arena.Seed != 7 {
		t.Errorf("unexpected arena %+v", cfg.Arena)
	}
	if cfg.Audio.Music != 0.25 || cfg.Audio.Hit != parameter.AudioDefaultVolume {
		t.Errorf("unexpected audio %+v", cfg.Audio)
	}
	if !cfg.Debug.Overlay || cfg.Debug.Log {
		t.Errorf("unexpected debug %+v", cfg.Debug)
	}
	if cfg.Keys["j"] != "move_down" || cfg.Keys["esc"] != "quit" {
		t.Errorf("unexpected keys %v", cfg.Keys)
	}
}

// TestLoadMalformed verifies parse failures are ErrInvalid and fall back to defaults
func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "[arena\nwidth = ")
	cfg, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if cfg.Arena.Width != parameter.ArenaWidth {
		t.Errorf("expected default width, got %v", cfg.Arena.Width)
	}
}

// TestValidateClamps verifies out-of-range values are corrected and reported
func TestValidateClamps(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		check   func(c Config) bool
		wantErr bool
	}{
		{"zero width takes default", func(c *Config) { c.Arena.Width = 0 }, func(c Config) bool { return c.Arena.Width == parameter.ArenaWidth }, false},
		{"tiny height clamps up", func(c *Config) { c.Arena.Height = 10 }, func(c Config) bool { return c.Arena.Height == minArenaHeight }, true},
		{"huge width clamps down", func(c *Config) { c.Arena.Width = 1e6 }, func(c Config) bool { return c.Arena.Width == maxArenaSide }, true},
		{"loud volume clamps", func(c *Config) { c.Audio.Shoot = 3 }, func(c Config) bool { return c.Audio.Shoot == 1 }, true},
		{"negative volume clamps", func(c *Config) { c.Audio.UI = -1 }, func(c Config) bool { return c.Audio.UI == 0 }, true},
		{"empty dir defaults", func(c *Config) { c.Storage.Dir = "" }, func(c Config) bool { return c.Storage.Dir != "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("value not corrected: %+v", cfg)
			}
		})
	}
}

// TestWriteThenLoad verifies a written config reads back
func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFile)
	cfg := Default()
	cfg.Player.Name = "ada"
	cfg.Audio.Enabled = false
	if err := Write(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Player.Name != "ada" || got.Audio.Enabled {
		t.Errorf("unexpected round trip %+v", got)
	}
	if prefs := got.AudioPrefs(); prefs.Enabled || prefs.Music != cfg.Audio.Music {
		t.Errorf("unexpected prefs %+v", prefs)
	}
}
