// Package config loads the optional TOML settings file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/storage"
)

// DefaultFile is the config file name looked up when no path is given
const DefaultFile = "lightblaster.toml"

// ErrInvalid marks a config file that could not be parsed or held out-of-range values
var ErrInvalid = errors.New("invalid config")

// Arena bounds accepted by Validate
const (
	minArenaWidth  = 400.0
	minArenaHeight = 300.0
	maxArenaSide   = 4000.0
)

type Config struct {
	Arena   ArenaConfig   `toml:"arena"`
	Player  PlayerConfig  `toml:"player"`
	Storage StorageConfig `toml:"storage"`
	Audio   AudioConfig   `toml:"audio"`
	Debug   DebugConfig   `toml:"debug"`

	// Keys overrides key bindings: key name to action name, "none" unbinds
	Keys map[string]string `toml:"keys"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Seed   uint64  `toml:"seed"` // 0 selects a time-based seed
}

type PlayerConfig struct {
	Name string `toml:"name"`
}

type StorageConfig struct {
	Dir string `toml:"dir"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Music   float64 `toml:"music"`
	Shoot   float64 `toml:"shoot"`
	Hit     float64 `toml:"hit"`
	Pickup  float64 `toml:"pickup"`
	UI      float64 `toml:"ui"`
}

type DebugConfig struct {
	Log     bool `toml:"log"`
	Overlay bool `toml:"overlay"`
}

// Default returns the built-in settings
func Default() Config {
	prefs := storage.DefaultAudioPrefs()
	return Config{
		Arena:   ArenaConfig{Width: parameter.ArenaWidth, Height: parameter.ArenaHeight},
		Player:  PlayerConfig{Name: defaultPlayerName()},
		Storage: StorageConfig{Dir: defaultStorageDir()},
		Audio: AudioConfig{
			Enabled: prefs.Enabled,
			Music:   prefs.Music,
			Shoot:   prefs.Shoot,
			Hit:     prefs.Hit,
			Pickup:  prefs.Pickup,
			UI:      prefs.UI,
		},
	}
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lightblaster"
	}
	return filepath.Join(home, ".lightblaster")
}

func defaultPlayerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// Load reads path over the defaults
// A missing file is not an error; a malformed one returns defaults and an ErrInvalid-wrapped error
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("[config] warn: unknown key %s in %s", key, path)
	}
	return cfg, cfg.Validate()
}

// Validate clamps out-of-range values in place and reports what it corrected
func (c *Config) Validate() error {
	var errs []error
	clampSide := func(name string, v *float64, lo, fallback float64) {
		switch {
		case *v == 0:
			*v = fallback
		case *v < lo || *v > maxArenaSide:
			errs = append(errs, fmt.Errorf("arena.%s %.0f outside [%.0f, %.0f]", name, *v, lo, maxArenaSide))
			*v = min(maxArenaSide, max(lo, *v))
		}
	}
	clampSide("width", &c.Arena.Width, minArenaWidth, parameter.ArenaWidth)
	clampSide("height", &c.Arena.Height, minArenaHeight, parameter.ArenaHeight)

	vols := []struct {
		name string
		v    *float64
	}{
		{"music", &c.Audio.Music},
		{"shoot", &c.Audio.Shoot},
		{"hit", &c.Audio.Hit},
		{"pickup", &c.Audio.Pickup},
		{"ui", &c.Audio.UI},
	}
	for _, vol := range vols {
		if *vol.v < 0 || *vol.v > 1 {
			errs = append(errs, fmt.Errorf("audio.%s %.2f outside [0, 1]", vol.name, *vol.v))
			*vol.v = min(1, max(0, *vol.v))
		}
	}

	if c.Storage.Dir == "" {
		c.Storage.Dir = defaultStorageDir()
	}
	if c.Player.Name == "" {
		c.Player.Name = defaultPlayerName()
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// AudioPrefs converts the audio table to storage preferences
func (c *Config) AudioPrefs() storage.AudioPrefs {
	return storage.AudioPrefs{
		Enabled: c.Audio.Enabled,
		Music:   c.Audio.Music,
		Shoot:   c.Audio.Shoot,
		Hit:     c.Audio.Hit,
		Pickup:  c.Audio.Pickup,
		UI:      c.Audio.UI,
	}
}

// Write stores cfg as TOML at path, creating parent directories
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
