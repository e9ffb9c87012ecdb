package config

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("embedded defaults should load: %v", err)
	}
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("expected positive screen size, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Critter.Movement != MovementStraight {
		t.Errorf("movement = %q, want %q", cfg.Critter.Movement, MovementStraight)
	}
	if cfg.Derived.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v, want info", cfg.Derived.LogLevel)
	}
	w, h := cfg.Arena()
	if w != float64(cfg.Screen.Width) || h != float64(cfg.Screen.Height) {
		t.Errorf("Arena() = %vx%v, want screen size", w, h)
	}
}

func TestParseMissingKey(t *testing.T) {
	doc := strings.Replace(string(defaultsYAML), "  cooldown: 300\n", "", 1)

	_, err := Parse([]byte(doc))
	if !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "mating.cooldown") {
		t.Errorf("error should name the missing key: %v", err)
	}
}

func TestParseOptionalKeyMayBeOmitted(t *testing.T) {
	doc := strings.Replace(string(defaultsYAML), "  file: \"\"\n", "", 1)

	if _, err := Parse([]byte(doc)); err != nil {
		t.Fatalf("logging.file is optional: %v", err)
	}
}

func TestParseUnknownKeySuggests(t *testing.T) {
	doc := strings.Replace(string(defaultsYAML), "  min_size: 10\n", "  min_sise: 10\n", 1)

	_, err := Parse([]byte(doc))
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "critter.min_size"`) {
		t.Errorf("expected suggestion in error: %v", err)
	}
}

func TestParseMalformedValue(t *testing.T) {
	doc := strings.Replace(string(defaultsYAML), "  width: 1100\n", "  width: wide\n", 1)

	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("expected decode error for non-numeric width")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"zero critter size", func(c *Config) { c.Critter.MinSize = 0 }, "critter.min_size"},
		{"zero reference size", func(c *Config) { c.Critter.FixedSize = 0 }, "critter.fixed_size"},
		{"inverted speed range", func(c *Config) { c.Critter.MaxSpeed = 0.5 }, "critter.max_speed"},
		{"inverted energy range", func(c *Config) { c.Critter.MaxEnergy = 1 }, "critter.max_energy"},
		{"spawn buffer too large", func(c *Config) { c.Critter.SpawnBuffer = 10000 }, "critter.spawn_buffer"},
		{"unimplemented movement", func(c *Config) { c.Critter.Movement = MovementTowards }, "not implemented"},
		{"unknown movement", func(c *Config) { c.Critter.Movement = "teleport" }, "not a movement strategy"},
		{"zero respawn interval", func(c *Config) { c.Food.RespawnInterval = 0 }, "food.respawn_interval"},
		{"zero fixed food size", func(c *Config) { c.Food.RandomSize = false; c.Food.FixedSize = 0 }, "food.fixed_size"},
		{"bad log level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
		{"short colour", func(c *Config) { c.Sidebar.Colour = Colour{1, 2} }, "sidebar.colour"},
		{"zero window", func(c *Config) { c.Telemetry.WindowTicks = 0 }, "telemetry.window_ticks"},
		{"aging without max age", func(c *Config) { c.Aging.MaxAge = 0 }, "aging.max_age"},
		{"jitter overflows max age", func(c *Config) { c.Aging.MaxAgeJitter = math.MaxInt32 }, "aging.max_age + aging.max_age_jitter"},
		{"max age near int32 limit", func(c *Config) { c.Aging.MaxAge = math.MaxInt32 - 10 }, "aging.max_age + aging.max_age_jitter"},
		{"overflow with aging disabled", func(c *Config) { c.Aging.Enabled = false; c.Aging.MaxAgeJitter = math.MaxInt32 }, "aging.max_age_jitter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MustLoad("")
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("expected ErrInvalidValue, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateAgingDisabledAllowsZeroMaxAge(t *testing.T) {
	cfg := MustLoad("")
	cfg.Aging.Enabled = false
	cfg.Aging.MaxAge = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := MustLoad("")
	cfg.Mating.Distance = 77

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if loaded.Mating.Distance != 77 {
		t.Errorf("mating.distance = %v, want 77", loaded.Mating.Distance)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestColourRGBA(t *testing.T) {
	c := Colour{10, 20, 30}.RGBA(128)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 128 {
		t.Errorf("RGBA() = %+v", c)
	}
}
