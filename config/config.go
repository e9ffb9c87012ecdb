// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Movement strategy names accepted by critter.movement.
const (
	MovementStraight = "straight"
	MovementRandom   = "random"
	MovementTowards  = "towards"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sidebar   SidebarConfig   `yaml:"sidebar"`
	Logging   LoggingConfig   `yaml:"logging"`
	Critter   CritterConfig   `yaml:"critter"`
	Aging     AgingConfig     `yaml:"aging"`
	Mating    MatingConfig    `yaml:"mating"`
	Food      FoodConfig      `yaml:"food"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The arena covers the whole screen.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	BackColour Colour `yaml:"back_colour"`
	TargetFPS  int    `yaml:"target_fps"`
}

// SidebarConfig holds the statistics panel appearance.
type SidebarConfig struct {
	Width   int    `yaml:"width"`
	Opacity int    `yaml:"opacity"` // 0-255
	Colour  Colour `yaml:"colour"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = stdout
}

// CritterConfig holds the attribute bounds genomes are mapped onto.
type CritterConfig struct {
	InitialCount int     `yaml:"initial_count"`
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	FixedSize    float64 `yaml:"fixed_size"` // reference size for depletion scaling
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinEnergy    float64 `yaml:"min_energy"`
	MaxEnergy    float64 `yaml:"max_energy"` // also the feeding cap
	EnergyScale  float64 `yaml:"energy_scale"`
	SpawnBuffer  float64 `yaml:"spawn_buffer"` // inset from each edge for initial spawns
	Movement     string  `yaml:"movement"`
}

// AgingConfig holds old-age death parameters.
type AgingConfig struct {
	Enabled      bool  `yaml:"enabled"`
	MaxAge       int32 `yaml:"max_age"`        // ticks
	MaxAgeJitter int32 `yaml:"max_age_jitter"` // per-critter uniform jitter in [0, jitter]
}

// MatingConfig holds mate eligibility rules.
type MatingConfig struct {
	Cooldown  int32   `yaml:"cooldown"` // ticks between pairings
	Distance  float64 `yaml:"distance"` // max centre distance
	MinEnergy float64 `yaml:"min_energy"`
}

// FoodConfig holds food sizing and respawn parameters.
type FoodConfig struct {
	InitialCount    int     `yaml:"initial_count"`
	RandomSize      bool    `yaml:"random_size"`
	FixedSize       float64 `yaml:"fixed_size"`
	MinSize         float64 `yaml:"min_size"`
	MaxSize         float64 `yaml:"max_size"`
	EnergyScale     float64 `yaml:"energy_scale"`
	RespawnInterval float64 `yaml:"respawn_interval"` // seconds
	RespawnCount    int     `yaml:"respawn_count"`
}

// TelemetryConfig holds windowed statistics parameters.
type TelemetryConfig struct {
	WindowTicks int32 `yaml:"window_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	LogLevel slog.Level
}

// Colour is an RGB triple in 0-255.
type Colour []int

// RGBA converts the colour with the given alpha.
func (c Colour) RGBA(alpha uint8) color.RGBA {
	if len(c) != 3 {
		return color.RGBA{A: alpha}
	}
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: alpha}
}

// Load loads configuration from a YAML file. If path is empty the embedded
// defaults are used. The file is never merged with the defaults: every key
// must be present.
func Load(path string) (*Config, error) {
	data := defaultsYAML
	source := "embedded defaults"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		data, source = b, path
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", source, err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Parse decodes, key-checks and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if err := checkKeys(raw); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Validate has already rejected unparsable levels.
	_ = c.Derived.LogLevel.UnmarshalText([]byte(c.Logging.Level))
}

// Arena returns the arena dimensions in pixels.
func (c *Config) Arena() (width, height float64) {
	return float64(c.Screen.Width), float64(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
