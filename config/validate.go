package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrMissingKey is returned when a required key is absent.
	ErrMissingKey = errors.New("missing config key")
	// ErrUnknownKey is returned for keys that match no config field.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a value fails validation.
	ErrInvalidValue = errors.New("invalid config value")
)

// optionalKeys may be omitted from a config file.
var optionalKeys = map[string]bool{
	"logging.file": true,
}

// KnownKeys returns the dotted leaf keys of the Config struct, sorted.
func KnownKeys() []string {
	var keys []string
	collectKeys(reflect.TypeOf(Config{}), "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(t reflect.Type, prefix string, keys *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			continue
		}
		key := prefix + name
		if f.Type.Kind() == reflect.Struct {
			collectKeys(f.Type, key+".", keys)
			continue
		}
		*keys = append(*keys, key)
	}
}

// flattenKeys returns the dotted leaf keys present in a decoded document.
func flattenKeys(raw map[string]any, prefix string, keys map[string]bool) {
	for k, v := range raw {
		key := prefix + k
		if sub, ok := v.(map[string]any); ok {
			flattenKeys(sub, key+".", keys)
			continue
		}
		keys[key] = true
	}
}

// checkKeys rejects unknown keys and reports every missing required key.
func checkKeys(raw map[string]any) error {
	known := KnownKeys()
	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}

	present := make(map[string]bool)
	flattenKeys(raw, "", present)

	var unknown []string
	for k := range present {
		if !knownSet[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		k := unknown[0]
		if s := suggestKey(k, known); s != "" {
			return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownKey, k, s)
		}
		return fmt.Errorf("%w: %q", ErrUnknownKey, k)
	}

	var missing []string
	for _, k := range known {
		if !present[k] && !optionalKeys[k] {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}
	return nil
}

// suggestKey returns the closest known key, or "" when nothing is close.
func suggestKey(key string, known []string) string {
	best, bestDist := "", -1
	for _, cand := range known {
		d := levenshtein.ComputeDistance(key, cand)
		if bestDist < 0 || d < bestDist {
			best, bestDist = cand, d
		}
	}
	if bestDist < 0 || bestDist > len(key)/3+1 {
		return ""
	}
	return best
}

// validator accumulates validation failures.
type validator struct {
	errs []error
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.errs = append(v.errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...))
	}
}

func (v *validator) colour(key string, c Colour) {
	if len(c) != 3 {
		v.check(false, "%s must have 3 components, got %d", key, len(c))
		return
	}
	for _, x := range c {
		v.check(x >= 0 && x <= 255, "%s component %d out of range 0-255", key, x)
	}
}

// Validate checks every value for degenerate or contradictory settings.
// All failures are reported together.
func (c *Config) Validate() error {
	v := &validator{}

	v.check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	v.check(c.Screen.TargetFPS > 0, "screen.target_fps must be > 0, got %d", c.Screen.TargetFPS)
	v.colour("screen.back_colour", c.Screen.BackColour)
	v.check(c.Sidebar.Width >= 0 && c.Sidebar.Width <= c.Screen.Width, "sidebar.width must be within screen width, got %d", c.Sidebar.Width)
	v.check(c.Sidebar.Opacity >= 0 && c.Sidebar.Opacity <= 255, "sidebar.opacity must be 0-255, got %d", c.Sidebar.Opacity)
	v.colour("sidebar.colour", c.Sidebar.Colour)

	var lvl slog.Level
	v.check(lvl.UnmarshalText([]byte(c.Logging.Level)) == nil, "logging.level %q is not a slog level", c.Logging.Level)

	cr := c.Critter
	v.check(cr.InitialCount >= 0, "critter.initial_count must be >= 0, got %d", cr.InitialCount)
	v.check(cr.MinSize > 0, "critter.min_size must be > 0, got %v", cr.MinSize)
	v.check(cr.MaxSize >= cr.MinSize, "critter.max_size (%v) < critter.min_size (%v)", cr.MaxSize, cr.MinSize)
	v.check(cr.FixedSize > 0, "critter.fixed_size must be > 0, got %v", cr.FixedSize)
	v.check(cr.MinSpeed >= 0, "critter.min_speed must be >= 0, got %v", cr.MinSpeed)
	v.check(cr.MaxSpeed >= cr.MinSpeed, "critter.max_speed (%v) < critter.min_speed (%v)", cr.MaxSpeed, cr.MinSpeed)
	v.check(cr.MinEnergy >= 0, "critter.min_energy must be >= 0, got %v", cr.MinEnergy)
	v.check(cr.MaxEnergy >= cr.MinEnergy, "critter.max_energy (%v) < critter.min_energy (%v)", cr.MaxEnergy, cr.MinEnergy)
	v.check(cr.EnergyScale >= 0, "critter.energy_scale must be >= 0, got %v", cr.EnergyScale)
	v.check(cr.SpawnBuffer >= 0, "critter.spawn_buffer must be >= 0, got %v", cr.SpawnBuffer)
	v.check(2*cr.SpawnBuffer < float64(c.Screen.Width) && 2*cr.SpawnBuffer < float64(c.Screen.Height),
		"critter.spawn_buffer %v leaves no spawn area in a %dx%d arena", cr.SpawnBuffer, c.Screen.Width, c.Screen.Height)
	switch cr.Movement {
	case MovementStraight:
	case MovementRandom, MovementTowards:
		v.check(false, "critter.movement %q is not implemented", cr.Movement)
	default:
		v.check(false, "critter.movement %q is not a movement strategy", cr.Movement)
	}

	v.check(c.Aging.MaxAge > 0 || !c.Aging.Enabled, "aging.max_age must be > 0 when aging is enabled, got %d", c.Aging.MaxAge)
	v.check(c.Aging.MaxAge >= 0, "aging.max_age must be >= 0, got %d", c.Aging.MaxAge)
	v.check(c.Aging.MaxAgeJitter >= 0, "aging.max_age_jitter must be >= 0, got %d", c.Aging.MaxAgeJitter)
	v.check(int64(c.Aging.MaxAge)+int64(c.Aging.MaxAgeJitter) < math.MaxInt32,
		"aging.max_age + aging.max_age_jitter must be < %d, got %d + %d", math.MaxInt32, c.Aging.MaxAge, c.Aging.MaxAgeJitter)

	v.check(c.Mating.Cooldown >= 0, "mating.cooldown must be >= 0, got %d", c.Mating.Cooldown)
	v.check(c.Mating.Distance >= 0, "mating.distance must be >= 0, got %v", c.Mating.Distance)

	f := c.Food
	v.check(f.InitialCount >= 0, "food.initial_count must be >= 0, got %d", f.InitialCount)
	if f.RandomSize {
		v.check(f.MinSize > 0, "food.min_size must be > 0, got %v", f.MinSize)
		v.check(f.MaxSize >= f.MinSize, "food.max_size (%v) < food.min_size (%v)", f.MaxSize, f.MinSize)
	} else {
		v.check(f.FixedSize > 0, "food.fixed_size must be > 0, got %v", f.FixedSize)
	}
	v.check(f.EnergyScale >= 0, "food.energy_scale must be >= 0, got %v", f.EnergyScale)
	v.check(f.RespawnInterval > 0, "food.respawn_interval must be > 0, got %v", f.RespawnInterval)
	v.check(f.RespawnCount >= 0, "food.respawn_count must be >= 0, got %d", f.RespawnCount)

	v.check(c.Telemetry.WindowTicks >= 1, "telemetry.window_ticks must be >= 1, got %d", c.Telemetry.WindowTicks)

	return errors.Join(v.errs...)
}
