// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AsteroidsConfig contains all configuration for the asteroids game.
// Distances are in world units (the playfield is Screen.Width × Screen.Height),
// speeds in world units per tick, rotation in degrees per tick.
type AsteroidsConfig struct {
	Screen     ScreenConfig `yaml:"screen"`
	Ship       ShipConfig   `yaml:"ship"`
	Bullet     BulletConfig `yaml:"bullet"`
	Rocks      RocksConfig  `yaml:"rocks"`
	Difficulty LevelConfig  `yaml:"difficulty"`
	Timing     TimingConfig `yaml:"timing"`
}

// ScreenConfig defines the playfield.
type ScreenConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Speed            float64 `yaml:"speed"`
	RotationSpeed    float64 `yaml:"rotation_speed"`
	Lives            int     `yaml:"lives"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	CollisionPadding float64 `yaml:"collision_padding"`
	Color            string  `yaml:"color"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Speed   float64 `yaml:"speed"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Color   string  `yaml:"color"`
	Allowed int     `yaml:"allowed"` // Max live bullets
}

// RockVariant is one visual rock type with its own base size and scale range.
type RockVariant struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	ScaleMin float64 `yaml:"scale_min"`
	ScaleMax float64 `yaml:"scale_max"`
}

// RocksConfig defines rock spawning and movement.
type RocksConfig struct {
	SpawnRate        int           `yaml:"spawn_rate"` // Ticks between spawns
	Max              int           `yaml:"max"`        // Max live rocks
	EscapePenalty    int           `yaml:"escape_penalty"`
	CollisionPadding float64       `yaml:"collision_padding"`
	Variants         []RockVariant `yaml:"variants"`
	RotationSpeedMin float64       `yaml:"rotation_speed_min"`
	RotationSpeedMax float64       `yaml:"rotation_speed_max"`
	BaseSpeedMin     float64       `yaml:"base_speed_min"`
	BaseSpeedMax     float64       `yaml:"base_speed_max"`
	Color            string        `yaml:"color"`
}

// LevelConfig defines the difficulty progression system.
type LevelConfig struct {
	Enabled                 bool    `yaml:"enabled"`
	IncreaseTicks           int     `yaml:"increase_ticks"` // Ticks per level
	SpeedMultiplierPerLevel float64 `yaml:"speed_multiplier_per_level"`
	MaxLevel                int     `yaml:"max_level"`
}

// TimingConfig defines wall-clock timings, converted to ticks by the game.
type TimingConfig struct {
	HitPause    time.Duration `yaml:"hit_pause"`
	LevelBanner time.Duration `yaml:"level_banner"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings return the empty preset.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else if preset != "" {
		cfg.Difficulty.Enabled = true
	}

	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Rocks.BaseSpeedMin *= 0.75
		cfg.Rocks.BaseSpeedMax *= 0.75
		cfg.Rocks.SpawnRate = cfg.Rocks.SpawnRate * 3 / 2
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Rocks.BaseSpeedMin *= 1.5
		cfg.Rocks.BaseSpeedMax *= 1.5
		cfg.Rocks.SpawnRate = max(cfg.Rocks.SpawnRate*2/3, 1)
	}
}

// Validate checks that the configuration describes a playable game.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	check(c.Ship.Speed > 0, "ship.speed must be positive")
	check(c.Ship.RotationSpeed >= 0, "ship.rotation_speed must not be negative")
	check(c.Ship.Lives > 0, "ship.lives must be positive")
	check(c.Ship.Width > 0 && c.Ship.Height > 0, "ship size must be positive")
	check(c.Ship.CollisionPadding >= 0, "ship.collision_padding must not be negative")
	check(c.Bullet.Speed > 0, "bullet.speed must be positive")
	check(c.Bullet.Width > 0 && c.Bullet.Height > 0, "bullet size must be positive")
	check(c.Bullet.Allowed >= 0, "bullet.allowed must not be negative")
	check(c.Rocks.SpawnRate > 0, "rocks.spawn_rate must be positive")
	check(c.Rocks.Max >= 0, "rocks.max must not be negative")
	check(c.Rocks.EscapePenalty >= 0, "rocks.escape_penalty must not be negative")
	check(c.Rocks.CollisionPadding >= 0, "rocks.collision_padding must not be negative")
	check(len(c.Rocks.Variants) > 0, "rocks.variants must not be empty")
	for i, v := range c.Rocks.Variants {
		check(v.Width > 0 && v.Height > 0, "rocks.variants[%d] size must be positive", i)
		check(v.ScaleMin > 0 && v.ScaleMin <= v.ScaleMax, "rocks.variants[%d] scale range [%v, %v] is invalid", i, v.ScaleMin, v.ScaleMax)
	}
	check(c.Rocks.RotationSpeedMin <= c.Rocks.RotationSpeedMax, "rocks rotation speed range is inverted")
	check(c.Rocks.BaseSpeedMin > 0 && c.Rocks.BaseSpeedMin <= c.Rocks.BaseSpeedMax, "rocks base speed range [%v, %v] is invalid", c.Rocks.BaseSpeedMin, c.Rocks.BaseSpeedMax)
	check(c.Difficulty.IncreaseTicks > 0, "difficulty.increase_ticks must be positive")
	check(c.Difficulty.SpeedMultiplierPerLevel >= 0, "difficulty.speed_multiplier_per_level must not be negative")
	check(c.Difficulty.MaxLevel >= 0, "difficulty.max_level must not be negative")
	check(c.Timing.HitPause >= 0, "timing.hit_pause must not be negative")

	for field, name := range map[string]string{
		"screen.background": c.Screen.Background,
		"ship.color":        c.Ship.Color,
		"bullet.color":      c.Bullet.Color,
		"rocks.color":       c.Rocks.Color,
	} {
		_, ok := core.ParseColor(name)
		check(ok, "%s: unknown color %q", field, name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Color resolves a configured color name, falling back to the default color.
func Color(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}
