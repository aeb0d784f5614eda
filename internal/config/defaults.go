package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Screen: ScreenConfig{
			Width:      1200,
			Height:     800,
			Background: "default",
		},
		Ship: ShipConfig{
			Speed:            1.5,
			RotationSpeed:    2.5,
			Lives:            3,
			Width:            60,
			Height:           60,
			CollisionPadding: 10,
			Color:            "bright_cyan",
		},
		Bullet: BulletConfig{
			Speed:   3.5,
			Width:   10,
			Height:  10,
			Color:   "gray",
			Allowed: 5,
		},
		Rocks: RocksConfig{
			SpawnRate:        60,
			Max:              10,
			EscapePenalty:    5,
			CollisionPadding: 20,
			Variants: []RockVariant{
				{Width: 100, Height: 100, ScaleMin: 0.6, ScaleMax: 1.4},
				{Width: 150, Height: 150, ScaleMin: 0.4, ScaleMax: 0.8},
			},
			RotationSpeedMin: -2,
			RotationSpeedMax: 2,
			BaseSpeedMin:     1.0,
			BaseSpeedMax:     2.5,
			Color:            "orange",
		},
		Difficulty: LevelConfig{
			Enabled:                 true,
			IncreaseTicks:           1200,
			SpeedMultiplierPerLevel: 0.1,
			MaxLevel:                15,
		},
		Timing: TimingConfig{
			HitPause:    time.Second,
			LevelBanner: 2 * time.Second,
		},
	}
}
