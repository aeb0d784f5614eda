package config

// DifficultyManager derives the difficulty level from elapsed ticks and the
// rock speed range from the level.
type DifficultyManager struct {
	cfg          LevelConfig
	baseSpeedMin float64
	baseSpeedMax float64
}

// NewDifficultyManager creates a new difficulty manager for the given
// progression settings and base rock speed range.
func NewDifficultyManager(cfg LevelConfig, rocks RocksConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		baseSpeedMin: rocks.BaseSpeedMin,
		baseSpeedMax: rocks.BaseSpeedMax,
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// MaxLevel returns the level cap.
func (d *DifficultyManager) MaxLevel() int {
	return max(d.cfg.MaxLevel, 0)
}

// Level returns the 0-based difficulty level after the given number of
// active ticks: min(ticks / increase_ticks, max_level).
func (d *DifficultyManager) Level(ticks int) int {
	if !d.cfg.Enabled || d.cfg.IncreaseTicks <= 0 || ticks <= 0 {
		return 0
	}
	return min(ticks/d.cfg.IncreaseTicks, d.MaxLevel())
}

// SpeedRange returns the rock speed bounds at the given level:
// base * (1 + level * multiplier).
func (d *DifficultyManager) SpeedRange(level int) (lo, hi float64) {
	f := 1.0 + float64(level)*d.cfg.SpeedMultiplierPerLevel
	return d.baseSpeedMin * f, d.baseSpeedMax * f
}
