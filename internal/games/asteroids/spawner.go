package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Edge is the screen edge a rock enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// headingRange returns the arc of inbound directions, in degrees, for an edge.
// Angles follow screen coordinates: 90 points down, 180 points left.
func (e Edge) headingRange() (lo, hi float64) {
	switch e {
	case EdgeTop:
		return 45, 135
	case EdgeRight:
		return 135, 225
	case EdgeBottom:
		return 225, 315
	default:
		return 315, 405
	}
}

// Spawner creates rocks on a fixed tick interval.
type Spawner struct {
	cfg   config.RocksConfig
	rng   Rand
	timer int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.RocksConfig, rng Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Timer returns the ticks counted since the last spawn.
func (s *Spawner) Timer() int {
	return s.timer
}

// Reset zeroes the spawn timer.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Tick counts one active tick and returns a new rock when the interval has
// elapsed and fewer than the maximum number of rocks are alive. Otherwise it
// returns nil and the timer keeps counting.
func (s *Spawner) Tick(live int, speedMin, speedMax, screenW, screenH float64) *Rock {
	s.timer++
	if s.timer < s.cfg.SpawnRate || live >= s.cfg.Max {
		return nil
	}
	s.timer = 0
	return s.Spawn(speedMin, speedMax, screenW, screenH)
}

// Spawn creates a rock just outside a random edge, heading inwards, with a
// speed drawn from [speedMin, speedMax].
func (s *Spawner) Spawn(speedMin, speedMax, screenW, screenH float64) *Rock {
	variant := s.rng.Intn(len(s.cfg.Variants))
	v := s.cfg.Variants[variant]
	scale := s.uniform(v.ScaleMin, v.ScaleMax)
	w, h := v.Width*scale, v.Height*scale
	rotation := s.uniform(0, 360)

	// Placement uses the rotated bounds so the whole rock starts off screen
	bw, bh := core.RotatedBounds(w, h, rotation)
	edge := Edge(s.rng.Intn(4))
	var left, top float64
	switch edge {
	case EdgeTop:
		left, top = s.uniform(0, math.Max(screenW-bw, 0)), -bh
	case EdgeRight:
		left, top = screenW, s.uniform(0, math.Max(screenH-bh, 0))
	case EdgeBottom:
		left, top = s.uniform(0, math.Max(screenW-bw, 0)), screenH
	case EdgeLeft:
		left, top = -bw, s.uniform(0, math.Max(screenH-bh, 0))
	}

	lo, hi := edge.headingRange()
	heading := s.uniform(lo, hi)
	rad := heading * math.Pi / 180

	r := &Rock{
		X:             left + bw/2,
		Y:             top + bh/2,
		DirX:          math.Cos(rad),
		DirY:          math.Sin(rad),
		Speed:         s.uniform(speedMin, speedMax),
		Rotation:      rotation,
		RotationSpeed: s.uniform(s.cfg.RotationSpeedMin, s.cfg.RotationSpeedMax),
		Scale:         scale,
		Variant:       variant,
		Width:         w,
		Height:        h,
		Padding:       s.cfg.CollisionPadding,
	}
	r.updateRects()
	return r
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
