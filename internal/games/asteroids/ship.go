package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Intents are the continuous movement requests for the ship.
type Intents struct {
	RotateLeft     bool
	RotateRight    bool
	ThrustForward  bool
	ThrustBackward bool
}

// Ship is the player's ship. X and Y are the center of the sprite.
type Ship struct {
	X, Y  float64
	Angle float64 // Degrees in [0, 360), 0 faces up
	Intents

	Width, Height float64
	Padding       float64

	Rect          core.Rect // Bounds of the rotated sprite
	CollisionRect core.Rect // Unrotated sprite shrunk by Padding
}

// NewShip creates a ship from configuration, centered on the playfield.
func NewShip(cfg config.ShipConfig, screenW, screenH float64) *Ship {
	s := &Ship{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Padding: cfg.CollisionPadding,
	}
	s.Center(screenW, screenH)
	return s
}

// Center moves the ship to the middle of the playfield and clears its intents.
func (s *Ship) Center(screenW, screenH float64) {
	s.X = screenW / 2
	s.Y = screenH / 2
	s.Intents = Intents{}
	s.updateRects()
}

// Moving reports whether a thrust intent is active.
func (s *Ship) Moving() bool {
	return s.ThrustForward || s.ThrustBackward
}

// Update advances the ship by one tick.
// Opposite rotation intents are applied one after the other, so equal
// speeds cancel out. Forward thrust wins over backward. Position wraps per
// axis only while thrusting.
func (s *Ship) Update(rotationSpeed, speed, screenW, screenH float64) {
	if s.RotateRight {
		s.Angle += rotationSpeed
	}
	if s.RotateLeft {
		s.Angle -= rotationSpeed
	}
	s.Angle = core.NormalizeAngle(s.Angle)

	if s.Moving() {
		heading := core.Radians(s.Angle + 90)
		step := speed
		if s.ThrustForward {
			step = -speed
		}
		s.X += step * math.Cos(heading)
		s.Y += step * math.Sin(heading)

		s.X = wrap(s.X, screenW)
		s.Y = wrap(s.Y, screenH)
	}

	s.updateRects()
}

// wrap snaps a coordinate that left [0, bound] to the opposite edge.
func wrap(v, bound float64) float64 {
	if v < 0 {
		return bound
	}
	if v > bound {
		return 0
	}
	return v
}

func (s *Ship) updateRects() {
	w, h := core.RotatedBounds(s.Width, s.Height, s.Angle)
	s.Rect = core.RectCentered(s.X, s.Y, w, h)
	s.CollisionRect = core.RectCentered(s.X, s.Y, s.Width, s.Height).Shrink(s.Padding)
}
