package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Bullet is a projectile moving in a straight line at constant velocity.
type Bullet struct {
	X, Y   float64 // Center
	VX, VY float64
	Rect   core.Rect
}

// NewBullet creates a bullet at (x, y) travelling in the direction the ship faces.
func NewBullet(x, y, angle float64, cfg config.BulletConfig) *Bullet {
	rad := core.Radians(angle - 90)
	b := &Bullet{
		X:    x,
		Y:    y,
		VX:   cfg.Speed * math.Cos(rad),
		VY:   cfg.Speed * math.Sin(rad),
		Rect: core.RectCentered(x, y, cfg.Width, cfg.Height),
	}
	return b
}

// Update moves the bullet by its velocity.
func (b *Bullet) Update() {
	b.X += b.VX
	b.Y += b.VY
	b.Rect = core.RectCentered(b.X, b.Y, b.Rect.W, b.Rect.H)
}

// Speed returns the magnitude of the bullet's velocity.
func (b *Bullet) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Expired reports whether the bullet is entirely past one of the screen edges.
func (b *Bullet) Expired(screenW, screenH float64) bool {
	r := b.Rect
	return r.Bottom() <= 0 || r.Y >= screenH || r.Right() <= 0 || r.X >= screenW
}
