package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Rock is an obstacle drifting across the playfield. X and Y are the center.
type Rock struct {
	X, Y          float64
	DirX, DirY    float64 // Unit direction
	Speed         float64 // Fixed at spawn
	Rotation      float64 // Cosmetic spin in degrees
	RotationSpeed float64
	Scale         float64
	Variant       int
	Width, Height float64 // Scaled sprite size
	Padding       float64

	// Visible latches once any part of the rock has been on screen.
	Visible bool

	Rect          core.Rect // Bounds of the rotated sprite
	CollisionRect core.Rect // Unrotated sprite shrunk by Padding
}

// Update moves and spins the rock, then latches visibility.
func (r *Rock) Update(screenW, screenH float64) {
	r.X += r.DirX * r.Speed
	r.Y += r.DirY * r.Speed
	r.Rotation = core.NormalizeAngle(r.Rotation + r.RotationSpeed)
	r.updateRects()

	if !r.Visible && r.OnScreen(screenW, screenH) {
		r.Visible = true
	}
}

// OnScreen reports whether any part of the rock overlaps the playfield.
func (r *Rock) OnScreen(screenW, screenH float64) bool {
	b := r.Rect
	return b.Right() > 0 && b.X < screenW && b.Bottom() > 0 && b.Y < screenH
}

// OffScreen reports whether the rock is fully past one of the screen edges.
func (r *Rock) OffScreen(screenW, screenH float64) bool {
	b := r.Rect
	return b.Right() < 0 || b.X > screenW || b.Bottom() < 0 || b.Y > screenH
}

func (r *Rock) updateRects() {
	w, h := core.RotatedBounds(r.Width, r.Height, r.Rotation)
	r.Rect = core.RectCentered(r.X, r.Y, w, h)
	r.CollisionRect = core.RectCentered(r.X, r.Y, r.Width, r.Height).Shrink(r.Padding)
}
