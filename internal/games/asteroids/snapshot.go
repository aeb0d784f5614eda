package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ShipView is the read-only state of the ship for presentation.
type ShipView struct {
	X, Y          float64
	Angle         float64
	Rect          core.Rect
	CollisionRect core.Rect
}

// RockView is the read-only state of a rock for presentation.
type RockView struct {
	X, Y          float64
	Rotation      float64
	Variant       int
	Sprite        core.Rect // Unrotated scaled sprite
	Rect          core.Rect
	CollisionRect core.Rect
}

// View is a per-tick snapshot handed to renderers. It shares nothing with
// the live game state.
type View struct {
	Phase          core.Phase
	Ship           ShipView
	Bullets        []core.Rect
	Rocks          []RockView
	BulletsAllowed int
	Summary        core.Summary
}

// View returns the current presentation snapshot.
func (g *Game) View() View {
	v := View{
		Phase: g.phase,
		Ship: ShipView{
			X:             g.ship.X,
			Y:             g.ship.Y,
			Angle:         g.ship.Angle,
			Rect:          g.ship.Rect,
			CollisionRect: g.ship.CollisionRect,
		},
		Bullets:        make([]core.Rect, len(g.bullets)),
		Rocks:          make([]RockView, len(g.rocks)),
		BulletsAllowed: g.cfg.Bullet.Allowed,
		Summary:        g.Summary(),
	}
	for i, b := range g.bullets {
		v.Bullets[i] = b.Rect
	}
	for i, r := range g.rocks {
		v.Rocks[i] = RockView{
			X:             r.X,
			Y:             r.Y,
			Rotation:      r.Rotation,
			Variant:       r.Variant,
			Sprite:        core.RectCentered(r.X, r.Y, r.Width, r.Height),
			Rect:          r.Rect,
			CollisionRect: r.CollisionRect,
		}
	}
	return v
}

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick         uint64
	Phase        int
	Score        int
	Lives        int
	Level        int
	ElapsedTicks int
	Destroyed    int
	Escaped      int
	Fired        int
	SpawnTimer   int
	PauseTicks   int

	ShipX, ShipY, ShipAngle float64

	// Each bullet is 4 floats: X, Y, VX, VY
	BulletData []float64

	// Each rock is 6 floats: X, Y, DirX, DirY, Speed, Rotation
	RockData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         uint64(g.tick), //#nosec G115 -- tick is never negative
		Phase:        int(g.phase),
		Score:        g.stats.Score,
		Lives:        g.stats.Lives,
		Level:        g.stats.Level,
		ElapsedTicks: g.stats.ElapsedTicks,
		Destroyed:    g.stats.RocksDestroyed,
		Escaped:      g.stats.RocksEscaped,
		Fired:        g.stats.BulletsFired,
		SpawnTimer:   g.spawner.Timer(),
		PauseTicks:   g.pauseTicks,
		ShipX:        g.ship.X,
		ShipY:        g.ship.Y,
		ShipAngle:    g.ship.Angle,
		BulletData:   make([]float64, 0, len(g.bullets)*4),
		RockData:     make([]float64, 0, len(g.rocks)*6),
	}
	for _, b := range g.bullets {
		snap.BulletData = append(snap.BulletData, b.X, b.Y, b.VX, b.VY)
	}
	for _, r := range g.rocks {
		snap.RockData = append(snap.RockData, r.X, r.Y, r.DirX, r.DirY, r.Speed, r.Rotation)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, snap.Score, snap.Lives, snap.Level, snap.ElapsedTicks,
		snap.Destroyed, snap.Escaped, snap.Fired, snap.SpawnTimer, snap.PauseTicks,
		len(snap.BulletData), len(snap.RockData),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + math.Float64bits(snap.ShipY)
	h = h*31 + math.Float64bits(snap.ShipAngle)

	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.RockData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
