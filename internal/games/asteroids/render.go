package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	BulletChar  = '•'
	BorderHoriz = '─'
	HitboxColor = core.ColorGray
	hudRows     = 2
	minScreenW  = 40
	minScreenH  = 12
)

// RockGlyphs are indexed by rock variant.
var RockGlyphs = []rune{'▓', '▒'}

// shipGlyphs are indexed by heading in 45 degree steps, starting at up.
var shipGlyphs = []rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

// ShipGlyph returns the glyph for a ship facing angle degrees.
func ShipGlyph(angle float64) rune {
	i := int(math.Round(core.NormalizeAngle(angle)/45)) % len(shipGlyphs)
	return shipGlyphs[i]
}

// viewport maps world coordinates to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(dst.Height()-hudRows) / worldH,
		top: hudRows,
	}
}

func (v viewport) rect(r core.Rect) core.Rect {
	return core.NewRect(r.X*v.sx, r.Y*v.sy+float64(v.top), r.W*v.sx, r.H*v.sy)
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y*v.sy)) + v.top
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	view := g.View()
	vp := newViewport(dst, g.screenW, g.screenH)
	colors := palette(g.cfg)

	if view.Phase != core.PhaseIdle {
		renderRocks(dst, vp, view.Rocks, colors.rock)
		renderBullets(dst, vp, view.Bullets, colors.bullet)
		renderShip(dst, vp, view.Ship, colors.ship)
		if g.hitboxes {
			renderHitboxes(dst, vp, view)
		}
	}

	renderHUD(dst, view)

	switch view.Phase {
	case core.PhaseIdle:
		drawPanel(dst, "ASTEROIDS", []string{
			"ENTER / P   start",
			"← → / A D   rotate",
			"↑ ↓ / W S   thrust",
			"SPACE       fire",
			"Q           quit",
		}, colors.ship)
	case core.PhasePausedAfterHit:
		msg := fmt.Sprintf("SHIP HIT!  Lives left: %d", view.Summary.LivesRemaining)
		dst.DrawTextCenteredColored(dst.Height()/2, msg, core.ColorBrightRed)
	case core.PhaseGameOver:
		drawPanel(dst, "GAME OVER", append(SummaryLines(view.Summary), "", "ENTER to play again, Q to quit"), core.ColorBrightRed)
	case core.PhaseActive:
		if g.bannerTicks > 0 {
			banner := fmt.Sprintf("LEVEL %d", view.Summary.DifficultyLevel)
			dst.DrawTextCenteredColored(hudRows+1, banner, core.ColorBrightYellow)
		}
	}
}

type colorSet struct {
	ship, bullet, rock core.Color
}

func palette(cfg config.AsteroidsConfig) colorSet {
	return colorSet{
		ship:   config.Color(cfg.Ship.Color),
		bullet: config.Color(cfg.Bullet.Color),
		rock:   config.Color(cfg.Rocks.Color),
	}
}

func renderRocks(dst *core.Screen, vp viewport, rocks []RockView, c core.Color) {
	for _, r := range rocks {
		glyph := RockGlyphs[r.Variant%len(RockGlyphs)]
		dst.DrawRectColored(vp.rect(r.Sprite), glyph, c)
	}
}

func renderBullets(dst *core.Screen, vp viewport, bullets []core.Rect, c core.Color) {
	for _, b := range bullets {
		cx, cy := b.Center()
		x, y := vp.point(cx, cy)
		dst.SetColored(x, y, BulletChar, c)
	}
}

func renderShip(dst *core.Screen, vp viewport, ship ShipView, c core.Color) {
	x, y := vp.point(ship.X, ship.Y)
	dst.SetColored(x, y, ShipGlyph(ship.Angle), c)
}

// renderHitboxes outlines every collision rectangle.
func renderHitboxes(dst *core.Screen, vp viewport, view View) {
	dst.DrawBoxColored(vp.rect(view.Ship.CollisionRect), HitboxColor)
	for _, r := range view.Rocks {
		dst.DrawBoxColored(vp.rect(r.CollisionRect), HitboxColor)
	}
	for _, b := range view.Bullets {
		dst.DrawBoxColored(vp.rect(b), HitboxColor)
	}
}

// renderHUD draws the statistics line and a separator.
func renderHUD(dst *core.Screen, v View) {
	s := v.Summary
	left := fmt.Sprintf("Score: %d  Level: %d  Time: %ds  Lives: %s",
		s.Score, s.DifficultyLevel, s.TimeSeconds, strings.Repeat("♥", s.LivesRemaining))
	right := fmt.Sprintf("Hit: %d  Esc: %d  Acc: %.0f%%  Speed: %.1f-%.1f  Ammo: %d/%d",
		s.RocksDestroyed, s.RocksEscaped, s.Accuracy, s.SpeedMin, s.SpeedMax,
		v.BulletsAllowed-len(v.Bullets), v.BulletsAllowed)

	dst.DrawText(1, 0, left)
	if x := dst.Width() - len([]rune(right)) - 1; x > len([]rune(left))+2 {
		dst.DrawText(x, 0, right)
	}
	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// SummaryLines formats run statistics for the game-over screen.
func SummaryLines(s core.Summary) []string {
	return []string{
		fmt.Sprintf("Score           %d", s.Score),
		fmt.Sprintf("Level           %d", s.DifficultyLevel),
		fmt.Sprintf("Time            %ds", s.TimeSeconds),
		fmt.Sprintf("Rocks destroyed %d", s.RocksDestroyed),
		fmt.Sprintf("Rocks escaped   %d", s.RocksEscaped),
		fmt.Sprintf("Bullets fired   %d", s.BulletsFired),
		fmt.Sprintf("Accuracy        %.1f%%", s.Accuracy),
		fmt.Sprintf("Rock speed      %.2f-%.2f", s.SpeedMin, s.SpeedMax),
	}
}

// drawPanel draws a centered box with a title and left-aligned lines.
func drawPanel(dst *core.Screen, title string, lines []string, c core.Color) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(float64(boxX), float64(boxY), float64(boxW), float64(boxH))
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}
