package asteroids

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

// newActiveGame returns a started game using cfg.
func newActiveGame(t *testing.T, cfg config.AsteroidsConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)
	if !g.Start() {
		t.Fatal("Start should begin a run from the start screen")
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// stillRock places a motionless rock centered at (x, y).
func stillRock(g *Game, x, y float64) *Rock {
	r := rockAt(x, y)
	g.rocks = append(g.rocks, r)
	return r
}

// stillBullet places a motionless bullet centered at (x, y).
func stillBullet(g *Game, x, y float64) *Bullet {
	b := bulletAt(x, y)
	g.bullets = append(g.bullets, b)
	return b
}

func TestGameStartsIdle(t *testing.T) {
	g := NewWithConfig(config.DefaultAsteroidsConfig())
	g.Reset(testRuntime)

	if g.Phase() != core.PhaseIdle {
		t.Fatalf("Phase after Reset = %s, expected idle", g.Phase())
	}

	// Nothing moves before the run starts
	res := g.Step(press(core.ActionThrustForward, core.ActionFire))
	if len(g.bullets) != 0 || g.ship.Y != 400 || g.tick != 0 {
		t.Error("Idle game should not simulate")
	}
	if len(res.Events) != 0 {
		t.Errorf("Idle step events = %v", res.Events)
	}

	res = g.Step(press(core.ActionStart))
	if !res.Has(core.EventStarted) || g.Phase() != core.PhaseActive {
		t.Errorf("Start action should begin the run, phase %s", g.Phase())
	}
	if g.Start() {
		t.Error("Start during an active run should be refused")
	}
}

func TestGameStepAppliesInput(t *testing.T) {
	g := newActiveGame(t, config.DefaultAsteroidsConfig())

	g.Step(press(core.ActionRotateRight, core.ActionFire))
	if !approx(g.ship.Angle, 2.5) {
		t.Errorf("Angle = %v, expected 2.5", g.ship.Angle)
	}
	if len(g.bullets) != 1 || g.stats.BulletsFired != 1 {
		t.Errorf("Fire should create one bullet, got %d", len(g.bullets))
	}

	// Held intents last only while present in the frame
	g.Step(core.NewInputFrame())
	if g.ship.Intents != (Intents{}) {
		t.Errorf("Intents should clear with an empty frame, got %+v", g.ship.Intents)
	}
}

func TestSetIntentsAndAdvance(t *testing.T) {
	g := newActiveGame(t, config.DefaultAsteroidsConfig())

	g.SetIntents(Intents{ThrustForward: true})
	g.Advance()
	g.Advance()

	if !approx(g.ship.Y, 400-2*1.5) {
		t.Errorf("Ship Y = %v, expected %v", g.ship.Y, 400-2*1.5)
	}
}

// Scenario A: two difficulty intervals give level 2.
func TestScenarioLevelAfterTwoIntervals(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Difficulty.IncreaseTicks = 1200
	cfg.Difficulty.MaxLevel = 15
	g := newActiveGame(t, cfg)

	g.stats.ElapsedTicks = 2*1200 - 1
	events := g.Advance()

	if g.stats.Level != 2 {
		t.Errorf("Level = %d, expected 2", g.stats.Level)
	}
	if g.Summary().DifficultyLevel != 3 {
		t.Errorf("Displayed level = %d, expected 3", g.Summary().DifficultyLevel)
	}
	if countEvents(events, core.EventLevelUp) != 1 {
		t.Errorf("Expected one level-up event, got %v", events)
	}

	// No repeat signal while the level holds
	if countEvents(g.Advance(), core.EventLevelUp) != 0 {
		t.Error("Level-up should be signalled once per change")
	}
}

// Scenario B: a bullet on a rock's collision rect destroys both in one tick.
func TestScenarioBulletDestroysRock(t *testing.T) {
	g := newActiveGame(t, config.DefaultAsteroidsConfig())
	g.stats.Level = 3
	g.stats.BulletsFired = 4

	stillRock(g, 200, 200)
	stillBullet(g, 200, 200)

	events := g.Advance()

	if len(g.rocks) != 0 || len(g.bullets) != 0 {
		t.Errorf("Rock and bullet should be removed, got %d rocks %d bullets", len(g.rocks), len(g.bullets))
	}
	if g.stats.Score != 40 {
		t.Errorf("Score = %d, expected 10*(3+1)", g.stats.Score)
	}
	if g.stats.RocksDestroyed != 1 {
		t.Errorf("RocksDestroyed = %d, expected 1", g.stats.RocksDestroyed)
	}
	if g.stats.Accuracy != 25 {
		t.Errorf("Accuracy = %v, expected 25", g.stats.Accuracy)
	}
	if countEvents(events, core.EventRockDestroyed) != 1 {
		t.Errorf("Expected one destroy event, got %v", events)
	}
}

// Scenario C: the last life ends the run without a pause.
func TestScenarioLastLifeEndsRun(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Ship.Lives = 1
	g := newActiveGame(t, cfg)

	stillRock(g, 600, 400)
	res := g.Step(core.NewInputFrame())

	if g.Phase() != core.PhaseGameOver || !res.State.GameOver {
		t.Fatalf("Phase = %s, expected gameover", g.Phase())
	}
	if g.pauseTicks != 0 {
		t.Errorf("Game over should not pause, pauseTicks = %d", g.pauseTicks)
	}
	if g.Summary().LivesRemaining != 0 {
		t.Errorf("LivesRemaining = %d, expected 0", g.Summary().LivesRemaining)
	}
	if !res.Has(core.EventShipHit) || !res.Has(core.EventGameOver) {
		t.Errorf("Events = %v, expected ship_hit and game_over", res.Events)
	}

	// Simulation stops
	tick := g.tick
	g.Step(press(core.ActionThrustForward))
	if g.tick != tick {
		t.Error("Game over should not simulate")
	}
}

// Scenario D: a non-fatal hit clears the field and pauses.
func TestScenarioHitPausesAndResumes(t *testing.T) {
	g := newActiveGame(t, config.DefaultAsteroidsConfig())

	stillRock(g, 600, 400)
	stillRock(g, 1000, 100)
	stillBullet(g, 100, 700)
	g.ship.Angle = 90

	res := g.Step(press(core.ActionRotateLeft))

	if g.stats.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", g.stats.Lives)
	}
	if len(g.rocks) != 0 || len(g.bullets) != 0 {
		t.Errorf("Field should be cleared, got %d rocks %d bullets", len(g.rocks), len(g.bullets))
	}
	if g.ship.X != 600 || g.ship.Y != 400 || g.ship.Intents != (Intents{}) {
		t.Errorf("Ship should be recentered with no intents: %+v", g.ship)
	}
	if g.Phase() != core.PhasePausedAfterHit || !res.State.Paused {
		t.Fatalf("Phase = %s, expected paused", g.Phase())
	}
	if !res.Has(core.EventShipHit) || res.Has(core.EventGameOver) {
		t.Errorf("Events = %v, expected only ship_hit", res.Events)
	}

	// One second at 60 ticks/s, input ignored throughout
	for i := 0; i < 59; i++ {
		g.Step(press(core.ActionFire, core.ActionThrustForward))
		if g.Phase() != core.PhasePausedAfterHit {
			t.Fatalf("Pause ended early after %d ticks", i+1)
		}
	}
	if len(g.bullets) != 0 || g.stats.BulletsFired != 0 || g.ship.Y != 400 {
		t.Error("Input during the pause should be discarded")
	}

	g.Step(core.NewInputFrame())
	if g.Phase() != core.PhaseActive {
		t.Errorf("Phase after pause = %s, expected active", g.Phase())
	}
}

func TestHitWithoutPauseStaysActive(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Timing.HitPause = 0
	g := newActiveGame(t, cfg)

	stillRock(g, 600, 400)
	g.Advance()

	if g.Phase() != core.PhaseActive || g.stats.Lives != 2 {
		t.Errorf("Phase %s lives %d, expected active with 2 lives", g.Phase(), g.stats.Lives)
	}
}

// Scenario E: firing at the cap does nothing.
func TestScenarioFireAtCap(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Bullet.Allowed = 5
	g := newActiveGame(t, cfg)

	for i := 0; i < 5; i++ {
		if !g.Fire() {
			t.Fatalf("Shot %d should fire", i+1)
		}
	}
	if g.Fire() {
		t.Error("Fire at the cap should be refused")
	}
	if len(g.bullets) != 5 || g.stats.BulletsFired != 5 {
		t.Errorf("bullets = %d fired = %d, expected 5 and 5", len(g.bullets), g.stats.BulletsFired)
	}
}

func TestEscapePenalty(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Rocks.EscapePenalty = 5
	g := newActiveGame(t, cfg)
	g.stats.Score = 3

	seen := stillRock(g, 1251, 100)
	seen.DirX, seen.Speed = 1, 1
	seen.Visible = true

	never := stillRock(g, -49, 700)
	never.DirX, never.Speed = -1, 2

	events := g.Advance()

	if len(g.rocks) != 0 {
		t.Fatalf("Both rocks should be removed, %d left", len(g.rocks))
	}
	if g.stats.Score != 0 {
		t.Errorf("Score = %d, expected penalty floored at 0", g.stats.Score)
	}
	if g.stats.RocksEscaped != 1 {
		t.Errorf("RocksEscaped = %d, expected only the visible rock", g.stats.RocksEscaped)
	}
	if countEvents(events, core.EventRockEscaped) != 1 {
		t.Errorf("Expected one escape event, got %v", events)
	}
}

func TestRockSpeedFixedAtSpawn(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Rocks.SpawnRate = 1
	g := newActiveGame(t, cfg)

	g.Advance()
	if len(g.rocks) != 1 {
		t.Fatalf("Expected one spawned rock, got %d", len(g.rocks))
	}
	r := g.rocks[0]
	lo, hi := g.SpeedRange()
	if r.Speed < lo || r.Speed > hi {
		t.Fatalf("Speed %v outside level range [%v, %v]", r.Speed, lo, hi)
	}
	speed := r.Speed

	g.stats.ElapsedTicks = 10 * cfg.Difficulty.IncreaseTicks
	g.Advance()
	if g.stats.Level == 0 {
		t.Fatal("Level should have increased")
	}
	if r.Speed != speed {
		t.Errorf("Rock speed changed from %v to %v", speed, r.Speed)
	}

	newLo, _ := g.SpeedRange()
	if newLo <= lo {
		t.Errorf("Speed range should grow with level: %v -> %v", lo, newLo)
	}
}

func TestRocksSpawnOverTime(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Rocks.SpawnRate = 10
	cfg.Rocks.Max = 3
	g := newActiveGame(t, cfg)

	for i := 0; i < 100; i++ {
		g.Advance()
		if len(g.rocks) > 3 {
			t.Fatalf("Rock cap exceeded: %d", len(g.rocks))
		}
		if g.Phase() != core.PhaseActive {
			return
		}
	}
	if len(g.rocks) == 0 {
		t.Error("Rocks should spawn during play")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Ship.Lives = 1
	g := newActiveGame(t, cfg)

	g.stats.BulletsFired = 3
	g.stats.Score = 50
	stillRock(g, 600, 400)
	g.Advance()
	if g.Phase() != core.PhaseGameOver {
		t.Fatalf("Phase = %s, expected gameover", g.Phase())
	}

	res := g.Step(press(core.ActionStart))
	if !res.Has(core.EventStarted) || g.Phase() != core.PhaseActive {
		t.Fatal("Start should restart after game over")
	}
	s := g.Stats()
	if s.Lives != 1 || s.Score != 0 || s.BulletsFired != 0 || s.ElapsedTicks != 0 {
		t.Errorf("Restart should reset stats, got %+v", s)
	}
	if len(g.rocks) != 0 || len(g.bullets) != 0 {
		t.Error("Restart should clear entities")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Rocks.SpawnRate = 20

	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i%40 < 15:
			inputs[i].Set(core.ActionRotateRight)
		case i%40 < 25:
			inputs[i].Set(core.ActionThrustForward)
		}
		if i%9 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func(seed int64) Snapshot {
		g := NewWithConfig(cfg)
		rt := testRuntime
		rt.Seed = seed
		g.Reset(rt)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}

	other := run(54321)
	if other.Hash() == snap1.Hash() {
		t.Error("Different seeds should produce different runs")
	}
}

func TestSummaryAndView(t *testing.T) {
	g := newActiveGame(t, config.DefaultAsteroidsConfig())
	stillRock(g, 200, 200)
	g.Fire()

	v := g.View()
	if v.Phase != core.PhaseActive {
		t.Errorf("View phase = %s", v.Phase)
	}
	if len(v.Rocks) != 1 || len(v.Bullets) != 1 {
		t.Fatalf("View has %d rocks %d bullets", len(v.Rocks), len(v.Bullets))
	}
	if v.Rocks[0].Sprite.W != 100 {
		t.Errorf("Rock sprite width = %v, expected 100", v.Rocks[0].Sprite.W)
	}

	// The view is detached from live state
	v.Rocks[0].X = -1
	if g.rocks[0].X != 200 {
		t.Error("Mutating the view should not affect the game")
	}

	s := v.Summary
	if s.DifficultyLevel != 1 || s.LivesRemaining != 3 || s.BulletsFired != 1 {
		t.Errorf("Unexpected summary %+v", s)
	}
	if s.SpeedMin != 1.0 || s.SpeedMax != 2.5 {
		t.Errorf("Speed range = %v-%v, expected 1-2.5", s.SpeedMin, s.SpeedMax)
	}

	g.stats.ElapsedTicks = 185
	if g.Summary().TimeSeconds != 3 {
		t.Errorf("TimeSeconds = %d, expected 3", g.Summary().TimeSeconds)
	}
}

func TestGameLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(nil) })

	cfg := config.DefaultAsteroidsConfig()
	cfg.Ship.Lives = 2
	g := newActiveGame(t, cfg)

	stillRock(g, 600, 400)
	g.Advance()
	g.phase = core.PhaseActive
	stillRock(g, 600, 400)
	g.Advance()

	out := buf.String()
	for _, want := range []string{"run started", "ship hit", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log should contain %q, got:\n%s", want, out)
		}
	}
}

func TestInvalidPinnedConfigFallsBack(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(nil) })

	cfg := config.DefaultAsteroidsConfig()
	cfg.Rocks.Variants = nil
	cfg.Rocks.SpawnRate = 1
	g := newActiveGame(t, cfg)

	if len(g.cfg.Rocks.Variants) == 0 {
		t.Fatal("Invalid config should be replaced by the defaults")
	}
	if !strings.Contains(buf.String(), "using default config") {
		t.Errorf("Fallback should be logged, got:\n%s", buf.String())
	}

	want := config.DefaultAsteroidsConfig().Rocks.SpawnRate
	for i := 0; i < want; i++ {
		g.Advance()
	}
	if len(g.rocks) != 1 {
		t.Errorf("Expected one rock after %d ticks, got %d", want, len(g.rocks))
	}
}

func TestVariants(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		game  *Game
		id    string
		lives int
	}{
		{NewEasy(), "asteroids_easy", 5},
		{NewHard(), "asteroids_hard", 2},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if tc.game.ID() != tc.id {
				t.Errorf("ID = %q, expected %q", tc.game.ID(), tc.id)
			}
			if tc.game.Description() == "" {
				t.Error("Variant should have a description")
			}
			tc.game.Reset(testRuntime)
			if tc.game.Stats().Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", tc.game.Stats().Lives, tc.lives)
			}
		})
	}
}

func TestGameRender(t *testing.T) {
	g := NewWithConfig(config.DefaultAsteroidsConfig())
	g.Reset(testRuntime)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "ASTEROIDS") {
		t.Error("Start screen should show the title")
	}

	g.Start()
	g.Advance()
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.ContainsRune(out, ShipGlyph(0)) {
		t.Error("Ship glyph should be drawn")
	}

	stillRock(g, 600, 400)
	g.cfg.Ship.Lives = 1
	g.stats.Lives = 1
	g.Advance()
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Game over screen should be shown")
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("Small screens should show a warning")
	}
}

func TestGameRenderHitboxes(t *testing.T) {
	SetShowHitboxes(true)
	t.Cleanup(func() { SetShowHitboxes(false) })

	g := newActiveGame(t, config.DefaultAsteroidsConfig())
	stillRock(g, 200, 300)
	screen := core.NewScreen(120, 40)
	g.Render(screen)

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == '┌' && c.Color == HitboxColor {
				found = true
			}
		}
	}
	if !found {
		t.Error("Hitbox overlay should draw collision boxes")
	}
}

func TestShipGlyph(t *testing.T) {
	tests := map[float64]rune{0: '▲', 90: '▶', 180: '▼', 270: '◀', 359: '▲', 44: '◥'}
	for angle, want := range tests {
		if got := ShipGlyph(angle); got != want {
			t.Errorf("ShipGlyph(%v) = %c, expected %c", angle, got, want)
		}
	}
}

func countEvents(events []core.Event, e core.Event) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}
