// Package asteroids implements a rock-dodging shooter: the ship rotates and
// thrusts around a wrapped playfield while rocks drift in from the edges.
package asteroids

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives gameplay events; discarded unless the CLI sets one
var logger = log.New(io.Discard)

// showHitboxes draws collision rectangles on top of sprites
var showHitboxes bool

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetShowHitboxes toggles the collision rectangle overlay.
func SetShowHitboxes(show bool) {
	showHitboxes = show
}

// Game implements the asteroids game logic.
// World coordinates are independent of the terminal size; Render scales them.
type Game struct {
	id     string
	title  string
	preset config.DifficultyPreset

	// pinned is used instead of loading from disk when set
	pinned *config.AsteroidsConfig

	// Game objects, in insertion order
	ship    *Ship
	bullets []*Bullet
	rocks   []*Rock

	// Session state
	phase       core.Phase
	stats       Stats
	tick        int // Ticks stepped while active, including the hit tick
	pauseTicks  int // Remaining ticks of the post-hit pause
	bannerTicks int // Remaining ticks of the level-up banner

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	rng        Rand
	log        *log.Logger
	hitboxes   bool

	screenW, screenH float64
}

// New creates a new asteroids game using the CLI difficulty preset.
func New() *Game {
	return &Game{id: "asteroids", title: "Asteroids"}
}

// NewEasy creates a game locked to the easy preset.
func NewEasy() *Game {
	return &Game{id: "asteroids_easy", title: "Asteroids (Easy)", preset: config.DifficultyEasy}
}

// NewHard creates a game locked to the hard preset.
func NewHard() *Game {
	return &Game{id: "asteroids_hard", title: "Asteroids (Hard)", preset: config.DifficultyHard}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.AsteroidsConfig) *Game {
	g := New()
	g.pinned = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	switch g.preset {
	case config.DifficultyEasy:
		return "Five lives and slower rocks"
	case config.DifficultyHard:
		return "Two lives, fast rocks, frequent spawns"
	default:
		return "Dodge and shoot the incoming rocks"
	}
}

// Reset initializes the game and shows the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.log = logger
	g.hitboxes = showHitboxes

	g.cfg = g.loadConfig()
	g.screenW = g.cfg.Screen.Width
	g.screenH = g.cfg.Screen.Height
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Rocks)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.resetSession()
	g.phase = core.PhaseIdle
}

// loadConfig resolves the configuration for this variant.
func (g *Game) loadConfig() config.AsteroidsConfig {
	if g.pinned != nil {
		if err := g.pinned.Validate(); err != nil {
			g.log.Warn("using default config", "error", err)
			return config.DefaultAsteroidsConfig()
		}
		return *g.pinned
	}

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg = config.DefaultAsteroidsConfig()
	}

	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyAsteroidsPreset(&cfg, preset)
	}
	return cfg
}

// resetSession clears entities and statistics for a new run.
func (g *Game) resetSession() {
	g.ship = NewShip(g.cfg.Ship, g.screenW, g.screenH)
	g.bullets = make([]*Bullet, 0, max(g.cfg.Bullet.Allowed, 1))
	g.rocks = make([]*Rock, 0, max(g.cfg.Rocks.Max, 1))
	g.stats = NewStats(g.cfg.Ship.Lives)
	g.spawner = NewSpawner(g.cfg.Rocks, g.rng)
	g.tick = 0
	g.pauseTicks = 0
	g.bannerTicks = 0
}

// Start begins a new run from the start or game-over screen.
// It reports whether a run was started.
func (g *Game) Start() bool {
	if g.phase != core.PhaseIdle && g.phase != core.PhaseGameOver {
		return false
	}
	if g.phase == core.PhaseGameOver {
		g.resetSession()
	}
	g.phase = core.PhaseActive
	g.log.Info("run started", "game", g.id, "lives", g.stats.Lives, "seed", g.runtime.Seed)
	return true
}

// SetIntents replaces the ship's movement intents.
// Ignored unless a run is active.
func (g *Game) SetIntents(in Intents) {
	if g.phase != core.PhaseActive {
		return
	}
	g.ship.Intents = in
}

// Fire launches a bullet from the ship's center.
// It is a no-op outside an active run or when the bullet cap is reached.
func (g *Game) Fire() bool {
	if g.phase != core.PhaseActive || len(g.bullets) >= g.cfg.Bullet.Allowed {
		return false
	}
	g.bullets = append(g.bullets, NewBullet(g.ship.X, g.ship.Y, g.ship.Angle, g.cfg.Bullet))
	g.stats.RecordShot()
	return true
}

// Step applies one frame of input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case core.PhaseIdle, core.PhaseGameOver:
		if in.Has(core.ActionStart) && g.Start() {
			events = append(events, core.EventStarted)
		}
		return core.StepResult{State: g.State(), Events: events}
	case core.PhasePausedAfterHit:
		// Input is drained by the platform and ignored here
		events = g.Advance()
		return core.StepResult{State: g.State(), Events: events}
	}

	g.SetIntents(Intents{
		RotateLeft:     in.Has(core.ActionRotateLeft),
		RotateRight:    in.Has(core.ActionRotateRight),
		ThrustForward:  in.Has(core.ActionThrustForward),
		ThrustBackward: in.Has(core.ActionThrustBackward),
	})
	if in.Has(core.ActionFire) {
		g.Fire()
	}

	events = g.Advance()
	return core.StepResult{State: g.State(), Events: events}
}

// Advance runs one tick of the simulation without touching input and
// returns the events it produced.
func (g *Game) Advance() []core.Event {
	switch g.phase {
	case core.PhasePausedAfterHit:
		g.pauseTicks--
		if g.pauseTicks <= 0 {
			g.pauseTicks = 0
			g.phase = core.PhaseActive
		}
		return nil
	case core.PhaseActive:
	default:
		return nil
	}

	var events []core.Event
	g.tick++
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	// Movement
	g.ship.Update(g.cfg.Ship.RotationSpeed, g.cfg.Ship.Speed, g.screenW, g.screenH)

	for _, b := range g.bullets {
		b.Update()
	}
	g.bullets = removeExpired(g.bullets, g.screenW, g.screenH)

	for _, r := range g.rocks {
		r.Update(g.screenW, g.screenH)
	}
	var escaped int
	g.rocks, escaped = removeEscaped(g.rocks, g.screenW, g.screenH)
	for range escaped {
		g.stats.RecordEscape(g.cfg.Rocks.EscapePenalty)
		events = append(events, core.EventRockEscaped)
	}

	// Collisions
	var hits int
	g.bullets, g.rocks, hits = resolveBulletHits(g.bullets, g.rocks)
	for range hits {
		g.stats.RecordDestroyed()
		events = append(events, core.EventRockDestroyed)
	}

	if findShipHit(g.ship, g.rocks) >= 0 {
		return append(events, g.shipHit()...)
	}

	// Time and difficulty
	if g.stats.Advance(g.difficulty.Level) {
		g.bannerTicks = g.durationTicks(g.cfg.Timing.LevelBanner)
		lo, hi := g.SpeedRange()
		g.log.Info("level up", "level", g.stats.Level+1, "speed_min", lo, "speed_max", hi)
		events = append(events, core.EventLevelUp)
	}

	// Spawning
	lo, hi := g.SpeedRange()
	if r := g.spawner.Tick(len(g.rocks), lo, hi, g.screenW, g.screenH); r != nil {
		g.rocks = append(g.rocks, r)
	}

	return events
}

// shipHit costs a life and either pauses the run or ends it.
func (g *Game) shipHit() []core.Event {
	events := []core.Event{core.EventShipHit}
	lives := g.stats.LoseLife()

	if lives == 0 {
		g.phase = core.PhaseGameOver
		g.ship.Intents = Intents{}
		s := g.Summary()
		g.log.Info("game over",
			"score", s.Score,
			"level", s.DifficultyLevel,
			"destroyed", s.RocksDestroyed,
			"escaped", s.RocksEscaped,
			"accuracy", math.Round(s.Accuracy),
			"seconds", s.TimeSeconds)
		return append(events, core.EventGameOver)
	}

	g.log.Info("ship hit", "lives", lives)
	clear(g.rocks)
	g.rocks = g.rocks[:0]
	clear(g.bullets)
	g.bullets = g.bullets[:0]
	g.ship.Center(g.screenW, g.screenH)

	g.pauseTicks = g.durationTicks(g.cfg.Timing.HitPause)
	if g.pauseTicks > 0 {
		g.phase = core.PhasePausedAfterHit
	}
	return events
}

// SpeedRange returns the rock speed bounds at the current level.
func (g *Game) SpeedRange() (float64, float64) {
	return g.difficulty.SpeedRange(g.stats.Level)
}

// Stats returns a copy of the session statistics.
func (g *Game) Stats() Stats {
	return g.stats
}

// Phase returns the current session phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// Summary returns the statistics record shown on the HUD and game-over screen.
func (g *Game) Summary() core.Summary {
	lo, hi := g.SpeedRange()
	return core.Summary{
		Score:           g.stats.Score,
		RocksDestroyed:  g.stats.RocksDestroyed,
		RocksEscaped:    g.stats.RocksEscaped,
		TimeSeconds:     g.stats.TimeSeconds(g.runtime.TickRate),
		DifficultyLevel: g.stats.Level + 1,
		BulletsFired:    g.stats.BulletsFired,
		Accuracy:        g.stats.Accuracy,
		SpeedMin:        lo,
		SpeedMax:        hi,
		LivesRemaining:  g.stats.Lives,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.phase == core.PhasePausedAfterHit,
	}
}

// durationTicks converts a wall-clock duration to simulation ticks.
func (g *Game) durationTicks(d time.Duration) int {
	return int(math.Round(d.Seconds() * float64(g.runtime.TickRate)))
}

// Register the games with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
	registry.Register("asteroids_easy", func() registry.Game {
		return NewEasy()
	})
	registry.Register("asteroids_hard", func() registry.Game {
		return NewHard()
	})
}
