// Package registry maps variant IDs to game factories. Variants register
// themselves from init(), so the CLI can list and create them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Game is a fixed-timestep simulation driven by the platform.
// Implementations know nothing about terminals or Bubble Tea: the platform
// turns keys into InputFrames, calls Step at the tick rate and asks for a
// Render into a screen buffer once per frame.
type Game interface {
	// ID is the stable variant key used on the command line and in run records.
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset loads configuration and puts the game on its start screen.
	// The seed in cfg makes every run reproducible.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one tick of input and advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score and phase without advancing time.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
