package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session phase of a game.
type Phase int

const (
	PhaseIdle           Phase = iota // Not started, start screen shown
	PhaseActive                      // Simulating
	PhasePausedAfterHit              // Brief non-interactive pause after losing a life
	PhaseGameOver                    // Terminal until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhasePausedAfterHit:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Phase    Phase // Current session phase
	GameOver bool  // Whether the game has ended
	Paused   bool  // Whether the simulation is withheld
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventStarted Event = iota
	EventRockDestroyed
	EventRockEscaped
	EventShipHit
	EventLevelUp
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventRockDestroyed:
		return "rock_destroyed"
	case EventRockEscaped:
		return "rock_escaped"
	case EventShipHit:
		return "ship_hit"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
