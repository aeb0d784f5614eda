package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var flagHold time.Duration

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: asteroids).

Controls:
  Left/Right, A/D  - Rotate
  Up/W             - Thrust forward
  Down/S           - Thrust backward
  Space            - Fire
  Enter/P          - Start, or play again after game over
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, slower rocks, fewer spawns
  normal - Configured values
  hard   - Two lives, faster rocks, more spawns
  fixed  - No level progression

Examples:
  asteroids play
  asteroids play asteroids_easy
  asteroids play --difficulty fixed --hitboxes
  asteroids play --config ./my-asteroids.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "asteroids"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'asteroids list' to see available variants", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "variant", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), gameOptions()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameOptions builds the TUI options from the flags.
func gameOptions() tui.Options {
	return tui.Options{
		HoldWindow: flagHold,
		Logger:     logger,
	}
}

// openStore opens the session run store.
// The game still works without it, so failures are only logged.
func openStore() *storage.Store {
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run store", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run store: %v\n", err)
		return nil
	}
	return store
}
