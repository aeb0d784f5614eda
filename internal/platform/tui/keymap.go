package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	RotateLeft     key.Binding
	RotateRight    key.Binding
	ThrustForward  key.Binding
	ThrustBackward key.Binding
	Fire           key.Binding
	Start          key.Binding
	Screenshot     key.Binding
	Quit           key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotateLeft, k.RotateRight, k.ThrustForward, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotateLeft, k.RotateRight, k.ThrustForward, k.ThrustBackward},
		{k.Fire, k.Start, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "rotate right"),
		),
		ThrustForward: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		ThrustBackward: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "reverse"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.RotateLeft):
		return core.ActionRotateLeft, false
	case key.Matches(msg, km.keys.RotateRight):
		return core.ActionRotateRight, false
	case key.Matches(msg, km.keys.ThrustForward):
		return core.ActionThrustForward, false
	case key.Matches(msg, km.keys.ThrustBackward):
		return core.ActionThrustBackward, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	}
	return core.ActionNone, false
}

// MapKeyToInput routes a key press to the right input channel.
// Held actions go to the hold tracker, presses go to the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToInput(msg tea.KeyMsg, tick int, holds *core.HoldTracker, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case isQuit, action == core.ActionNone:
	case action.Held():
		holds.Press(action, tick)
		// Most recent of two opposing keys wins
		if opp := opposite(action); opp != core.ActionNone {
			holds.Release(opp)
		}
	default:
		frame.Set(action)
	}
	return isQuit
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionRotateLeft:
		return core.ActionRotateRight
	case core.ActionRotateRight:
		return core.ActionRotateLeft
	case core.ActionThrustForward:
		return core.ActionThrustBackward
	case core.ActionThrustBackward:
		return core.ActionThrustForward
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
