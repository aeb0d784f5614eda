package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionRotateLeft            // Left arrow, A - held
	ActionRotateRight           // Right arrow, D - held
	ActionThrustForward         // Up arrow, W - held
	ActionThrustBackward        // Down arrow, S - held
	ActionFire                  // Space - edge-triggered
	ActionStart                 // P, Enter - start/restart when not playing
	ActionQuit                  // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrustForward:
		return "ThrustForward"
	case ActionThrustBackward:
		return "ThrustBackward"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a continuous intent rather than a press.
func (a Action) Held() bool {
	switch a {
	case ActionRotateLeft, ActionRotateRight, ActionThrustForward, ActionThrustBackward:
		return true
	default:
		return false
	}
}

// InputFrame represents the input state for a single simulation tick.
// Held actions are present for every tick they are held; edge-triggered
// actions are present only on the tick of the press.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HoldTracker turns a stream of key presses into held intents.
// Terminals report key repeats but never key releases, so a held action
// stays active for a window of ticks after its most recent press.
type HoldTracker struct {
	window   int
	lastSeen map[Action]int
}

// NewHoldTracker creates a tracker that keeps an action held for window ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[Action]int),
	}
}

// Press records a press of the action at the given tick.
func (h *HoldTracker) Press(a Action, tick int) {
	h.lastSeen[a] = tick
}

// Release forgets the action immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.lastSeen, a)
}

// Reset forgets every held action.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
}

// Active reports whether the action counts as held at the given tick.
func (h *HoldTracker) Active(a Action, tick int) bool {
	last, ok := h.lastSeen[a]
	if !ok {
		return false
	}
	return tick-last < h.window
}

// Apply sets every held action that is active at tick on the frame.
func (h *HoldTracker) Apply(frame *InputFrame, tick int) {
	for a := range h.lastSeen {
		if h.Active(a, tick) {
			frame.Set(a)
		}
	}
}
