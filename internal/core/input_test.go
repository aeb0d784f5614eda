package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("New frame should be empty")
	}

	f.Set(ActionFire)
	f.Set(ActionRotateLeft)
	if !f.Has(ActionFire) || !f.Has(ActionRotateLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("Zero frame should report nothing")
	}
	zero.Set(ActionStart)
	if !zero.Has(ActionStart) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionHeld(t *testing.T) {
	held := []Action{ActionRotateLeft, ActionRotateRight, ActionThrustForward, ActionThrustBackward}
	for _, a := range held {
		if !a.Held() {
			t.Errorf("%s should be a held action", a)
		}
	}

	pressed := []Action{ActionFire, ActionStart, ActionQuit, ActionNone}
	for _, a := range pressed {
		if a.Held() {
			t.Errorf("%s should be edge-triggered", a)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(3)

	if h.Active(ActionRotateLeft, 0) {
		t.Error("Nothing should be active before any press")
	}

	h.Press(ActionRotateLeft, 10)
	for tick := 10; tick < 13; tick++ {
		if !h.Active(ActionRotateLeft, tick) {
			t.Errorf("Action should be held at tick %d", tick)
		}
	}
	if h.Active(ActionRotateLeft, 13) {
		t.Error("Action should expire after the hold window")
	}

	// A repeat extends the hold
	h.Press(ActionRotateLeft, 12)
	if !h.Active(ActionRotateLeft, 14) {
		t.Error("Repeat press should extend the hold")
	}

	frame := NewInputFrame()
	h.Press(ActionThrustForward, 14)
	h.Apply(&frame, 14)
	if !frame.Has(ActionRotateLeft) || !frame.Has(ActionThrustForward) {
		t.Error("Apply should copy active holds to the frame")
	}

	h.Release(ActionRotateLeft)
	if h.Active(ActionRotateLeft, 14) {
		t.Error("Release should drop the hold")
	}

	h.Reset()
	if h.Active(ActionThrustForward, 14) {
		t.Error("Reset should drop every hold")
	}
}

func TestHoldTrackerMinimumWindow(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(ActionRotateRight, 5)
	if !h.Active(ActionRotateRight, 5) {
		t.Error("A press should be active on its own tick")
	}
	if h.Active(ActionRotateRight, 6) {
		t.Error("Window of one tick should expire on the next tick")
	}
}
