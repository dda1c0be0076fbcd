package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionDown)
	f.Set(ActionRight)

	if !f.Has(ActionRight) || !f.Has(ActionDown) {
		t.Error("Has() should report every set action")
	}
	if f.Has(ActionUndo) {
		t.Error("Has(ActionUndo) = true, expected false")
	}

	expected := []Action{ActionRight, ActionDown, ActionRight}
	if len(f.Order) != len(expected) {
		t.Fatalf("len(Order) = %d, expected %d", len(f.Order), len(expected))
	}
	for i, a := range expected {
		if f.Order[i] != a {
			t.Errorf("Order[%d] = %v, expected %v", i, f.Order[i], a)
		}
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUndo)
	clone := f.Clone()

	f.Clear()

	if !f.Empty() || f.Has(ActionUndo) {
		t.Error("Clear() should remove every action")
	}
	if clone.Empty() || !clone.Has(ActionUndo) {
		t.Error("Clone() should not share state with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set() on a zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRedo, "Redo"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
		{Action(-1), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
