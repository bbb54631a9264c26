package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionHardDrop)
	f.Set(ActionLeft)

	if !f.Has(ActionLeft) || !f.Has(ActionHardDrop) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Len() != 0 {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should report no actions")
	}
	f.Clear() // Should not panic

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionUp) {
		t.Error("clone should keep actions after original is cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateCCW.String() != "RotateCCW" {
		t.Errorf("ActionRotateCCW.String() = %q", ActionRotateCCW.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
