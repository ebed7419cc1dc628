package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionDuck)
	if !f.Has(ActionJump) || !f.Has(ActionDuck) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionPause) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionDuck) {
		t.Error("Clear should drop every action")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("zero frame should accept Set")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionDuck, "Duck"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionBack, "Back"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.expected)
		}
	}
}
