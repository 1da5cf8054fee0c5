package core

import "testing"

func TestInputFrameCursors(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected CursorKeys
	}{
		{"empty", nil, CursorKeys{}},
		{"left only", []Action{ActionLeft}, CursorKeys{Left: true}},
		{"jump counts as up", []Action{ActionJump}, CursorKeys{Up: true}},
		{"up and right", []Action{ActionUp, ActionRight}, CursorKeys{Up: true, Right: true}},
		{"pause is not a cursor", []Action{ActionPause}, CursorKeys{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Cursors(); got != tc.expected {
				t.Errorf("Cursors() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	c := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should remove actions")
	}
	if !c.Has(ActionLeft) {
		t.Error("clone should keep its own actions")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("Bright_Yellow"); !ok || c != ColorBrightYellow {
		t.Errorf("ParseColor(Bright_Yellow) = %v, %v", c, ok)
	}
	if c, ok := ParseColor(""); !ok || c != ColorDefault {
		t.Error("empty name should be default color")
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("unknown names should be rejected")
	}
}
