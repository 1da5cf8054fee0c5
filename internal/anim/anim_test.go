package anim

import (
	"errors"
	"testing"
)

func newDudeAnims(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	anims := []Animation{
		{Key: "left", Frames: GenerateFrameNumbers("dude", 0, 3), FrameRate: 10, Repeat: RepeatForever},
		{Key: "turn", Frames: []Frame{{Texture: "dude", Index: 4}}, FrameRate: 20},
		{Key: "right", Frames: GenerateFrameNumbers("dude", 5, 8), FrameRate: 10, Repeat: RepeatForever},
	}
	for _, a := range anims {
		if err := m.Create(a); err != nil {
			t.Fatalf("Create(%q) failed: %v", a.Key, err)
		}
	}
	return m
}

func TestGenerateFrameNumbers(t *testing.T) {
	frames := GenerateFrameNumbers("dude", 5, 8)
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Texture != "dude" || f.Index != 5+i {
			t.Errorf("frame %d = %+v", i, f)
		}
	}

	rev := GenerateFrameNumbers("dude", 3, 0)
	if len(rev) != 4 || rev[0].Index != 3 || rev[3].Index != 0 {
		t.Errorf("reverse range = %+v", rev)
	}
}

func TestManagerCreateErrors(t *testing.T) {
	m := newDudeAnims(t)

	err := m.Create(Animation{Key: "left", Frames: GenerateFrameNumbers("dude", 0, 1), FrameRate: 10})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	err = m.Create(Animation{Key: "empty", FrameRate: 10})
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}

	err = m.Create(Animation{Key: "still", Frames: []Frame{{Texture: "dude"}}})
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("zero frame rate should be rejected, got %v", err)
	}
}

func TestStateLoops(t *testing.T) {
	s := NewState(newDudeAnims(t))
	s.Play("left", true)

	// 10 fps: 0.45s is four full frames plus change, wrapping back to frame 0
	for i := 0; i < 9; i++ {
		s.Update(0.05)
	}
	f, ok := s.Frame()
	if !ok {
		t.Fatal("expected a frame")
	}
	if f.Index != 0 {
		t.Errorf("after 4 frame times the loop should wrap to 0, got %d", f.Index)
	}
	if !s.IsPlaying() {
		t.Error("looping animation should keep playing")
	}
}

func TestStateIgnoreIfPlaying(t *testing.T) {
	s := NewState(newDudeAnims(t))
	s.Play("right", true)
	s.Update(0.25) // two frames in

	s.Play("right", true)
	if f, _ := s.Frame(); f.Index != 7 {
		t.Errorf("ignoreIfPlaying should keep frame 7, got %d", f.Index)
	}
	if s.Restarts() != 1 {
		t.Errorf("expected 1 restart, got %d", s.Restarts())
	}

	s.Play("right", false)
	if f, _ := s.Frame(); f.Index != 5 {
		t.Errorf("forced play should restart at frame 5, got %d", f.Index)
	}
}

func TestStateSingleFrameStops(t *testing.T) {
	s := NewState(newDudeAnims(t))
	s.Play("turn", false)
	s.Update(1)

	if s.IsPlaying() {
		t.Error("non-repeating animation should stop")
	}
	if f, _ := s.Frame(); f.Index != 4 {
		t.Errorf("turn should rest on frame 4, got %d", f.Index)
	}
	if s.CurrentKey() != "turn" {
		t.Errorf("CurrentKey() = %q", s.CurrentKey())
	}
}

func TestStateUnknownKey(t *testing.T) {
	s := NewState(newDudeAnims(t))
	s.Play("jump", false)

	if s.CurrentKey() != "" {
		t.Errorf("unknown key should be ignored, got %q", s.CurrentKey())
	}
	if _, ok := s.Frame(); ok {
		t.Error("no frame expected before any animation plays")
	}
}
