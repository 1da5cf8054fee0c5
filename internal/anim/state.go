package anim

// State tracks the animation a single sprite is playing.
type State struct {
	mgr      *Manager
	current  *Animation
	index    int
	elapsed  float64
	plays    int
	playing  bool
	restarts int
}

// NewState creates a state bound to a manager.
func NewState(mgr *Manager) *State {
	return &State{mgr: mgr}
}

// Play starts the animation registered under key.
// With ignoreIfPlaying set, a call for the animation that is already running
// keeps its current frame instead of restarting. Unknown keys are ignored.
func (s *State) Play(key string, ignoreIfPlaying bool) {
	a, ok := s.mgr.Get(key)
	if !ok {
		return
	}
	if ignoreIfPlaying && s.playing && s.current == a {
		return
	}
	s.current = a
	s.index = 0
	s.elapsed = 0
	s.plays = 0
	s.playing = true
	s.restarts++
}

// Update advances the animation by dt seconds.
func (s *State) Update(dt float64) {
	if !s.playing || s.current == nil {
		return
	}

	frameTime := 1.0 / s.current.FrameRate
	s.elapsed += dt
	for s.elapsed >= frameTime {
		s.elapsed -= frameTime
		if !s.advance() {
			s.elapsed = 0
			return
		}
	}
}

// advance moves to the next frame and reports whether playback continues.
func (s *State) advance() bool {
	if s.index < len(s.current.Frames)-1 {
		s.index++
		return true
	}
	if s.current.Repeat == RepeatForever || s.plays < s.current.Repeat {
		s.plays++
		s.index = 0
		return true
	}
	s.playing = false
	return false
}

// CurrentKey returns the key of the active animation, or "" if none.
func (s *State) CurrentKey() string {
	if s.current == nil {
		return ""
	}
	return s.current.Key
}

// IsPlaying reports whether frames are still advancing.
func (s *State) IsPlaying() bool {
	return s.playing
}

// Frame returns the frame currently shown.
func (s *State) Frame() (Frame, bool) {
	if s.current == nil {
		return Frame{}, false
	}
	return s.current.Frames[s.index], true
}

// Restarts counts how many times Play actually (re)started an animation.
func (s *State) Restarts() int {
	return s.restarts
}
