// Package anim provides sprite-sheet frame animations.
// Animations are registered once per scene and played by per-sprite states.
package anim

import (
	"errors"
	"fmt"
)

// RepeatForever makes an animation loop until another one is played.
const RepeatForever = -1

var (
	// ErrDuplicate is returned when an animation key is registered twice.
	ErrDuplicate = errors.New("anim: duplicate key")

	// ErrEmpty is returned for animations without frames or with a bad frame rate.
	ErrEmpty = errors.New("anim: animation has no frames")
)

// Frame references one frame of a sprite sheet.
type Frame struct {
	Texture string
	Index   int
}

// Animation is a named sequence of frames.
type Animation struct {
	Key       string
	Frames    []Frame
	FrameRate float64 // Frames per second
	Repeat    int     // Extra plays after the first; RepeatForever loops
}

// Manager holds the animations available to a scene.
type Manager struct {
	anims map[string]*Animation
}

// NewManager creates an empty animation manager.
func NewManager() *Manager {
	return &Manager{anims: make(map[string]*Animation)}
}

// Create registers an animation under its key.
func (m *Manager) Create(a Animation) error {
	if a.Key == "" {
		return fmt.Errorf("anim: animation key is empty")
	}
	if len(a.Frames) == 0 {
		return fmt.Errorf("%w: %q", ErrEmpty, a.Key)
	}
	if a.FrameRate <= 0 {
		return fmt.Errorf("%w: %q has frame rate %v", ErrEmpty, a.Key, a.FrameRate)
	}
	if _, exists := m.anims[a.Key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, a.Key)
	}

	frames := make([]Frame, len(a.Frames))
	copy(frames, a.Frames)
	a.Frames = frames
	m.anims[a.Key] = &a
	return nil
}

// Get returns the animation registered under key.
func (m *Manager) Get(key string) (*Animation, bool) {
	a, ok := m.anims[key]
	return a, ok
}

// Has reports whether key is registered.
func (m *Manager) Has(key string) bool {
	_, ok := m.anims[key]
	return ok
}

// GenerateFrameNumbers returns frames start..end (inclusive) of a sheet.
// A descending range produces frames in reverse order.
func GenerateFrameNumbers(texture string, start, end int) []Frame {
	step := 1
	if end < start {
		step = -1
	}
	frames := make([]Frame, 0, (end-start)*step+1)
	for i := start; ; i += step {
		frames = append(frames, Frame{Texture: texture, Index: i})
		if i == end {
			break
		}
	}
	return frames
}
