package arcade

import "github.com/vovakirdan/starcatch/internal/anim"

// Sprite is a dynamic body that plays sprite-sheet animations.
type Sprite struct {
	*Body
	anims *anim.State
}

// NewSprite creates a dynamic body centered on (x, y) with an animation state
// bound to mgr.
func (w *World) NewSprite(x, y float64, key string, mgr *anim.Manager) *Sprite {
	return &Sprite{
		Body:  w.CreateBody(x, y, key, false),
		anims: anim.NewState(mgr),
	}
}

// Play starts the animation under key, keeping the current one running when
// ignoreIfPlaying is set and it is the same animation.
func (s *Sprite) Play(key string, ignoreIfPlaying bool) {
	s.anims.Play(key, ignoreIfPlaying)
	s.syncFrame()
}

// CurrentAnimation returns the key of the animation being shown.
func (s *Sprite) CurrentAnimation() string {
	return s.anims.CurrentKey()
}

// Anims exposes the animation state.
func (s *Sprite) Anims() *anim.State {
	return s.anims
}

// UpdateAnimation advances the animation by dt seconds and updates the frame.
func (s *Sprite) UpdateAnimation(dt float64) {
	s.anims.Update(dt)
	s.syncFrame()
}

func (s *Sprite) syncFrame() {
	if f, ok := s.anims.Frame(); ok {
		s.SetFrame(f.Index)
	}
}
