package starcatch

import "github.com/vovakirdan/starcatch/internal/core"

// Positioned reports a center position in world units.
type Positioned interface {
	Position() (float64, float64)
}

// Mover has a velocity that handlers may change.
type Mover interface {
	Velocity() (float64, float64)
	SetVelocityX(vx float64)
	SetVelocityY(vy float64)
}

// Grounded reports whether the body rested on a surface last physics step.
type Grounded interface {
	TouchingDown() bool
}

// Animator plays named animations.
type Animator interface {
	Play(key string, ignoreIfPlaying bool)
	CurrentAnimation() string
}

// Tinter recolors a sprite.
type Tinter interface {
	SetTint(c core.Color)
}

// Actor is the player handle.
type Actor interface {
	Positioned
	Mover
	Grounded
	Animator
	Tinter
}

// Star is a collectible that is switched off when caught and back on for the
// next round.
type Star interface {
	X() float64
	DisableBody(deactivate, hide bool)
	EnableBody(reset bool, x, y float64, activate, show bool)
}

// StarField is the pool of stars.
type StarField interface {
	ActiveStars() int
	Stars() []Star
}

// BombLauncher spawns bombs.
type BombLauncher interface {
	Launch(x, y, vx, vy float64)
	Count() int
}

// Pauser stops the physics simulation.
type Pauser interface {
	Pause()
}

// Label displays the score.
type Label interface {
	SetText(s string)
}

// Random draws the pseudorandom numbers the game needs.
type Random interface {
	Between(min, max int) int
	FloatBetween(min, max float64) float64
}
