package arcade

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Facing records on which sides a body made contact during the last step.
type Facing struct {
	Up, Down, Left, Right bool
}

// None reports whether no side is set.
func (f Facing) None() bool {
	return !f.Up && !f.Down && !f.Left && !f.Right
}

// Body is a rectangular physics body attached to a display object.
// Positions are the center of the body in world units.
type Body struct {
	world *World
	id    int
	key   string
	tag   string
	obj   *resolv.Object

	x, y         float64
	w, h         float64 // collision size
	frameW       float64 // unscaled texture frame size
	frameH       float64
	scaleX       float64
	scaleY       float64
	vx, vy       float64
	bounceX      float64
	bounceY      float64
	allowGravity bool
	worldBounds  bool
	static       bool

	enabled bool // takes part in simulation
	active  bool // counted by Group.CountActive
	visible bool

	touching Facing
	blocked  Facing

	tint    core.Color
	tinted  bool
	frame   int
	inSpace bool
}

// ID returns the body's unique identifier within its world.
func (b *Body) ID() int { return b.id }

// Key returns the texture key the body was created from.
func (b *Body) Key() string { return b.key }

// Position returns the body's center.
func (b *Body) Position() (float64, float64) { return b.x, b.y }

// X returns the horizontal center position.
func (b *Body) X() float64 { return b.x }

// Y returns the vertical center position.
func (b *Body) Y() float64 { return b.y }

// Velocity returns the current velocity in units per second.
func (b *Body) Velocity() (float64, float64) { return b.vx, b.vy }

// Size returns the collision size.
func (b *Body) Size() (float64, float64) { return b.w, b.h }

// Bounds returns the collision box.
func (b *Body) Bounds() core.RectF {
	return core.RectFromCenter(b.x, b.y, b.w, b.h)
}

// DisplayBounds returns the drawn box, which follows the scale even for static
// bodies that have not been refreshed.
func (b *Body) DisplayBounds() core.RectF {
	return core.RectFromCenter(b.x, b.y, b.frameW*b.scaleX, b.frameH*b.scaleY)
}

// Bounce returns the restitution on each axis.
func (b *Body) Bounce() (float64, float64) { return b.bounceX, b.bounceY }

// IsStatic reports whether the body never moves.
func (b *Body) IsStatic() bool { return b.static }

// Enabled reports whether the body takes part in the simulation.
func (b *Body) Enabled() bool { return b.enabled }

// Active reports whether the owning game object is active.
func (b *Body) Active() bool { return b.active }

// Visible reports whether the body is drawn.
func (b *Body) Visible() bool { return b.visible }

// Touching returns the sides that touched another body last step.
func (b *Body) Touching() Facing { return b.touching }

// TouchingDown reports whether the body rested on another body last step.
func (b *Body) TouchingDown() bool { return b.touching.Down }

// Blocked returns the sides blocked by the world bounds last step.
func (b *Body) Blocked() Facing { return b.blocked }

// AllowGravity reports whether world gravity applies to the body.
func (b *Body) AllowGravity() bool { return b.allowGravity }

// Frame returns the sprite-sheet frame currently displayed.
func (b *Body) Frame() int { return b.frame }

// SetFrame selects the displayed sprite-sheet frame.
func (b *Body) SetFrame(i int) { b.frame = i }

// Tint returns the tint color and whether one is set.
func (b *Body) Tint() (core.Color, bool) { return b.tint, b.tinted }

// SetTint recolors the body when drawn.
func (b *Body) SetTint(c core.Color) {
	b.tint = c
	b.tinted = true
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
}

// SetVelocityX sets the horizontal velocity.
func (b *Body) SetVelocityX(vx float64) { b.vx = vx }

// SetVelocityY sets the vertical velocity.
func (b *Body) SetVelocityY(vy float64) { b.vy = vy }

// SetBounce sets the restitution on both axes.
func (b *Body) SetBounce(v float64) {
	b.bounceX, b.bounceY = v, v
}

// SetBounceY sets the vertical restitution.
func (b *Body) SetBounceY(v float64) { b.bounceY = v }

// SetAllowGravity toggles world gravity for this body.
func (b *Body) SetAllowGravity(allow bool) { b.allowGravity = allow }

// SetCollideWorldBounds keeps the body inside the world rectangle.
func (b *Body) SetCollideWorldBounds(collide bool) { b.worldBounds = collide }

// SetScale scales the displayed texture. Dynamic bodies resize at once;
// static bodies keep their old collision box until RefreshBody.
func (b *Body) SetScale(s float64) *Body {
	b.scaleX, b.scaleY = s, s
	if !b.static {
		b.RefreshBody()
	}
	return b
}

// RefreshBody syncs the collision box with the displayed size.
func (b *Body) RefreshBody() {
	b.w = b.frameW * b.scaleX
	b.h = b.frameH * b.scaleY
	b.sync()
}

// DisableBody stops simulating the body, optionally deactivating and hiding it.
func (b *Body) DisableBody(deactivate, hide bool) {
	b.enabled = false
	if deactivate {
		b.active = false
	}
	if hide {
		b.visible = false
	}
	b.touching = Facing{}
	b.blocked = Facing{}
	b.world.detach(b)
}

// EnableBody resumes simulation. With reset set the body is moved to (x, y)
// and its velocity is cleared.
func (b *Body) EnableBody(reset bool, x, y float64, activate, show bool) {
	if reset {
		b.x, b.y = x, y
		b.vx, b.vy = 0, 0
		b.touching = Facing{}
		b.blocked = Facing{}
	}
	b.enabled = true
	if activate {
		b.active = true
	}
	if show {
		b.visible = true
	}
	b.world.attach(b)
	b.sync()
}

// sync copies the collision box into the broadphase object.
func (b *Body) sync() {
	r := b.Bounds()
	b.obj.X, b.obj.Y = r.X, r.Y
	b.obj.W, b.obj.H = r.W, r.H
	if b.inSpace {
		b.obj.Update()
	}
}

// members implements Collidable.
func (b *Body) members() []*Body { return []*Body{b} }

func (b *Body) broadphaseTag() string { return b.tag }

func (b *Body) isStatic() bool { return b.static }
