// Package arcade is a small arcade physics simulation: rectangular bodies,
// gravity, bounce, world bounds, static and dynamic groups, and
// collider/overlap callbacks. Broadphase queries go through a resolv space.
package arcade

import (
	"fmt"
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Default sizes used when a texture key is unknown to the SizeSource.
const (
	MissingTextureSize = 32
	defaultCellSize    = 32
)

// WorldConfig holds the physics defaults of a scene.
type WorldConfig struct {
	Width    float64 // World width in units
	Height   float64 // World height in units
	GravityY float64 // Downward acceleration in units/s^2
	CellSize int     // Broadphase cell size; 0 uses the default
}

// SizeSource resolves texture keys to frame sizes.
type SizeSource interface {
	Size(key string) (w, h float64, ok bool)
}

// Callback is invoked with the two bodies of a collision or overlap,
// in the order the pair was registered.
type Callback func(a, b *Body)

// Collidable is anything a collider can be registered on: a body, a sprite or a group.
type Collidable interface {
	members() []*Body
	broadphaseTag() string
	isStatic() bool
}

type collider struct {
	a, b    Collidable
	cb      Callback
	overlap bool
}

// sweepTarget is a static collidable a dynamic body is swept against.
type sweepTarget struct {
	tag  string
	cb   Callback
	flip bool // body is the second argument of cb
}

// World owns every body and advances the simulation.
type World struct {
	cfg       WorldConfig
	sizes     SizeSource
	space     *resolv.Space
	bodies    []*Body
	colliders []*collider
	nextID    int
	paused    bool
	steps     int
}

// NewWorld creates a world. sizes may be nil, in which case every body uses the
// missing-texture size.
func NewWorld(cfg WorldConfig, sizes SizeSource) *World {
	cell := cfg.CellSize
	if cell <= 0 {
		cell = defaultCellSize
	}
	cfg.CellSize = cell

	w := int(math.Ceil(cfg.Width))
	h := int(math.Ceil(cfg.Height))
	return &World{
		cfg:   cfg,
		sizes: sizes,
		space: resolv.NewSpace(w, h, cell, cell),
	}
}

// Config returns the world configuration.
func (w *World) Config() WorldConfig {
	return w.cfg
}

// Bounds returns the world rectangle.
func (w *World) Bounds() core.RectF {
	return core.RectF{W: w.cfg.Width, H: w.cfg.Height}
}

// Bodies returns all bodies in creation order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Steps returns how many unpaused steps have run.
func (w *World) Steps() int {
	return w.steps
}

// Pause stops all movement and collision processing.
func (w *World) Pause() {
	w.paused = true
}

// Resume restarts the simulation after Pause.
func (w *World) Resume() {
	w.paused = false
}

// IsPaused reports whether the simulation is paused.
func (w *World) IsPaused() bool {
	return w.paused
}

// CreateBody adds a body sized from the texture key and centered on (x, y).
func (w *World) CreateBody(x, y float64, key string, static bool) *Body {
	fw, fh := float64(MissingTextureSize), float64(MissingTextureSize)
	if w.sizes != nil {
		if sw, sh, ok := w.sizes.Size(key); ok {
			fw, fh = sw, sh
		}
	}

	w.nextID++
	b := &Body{
		world:        w,
		id:           w.nextID,
		key:          key,
		tag:          fmt.Sprintf("body-%d", w.nextID),
		x:            x,
		y:            y,
		w:            fw,
		h:            fh,
		frameW:       fw,
		frameH:       fh,
		scaleX:       1,
		scaleY:       1,
		allowGravity: !static,
		static:       static,
		enabled:      true,
		active:       true,
		visible:      true,
	}
	r := b.Bounds()
	b.obj = resolv.NewObject(r.X, r.Y, r.W, r.H, b.tag)
	b.obj.Data = b

	w.bodies = append(w.bodies, b)
	w.attach(b)
	return b
}

func (w *World) attach(b *Body) {
	if b.inSpace {
		return
	}
	w.space.Add(b.obj)
	b.inSpace = true
}

func (w *World) detach(b *Body) {
	if !b.inSpace {
		return
	}
	w.space.Remove(b.obj)
	b.inSpace = false
}

// AddCollider separates the members of a and b when they overlap and then
// calls cb (which may be nil).
func (w *World) AddCollider(a, b Collidable, cb Callback) {
	w.colliders = append(w.colliders, &collider{a: a, b: b, cb: cb})
}

// AddOverlap calls cb whenever members of a and b overlap, without separating them.
func (w *World) AddOverlap(a, b Collidable, cb Callback) {
	w.colliders = append(w.colliders, &collider{a: a, b: b, cb: cb, overlap: true})
}

// Step advances the simulation by dt seconds. Nothing happens while paused.
func (w *World) Step(dt float64) {
	if w.paused || dt <= 0 {
		return
	}
	w.steps++

	for _, b := range w.bodies {
		if b.enabled && !b.static {
			b.touching = Facing{}
			b.blocked = Facing{}
		}
	}

	targets := w.sweepTargets()
	for _, b := range w.bodies {
		if !b.enabled || b.static {
			continue
		}
		w.integrate(b, dt, targets[b])
	}

	for _, c := range w.colliders {
		if w.paused {
			return
		}
		if !c.overlap && (c.a.isStatic() || c.b.isStatic()) {
			continue // resolved during the sweep
		}
		w.processPair(c)
	}
}

// sweepTargets maps each dynamic body to the static collidables it collides with.
func (w *World) sweepTargets() map[*Body][]sweepTarget {
	targets := make(map[*Body][]sweepTarget)
	for _, c := range w.colliders {
		if c.overlap {
			continue
		}
		switch {
		case c.b.isStatic() && !c.a.isStatic():
			for _, m := range c.a.members() {
				targets[m] = append(targets[m], sweepTarget{tag: c.b.broadphaseTag(), cb: c.cb})
			}
		case c.a.isStatic() && !c.b.isStatic():
			for _, m := range c.b.members() {
				targets[m] = append(targets[m], sweepTarget{tag: c.a.broadphaseTag(), cb: c.cb, flip: true})
			}
		}
	}
	return targets
}

// integrate applies gravity and moves one body axis by axis.
func (w *World) integrate(b *Body, dt float64, targets []sweepTarget) {
	if b.allowGravity {
		b.vy += w.cfg.GravityY * dt
	}

	hitsX := w.sweepX(b, b.vx*dt, targets)
	hitsY := w.sweepY(b, b.vy*dt, targets)

	if b.worldBounds {
		w.clampToBounds(b)
	}
	b.sync()

	for _, hit := range append(hitsX, hitsY...) {
		if hit.target.cb == nil {
			continue
		}
		if hit.target.flip {
			hit.target.cb(hit.other, b)
		} else {
			hit.target.cb(b, hit.other)
		}
	}
}

// clampToBounds keeps b inside the world, bouncing off the edges.
func (w *World) clampToBounds(b *Body) {
	r := b.Bounds()
	if r.X < 0 {
		b.x = b.w / 2
		b.vx = -b.vx * b.bounceX
		b.blocked.Left = true
	} else if r.Right() > w.cfg.Width {
		b.x = w.cfg.Width - b.w/2
		b.vx = -b.vx * b.bounceX
		b.blocked.Right = true
	}
	if r.Y < 0 {
		b.y = b.h / 2
		b.vy = -b.vy * b.bounceY
		b.blocked.Up = true
	} else if r.Bottom() > w.cfg.Height {
		b.y = w.cfg.Height - b.h/2
		b.vy = -b.vy * b.bounceY
		b.blocked.Down = true
	}
}
