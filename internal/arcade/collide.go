package arcade

import "math"

// contactEpsilon absorbs float drift so a body snapped onto an edge keeps resting there.
const contactEpsilon = 1e-6

// hit is a contact found while sweeping a body against a static collidable.
type hit struct {
	target sweepTarget
	other  *Body
}

// spanOverlap reports whether [a0,a1) and [b0,b1) share more than contactEpsilon.
func spanOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1-contactEpsilon && b0 < a1-contactEpsilon
}

// candidates returns the enabled bodies tagged tag near b moved by (dx, dy).
// The query is pushed one extra unit along the motion because resolv trims the
// far edge of a box by one unit when mapping it to cells.
func (w *World) candidates(b *Body, dx, dy float64, tag string) []*Body {
	if !b.inSpace {
		return nil
	}
	col := b.obj.Check(dx+sign(dx), dy+sign(dy), tag)
	if col == nil {
		return nil
	}
	out := make([]*Body, 0, len(col.Objects))
	for _, o := range col.Objects {
		other, ok := o.Data.(*Body)
		if !ok || other == b || !other.enabled {
			continue
		}
		out = append(out, other)
	}
	return out
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// sweepX moves b horizontally by dx and stops it at the first static edge crossed.
func (w *World) sweepX(b *Body, dx float64, targets []sweepTarget) []hit {
	if dx == 0 {
		return nil
	}
	prev := b.Bounds()
	b.x += dx

	var hits []hit
	for _, t := range targets {
		for _, other := range w.candidates(b, dx, 0, t.tag) {
			r, o := b.Bounds(), other.Bounds()
			if !spanOverlap(r.X, r.Right(), o.X, o.Right()) || !spanOverlap(r.Y, r.Bottom(), o.Y, o.Bottom()) {
				continue
			}
			switch {
			case dx > 0 && prev.Right() <= o.X+contactEpsilon:
				b.x = o.X - b.w/2
				b.touching.Right = true
			case dx < 0 && prev.X >= o.Right()-contactEpsilon:
				b.x = o.Right() + b.w/2
				b.touching.Left = true
			default:
				continue
			}
			b.vx = -b.vx * b.bounceX
			hits = append(hits, hit{target: t, other: other})
		}
	}
	b.sync()
	return hits
}

// sweepY moves b vertically by dy and stops it at the first static edge crossed.
func (w *World) sweepY(b *Body, dy float64, targets []sweepTarget) []hit {
	if dy == 0 {
		return nil
	}
	prev := b.Bounds()
	b.y += dy

	var hits []hit
	for _, t := range targets {
		for _, other := range w.candidates(b, 0, dy, t.tag) {
			r, o := b.Bounds(), other.Bounds()
			if !spanOverlap(r.X, r.Right(), o.X, o.Right()) || !spanOverlap(r.Y, r.Bottom(), o.Y, o.Bottom()) {
				continue
			}
			switch {
			case dy > 0 && prev.Bottom() <= o.Y+contactEpsilon:
				b.y = o.Y - b.h/2
				b.touching.Down = true
			case dy < 0 && prev.Y >= o.Bottom()-contactEpsilon:
				b.y = o.Bottom() + b.h/2
				b.touching.Up = true
			default:
				continue
			}
			b.vy = -b.vy * b.bounceY
			hits = append(hits, hit{target: t, other: other})
		}
	}
	b.sync()
	return hits
}

// processPair handles a collider or overlap between two groups where at least
// one side is dynamic.
func (w *World) processPair(c *collider) {
	first := append([]*Body(nil), c.a.members()...)
	tag := c.b.broadphaseTag()

	for _, a := range first {
		if !a.enabled {
			continue
		}
		for _, b := range w.candidates(a, 0, 0, tag) {
			if w.paused {
				return
			}
			if !a.enabled {
				break
			}
			if !b.enabled || !a.Bounds().Intersects(b.Bounds()) {
				continue
			}
			if !c.overlap {
				separate(a, b)
			}
			if c.cb != nil {
				c.cb(a, b)
			}
		}
	}
}

// separate pushes two intersecting bodies apart along the axis of least
// penetration and exchanges their velocities on that axis.
func separate(a, b *Body) {
	ra, rb := a.Bounds(), b.Bounds()
	ox := math.Min(ra.Right(), rb.Right()) - math.Max(ra.X, rb.X)
	oy := math.Min(ra.Bottom(), rb.Bottom()) - math.Max(ra.Y, rb.Y)

	shareA, shareB := 0.5, 0.5
	switch {
	case a.static && b.static:
		return
	case a.static:
		shareA, shareB = 0, 1
	case b.static:
		shareA, shareB = 1, 0
	}

	if ox < oy {
		dir := 1.0
		if a.x < b.x {
			dir = -1
			a.touching.Right, b.touching.Left = true, true
		} else {
			a.touching.Left, b.touching.Right = true, true
		}
		a.x += dir * ox * shareA
		b.x -= dir * ox * shareB
		a.vx, b.vx = exchange(a.vx, b.vx, a.bounceX, b.bounceX, a.static, b.static)
	} else {
		dir := 1.0
		if a.y < b.y {
			dir = -1
			a.touching.Down, b.touching.Up = true, true
		} else {
			a.touching.Up, b.touching.Down = true, true
		}
		a.y += dir * oy * shareA
		b.y -= dir * oy * shareB
		a.vy, b.vy = exchange(a.vy, b.vy, a.bounceY, b.bounceY, a.static, b.static)
	}
	a.sync()
	b.sync()
}

// exchange returns post-impact velocities for equal-mass bodies.
func exchange(va, vb, bounceA, bounceB float64, staticA, staticB bool) (float64, float64) {
	switch {
	case staticA:
		return va, -vb * bounceB
	case staticB:
		return -va * bounceA, vb
	}
	avg := (va + vb) / 2
	return avg + (vb-avg)*bounceA, avg + (va-avg)*bounceB
}
