package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/starcatch/internal/assets"
	"github.com/vovakirdan/starcatch/internal/core"
)

// missingGlyph is drawn for bodies whose texture was never loaded.
const missingGlyph = '?'

// Runner drives a Scene: boot once, then step and render every frame.
type Runner struct {
	cfg       Config
	scene     Scene
	newLoader func() *assets.Loader
	ctx       *Context
}

// NewRunner creates a runner. newLoader may be nil to use the built-in textures.
func NewRunner(cfg Config, s Scene, newLoader func() *assets.Loader) *Runner {
	if newLoader == nil {
		newLoader = assets.NewLoader
	}
	return &Runner{cfg: cfg, scene: s, newLoader: newLoader}
}

// Boot runs preload, loads the queued assets and calls Create on a fresh context.
// Calling Boot again discards the previous context.
func (r *Runner) Boot(seed int64) error {
	l := r.newLoader()
	r.scene.Preload(l)

	cache, err := l.Start()
	if err != nil {
		return fmt.Errorf("scene: preload: %w", err)
	}

	ctx := newContext(r.cfg, cache, seed)
	if err := r.scene.Create(ctx); err != nil {
		return fmt.Errorf("scene: create: %w", err)
	}
	r.ctx = ctx
	return nil
}

// Context returns the current context, or nil before Boot.
func (r *Runner) Context() *Context {
	return r.ctx
}

// Step runs one frame: scene update, physics, then sprite animations.
func (r *Runner) Step(keys core.CursorKeys, dt float64) {
	if r.ctx == nil {
		return
	}
	r.scene.Update(r.ctx, keys)
	r.ctx.physics.Step(dt)
	for _, s := range r.ctx.sprites {
		s.UpdateAnimation(dt)
	}
}

// Render draws images, then bodies, then texts, scaling world units to cells.
func (r *Runner) Render(dst *core.Screen) {
	if r.ctx == nil {
		return
	}
	v := viewport{
		sx: float64(dst.Width()) / r.cfg.Width,
		sy: float64(dst.Height()) / r.cfg.Height,
	}

	for _, img := range r.ctx.images {
		if !img.Visible {
			continue
		}
		tex, ok := r.ctx.assets.Texture(img.Key)
		if !ok {
			continue
		}
		box := core.RectFromCenter(img.X, img.Y, float64(tex.FrameWidth), float64(tex.FrameHeight))
		g := tex.Frame(0)
		dst.DrawRectColored(v.cells(box), g.Rune, g.Color)
	}

	for _, b := range r.ctx.physics.Bodies() {
		if !b.Visible() {
			continue
		}
		glyph, color := rune(missingGlyph), core.ColorDefault
		if tex, ok := r.ctx.assets.Texture(b.Key()); ok {
			g := tex.Frame(b.Frame())
			glyph, color = g.Rune, g.Color
		}
		if tint, ok := b.Tint(); ok {
			color = tint
		}
		dst.DrawRectColored(v.cells(b.DisplayBounds()), glyph, color)
	}

	for _, t := range r.ctx.texts {
		if !t.Visible {
			continue
		}
		dst.DrawTextColored(v.col(t.X), v.row(t.Y), t.value, t.Color)
	}
}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }

func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// cells returns the cells covered by box. Every visible box covers at least one cell.
func (v viewport) cells(box core.RectF) core.Rect {
	x0, y0 := v.col(box.X), v.row(box.Y)
	x1 := int(math.Ceil(box.Right() * v.sx))
	y1 := int(math.Ceil(box.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
