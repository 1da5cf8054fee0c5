// Package scene runs a three-phase scene lifecycle (preload, create, update)
// on top of the asset loader, the arcade physics world and sprite animations.
package scene

import (
	"math/rand"

	"github.com/vovakirdan/starcatch/internal/anim"
	"github.com/vovakirdan/starcatch/internal/arcade"
	"github.com/vovakirdan/starcatch/internal/assets"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Scene is implemented by games driven by a Runner.
type Scene interface {
	// Preload queues the assets the scene needs.
	Preload(l *assets.Loader)

	// Create builds the scene once assets are loaded.
	Create(ctx *Context) error

	// Update is called once per frame before physics runs.
	Update(ctx *Context, keys core.CursorKeys)
}

// Config is the static description of a scene's canvas and physics.
type Config struct {
	Width   float64
	Height  float64
	Physics arcade.WorldConfig
}

// DefaultConfig returns an 800x600 canvas with gravity 300.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Physics: arcade.WorldConfig{
			GravityY: 300,
		},
	}
}

// Image is a static picture drawn behind everything else.
type Image struct {
	X, Y    float64 // Center
	Key     string
	Visible bool
}

// Text is a label drawn on top of the scene. X and Y give its top-left corner.
type Text struct {
	X, Y    float64
	Color   core.Color
	Visible bool
	value   string
}

// SetText replaces the label.
func (t *Text) SetText(s string) {
	t.value = s
}

// String returns the label.
func (t *Text) String() string {
	return t.value
}

// Context is handed to every lifecycle call. It owns the scene's objects.
type Context struct {
	cfg     Config
	assets  *assets.Cache
	physics *arcade.World
	anims   *anim.Manager
	rng     *rand.Rand

	images  []*Image
	texts   []*Text
	sprites []*arcade.Sprite
}

func newContext(cfg Config, cache *assets.Cache, seed int64) *Context {
	wc := cfg.Physics
	if wc.Width == 0 {
		wc.Width = cfg.Width
	}
	if wc.Height == 0 {
		wc.Height = cfg.Height
	}
	return &Context{
		cfg:     cfg,
		assets:  cache,
		physics: arcade.NewWorld(wc, cache),
		anims:   anim.NewManager(),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Config returns the scene configuration.
func (c *Context) Config() Config { return c.cfg }

// Assets returns the loaded textures.
func (c *Context) Assets() *assets.Cache { return c.assets }

// Physics returns the arcade physics world.
func (c *Context) Physics() *arcade.World { return c.physics }

// Anims returns the animation manager.
func (c *Context) Anims() *anim.Manager { return c.anims }

// Rand returns the scene's seeded random source.
func (c *Context) Rand() *rand.Rand { return c.rng }

// AddImage places a static image centered on (x, y).
func (c *Context) AddImage(x, y float64, key string) *Image {
	img := &Image{X: x, Y: y, Key: key, Visible: true}
	c.images = append(c.images, img)
	return img
}

// AddText places a label with its top-left corner at (x, y).
func (c *Context) AddText(x, y float64, text string, color core.Color) *Text {
	t := &Text{X: x, Y: y, Color: color, Visible: true, value: text}
	c.texts = append(c.texts, t)
	return t
}

// AddSprite creates an animated dynamic body centered on (x, y).
func (c *Context) AddSprite(x, y float64, key string) *arcade.Sprite {
	s := c.physics.NewSprite(x, y, key, c.anims)
	c.sprites = append(c.sprites, s)
	return s
}

// Between returns a random integer in [min, max].
func (c *Context) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + c.rng.Intn(max-min+1)
}

// FloatBetween returns a random float in [min, max).
func (c *Context) FloatBetween(min, max float64) float64 {
	return min + c.rng.Float64()*(max-min)
}
