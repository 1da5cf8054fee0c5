// Package assets loads the textures a scene asks for during preload.
// Textures are small YAML descriptors mapping an image to terminal glyphs,
// keyed the same way the scene refers to them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/starcatch/internal/core"
)

//go:embed files/*.yaml
var embedded embed.FS

var (
	// ErrNotFound is returned when a queued path does not exist.
	ErrNotFound = errors.New("assets: file not found")

	// ErrInvalid is returned for malformed descriptors.
	ErrInvalid = errors.New("assets: invalid descriptor")

	// ErrDuplicateKey is returned when two loads share a key.
	ErrDuplicateKey = errors.New("assets: duplicate key")
)

// FrameConfig describes how a sprite sheet is cut into frames.
type FrameConfig struct {
	FrameWidth  int
	FrameHeight int
}

// Glyph is how one frame is drawn on the terminal.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Texture is a loaded image or sprite sheet.
type Texture struct {
	Key         string
	Width       int
	Height      int
	FrameWidth  int
	FrameHeight int
	Frames      []Glyph
}

// Frame returns the glyph for frame i, falling back to frame 0.
func (t *Texture) Frame(i int) Glyph {
	if i < 0 || i >= len(t.Frames) {
		return t.Frames[0]
	}
	return t.Frames[i]
}

type descriptor struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Glyphs []string `yaml:"glyphs"`
	Color  string   `yaml:"color"`
}

type request struct {
	key    string
	path   string
	frames *FrameConfig
}

// Loader queues asset requests and loads them together.
type Loader struct {
	fsys  fs.FS
	queue []request
}

// NewLoader creates a loader reading the built-in textures.
// Paths are resolved relative to the "assets/" prefix, so "assets/star.yaml"
// and "star.yaml" name the same file.
func NewLoader() *Loader {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded files missing: %v", err))
	}
	return NewLoaderFS(sub)
}

// NewLoaderFS creates a loader reading from fsys.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Image queues a single-frame texture.
func (l *Loader) Image(key, p string) {
	l.queue = append(l.queue, request{key: key, path: p})
}

// Spritesheet queues a multi-frame texture cut by cfg.
func (l *Loader) Spritesheet(key, p string, cfg FrameConfig) {
	l.queue = append(l.queue, request{key: key, path: p, frames: &cfg})
}

// Pending returns the number of queued requests.
func (l *Loader) Pending() int {
	return len(l.queue)
}

// Start loads every queued request and returns the resulting cache.
// The queue is emptied even when loading fails.
func (l *Loader) Start() (*Cache, error) {
	queue := l.queue
	l.queue = nil

	cache := NewCache()
	for _, req := range queue {
		if _, exists := cache.textures[req.key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, req.key)
		}
		tex, err := l.load(req)
		if err != nil {
			return nil, err
		}
		cache.textures[req.key] = tex
	}
	return cache, nil
}

func (l *Loader) load(req request) (*Texture, error) {
	name := strings.TrimPrefix(path.Clean(req.path), "assets/")
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (key %q)", ErrNotFound, req.path, req.key)
		}
		return nil, fmt.Errorf("assets: read %s: %w", req.path, err)
	}

	var d descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, req.path, err)
	}
	return buildTexture(req, d)
}

func buildTexture(req request, d descriptor) (*Texture, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: %s: size %dx%d", ErrInvalid, req.path, d.Width, d.Height)
	}
	if len(d.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: %s: no glyphs", ErrInvalid, req.path)
	}
	color, ok := core.ParseColor(d.Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, req.path, d.Color)
	}

	tex := &Texture{
		Key:         req.key,
		Width:       d.Width,
		Height:      d.Height,
		FrameWidth:  d.Width,
		FrameHeight: d.Height,
	}

	wantFrames := 1
	if req.frames != nil {
		fw, fh := req.frames.FrameWidth, req.frames.FrameHeight
		if fw <= 0 || fh <= 0 || d.Width%fw != 0 || d.Height%fh != 0 {
			return nil, fmt.Errorf("%w: %s: %dx%d does not divide into %dx%d frames",
				ErrInvalid, req.path, d.Width, d.Height, fw, fh)
		}
		tex.FrameWidth, tex.FrameHeight = fw, fh
		wantFrames = (d.Width / fw) * (d.Height / fh)
	}
	if len(d.Glyphs) != wantFrames {
		return nil, fmt.Errorf("%w: %s: %d glyphs for %d frames", ErrInvalid, req.path, len(d.Glyphs), wantFrames)
	}

	for _, g := range d.Glyphs {
		runes := []rune(g)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: %s: glyph %q must be a single character", ErrInvalid, req.path, g)
		}
		tex.Frames = append(tex.Frames, Glyph{Rune: runes[0], Color: color})
	}
	return tex, nil
}
