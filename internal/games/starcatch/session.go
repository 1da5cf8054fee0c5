package starcatch

import (
	"fmt"

	"github.com/vovakirdan/starcatch/internal/anim"
	"github.com/vovakirdan/starcatch/internal/arcade"
	"github.com/vovakirdan/starcatch/internal/assets"
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/scene"
)

// Texture keys.
const (
	textureSky    = "sky"
	textureGround = "ground"
	textureStar   = "star"
	textureBomb   = "bomb"
	textureDude   = "dude"
)

// Animation keys.
const (
	AnimLeft  = "left"
	AnimTurn  = "turn"
	AnimRight = "right"
)

const (
	dudeFrameW = 32
	dudeFrameH = 48
)

// Session is the state of one play-through. Every handler works on the
// session it is called on; nothing is shared between sessions.
type Session struct {
	cfg        config.StarcatchConfig
	difficulty *config.DifficultyManager

	rng       Random
	physics   Pauser
	player    Actor
	stars     StarField
	bombs     BombLauncher
	scoreText Label

	score     int
	gameOver  bool
	collected int
	ticks     int
}

// NewSession creates a session that builds its entities when the scene is created.
func NewSession(cfg config.StarcatchConfig) *Session {
	return &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// SceneConfig returns the canvas and physics configuration for cfg.
func SceneConfig(cfg config.StarcatchConfig) scene.Config {
	return scene.Config{
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
		Physics: arcade.WorldConfig{
			Width:    cfg.Canvas.Width,
			Height:   cfg.Canvas.Height,
			GravityY: cfg.Physics.Gravity,
		},
	}
}

// Preload queues the game's textures.
func (s *Session) Preload(l *assets.Loader) {
	l.Image(textureSky, "assets/sky.yaml")
	l.Image(textureGround, "assets/platform.yaml")
	l.Image(textureStar, "assets/star.yaml")
	l.Image(textureBomb, "assets/bomb.yaml")
	l.Spritesheet(textureDude, "assets/dude.yaml", assets.FrameConfig{
		FrameWidth:  dudeFrameW,
		FrameHeight: dudeFrameH,
	})
}

// Create builds the level: sky, platforms, player, stars, bombs and score label.
func (s *Session) Create(ctx *scene.Context) error {
	cfg := s.cfg
	phys := ctx.Physics()

	ctx.AddImage(cfg.Canvas.Width/2, cfg.Canvas.Height/2, textureSky)

	platforms := phys.NewStaticGroup()
	for _, p := range cfg.Platforms {
		b := platforms.Create(p.X, p.Y, textureGround)
		if p.Scale != 1 {
			b.SetScale(p.Scale).RefreshBody()
		}
	}

	player := ctx.AddSprite(cfg.Player.X, cfg.Player.Y, textureDude)
	player.SetBounce(cfg.Player.Bounce)
	player.SetCollideWorldBounds(true)

	if err := createAnimations(ctx.Anims()); err != nil {
		return err
	}

	stars := phys.NewGroup(&arcade.GroupConfig{
		Key:    textureStar,
		Repeat: cfg.Stars.Count - 1,
		SetXY:  arcade.SetXY{X: cfg.Stars.StartX, Y: 0, StepX: cfg.Stars.StepX},
	})
	stars.Iterate(func(b *arcade.Body) {
		b.SetBounceY(ctx.FloatBetween(cfg.Stars.BounceMin, cfg.Stars.BounceMax))
	})

	bombs := phys.NewGroup(nil)

	s.rng = ctx
	s.physics = phys
	s.player = player
	s.stars = starGroup{group: stars}
	s.bombs = bombGroup{group: bombs, bounce: cfg.Bombs.Bounce}
	s.scoreText = ctx.AddText(16, 16, scoreLabel(0), core.ColorBrightWhite)

	phys.AddCollider(player, platforms, nil)
	phys.AddCollider(stars, platforms, nil)
	phys.AddCollider(bombs, platforms, nil)

	phys.AddOverlap(player, stars, func(_, star *arcade.Body) {
		s.CollectStar(s.player, star)
	})
	phys.AddCollider(player, bombs, func(_, bomb *arcade.Body) {
		s.HitBomb(s.player, bomb)
	})
	return nil
}

// Update reads the cursor keys once per frame.
func (s *Session) Update(_ *scene.Context, keys core.CursorKeys) {
	if !s.gameOver {
		s.ticks++
	}
	s.HandleInput(keys)
}

func createAnimations(mgr *anim.Manager) error {
	animations := []anim.Animation{
		{Key: AnimLeft, Frames: anim.GenerateFrameNumbers(textureDude, 0, 3), FrameRate: 10, Repeat: anim.RepeatForever},
		{Key: AnimTurn, Frames: []anim.Frame{{Texture: textureDude, Index: 4}}, FrameRate: 20},
		{Key: AnimRight, Frames: anim.GenerateFrameNumbers(textureDude, 5, 8), FrameRate: 10, Repeat: anim.RepeatForever},
	}
	for _, a := range animations {
		if err := mgr.Create(a); err != nil {
			return fmt.Errorf("starcatch: animation %q: %w", a.Key, err)
		}
	}
	return nil
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// GameOver reports whether a bomb has hit the player.
func (s *Session) GameOver() bool { return s.gameOver }

// Collected returns how many stars were caught.
func (s *Session) Collected() int { return s.collected }

// Ticks returns the number of frames played before game over.
func (s *Session) Ticks() int { return s.ticks }

// Player returns the player handle, or nil before the scene is created.
func (s *Session) Player() Actor { return s.player }

// Bombs returns how many bombs have been spawned.
func (s *Session) Bombs() int {
	if s.bombs == nil {
		return 0
	}
	return s.bombs.Count()
}

// ActiveStars returns how many stars are waiting to be caught.
func (s *Session) ActiveStars() int {
	if s.stars == nil {
		return 0
	}
	return s.stars.ActiveStars()
}
