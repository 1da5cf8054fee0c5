package starcatch

import (
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// CollectStar handles the player overlapping a star. Once the last active star
// is taken, every star comes back at the top and a bomb is launched from the
// half of the field the player is not in.
func (s *Session) CollectStar(player Positioned, star Star) {
	star.DisableBody(true, true)

	s.score += s.cfg.Scoring.StarPoints
	s.collected++
	s.scoreText.SetText(scoreLabel(s.score))

	if s.stars.ActiveStars() > 0 {
		return
	}

	for _, st := range s.stars.Stars() {
		st.EnableBody(true, st.X(), 0, true, true)
	}

	px, _ := player.Position()
	speed := s.difficulty.Speed(s.cfg.Bombs.SpeedX, config.Progress{
		Score:  s.score,
		Ticks:  s.ticks,
		Rounds: s.collected / max(s.cfg.Stars.Count, 1),
	})
	vx := float64(s.rng.Between(-int(speed), int(speed)))
	s.bombs.Launch(s.bombX(px), s.cfg.Bombs.Y, vx, s.cfg.Bombs.SpeedY)
}

// bombX picks a spawn column on the side opposite px. A player exactly on the
// midline counts as being on the right.
func (s *Session) bombX(px float64) float64 {
	width := int(s.cfg.Canvas.Width)
	half := width / 2
	if px < float64(half) {
		return float64(s.rng.Between(half, width))
	}
	return float64(s.rng.Between(0, half-1))
}

// HitBomb handles the player touching a bomb: the world freezes and the game is over.
func (s *Session) HitBomb(player Actor, _ Positioned) {
	s.physics.Pause()
	player.SetTint(core.ColorRed)
	player.Play(AnimTurn, false)
	s.gameOver = true
}

// HandleInput applies the cursor keys to the player. It does nothing after game over.
func (s *Session) HandleInput(keys core.CursorKeys) {
	if s.gameOver {
		return
	}

	p := s.player
	switch {
	case keys.Left:
		p.SetVelocityX(-s.cfg.Player.RunSpeed)
		p.Play(AnimLeft, true)
	case keys.Right:
		p.SetVelocityX(s.cfg.Player.RunSpeed)
		p.Play(AnimRight, true)
	default:
		p.SetVelocityX(0)
		p.Play(AnimTurn, false)
	}

	if keys.Up && p.TouchingDown() {
		p.SetVelocityY(-s.cfg.Player.JumpSpeed)
	}
}
