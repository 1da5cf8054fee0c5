package starcatch

import "github.com/vovakirdan/starcatch/internal/arcade"

// starGroup adapts a physics group to StarField.
type starGroup struct {
	group *arcade.Group
}

func (s starGroup) ActiveStars() int {
	return s.group.CountActive(true)
}

func (s starGroup) Stars() []Star {
	children := s.group.Children()
	out := make([]Star, len(children))
	for i, b := range children {
		out[i] = b
	}
	return out
}

// bombGroup adapts a physics group to BombLauncher.
type bombGroup struct {
	group  *arcade.Group
	bounce float64
}

func (b bombGroup) Launch(x, y, vx, vy float64) {
	bomb := b.group.Create(x, y, textureBomb)
	bomb.SetBounce(b.bounce)
	bomb.SetCollideWorldBounds(true)
	bomb.SetVelocity(vx, vy)
	bomb.SetAllowGravity(false)
}

func (b bombGroup) Count() int {
	return b.group.Len()
}
