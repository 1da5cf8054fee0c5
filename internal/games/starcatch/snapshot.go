package starcatch

// Snapshot captures the game state for determinism testing and the sim command.
type Snapshot struct {
	Tick        int     `yaml:"tick"`
	Score       int     `yaml:"score"`
	GameOver    bool    `yaml:"game_over"`
	Paused      bool    `yaml:"paused"`
	Collected   int     `yaml:"stars_collected"`
	ActiveStars int     `yaml:"stars_active"`
	Bombs       int     `yaml:"bombs"`
	PlayerX     float64 `yaml:"player_x"`
	PlayerY     float64 `yaml:"player_y"`
	PlayerVX    float64 `yaml:"player_vx"`
	PlayerVY    float64 `yaml:"player_vy"`
	Grounded    bool    `yaml:"grounded"`
	Animation   string  `yaml:"animation"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Tick:      st.Ticks,
		Score:     st.Score,
		GameOver:  st.GameOver,
		Paused:    st.Paused,
		Collected: st.Pickups,
		Bombs:     st.Hazards,
	}
	if g.session == nil || g.session.Player() == nil {
		return snap
	}

	p := g.session.Player()
	snap.ActiveStars = g.session.ActiveStars()
	snap.PlayerX, snap.PlayerY = p.Position()
	snap.PlayerVX, snap.PlayerVY = p.Velocity()
	snap.Grounded = p.TouchingDown()
	snap.Animation = p.CurrentAnimation()
	return snap
}
