package arcade

import (
	"math"
	"testing"

	"github.com/vovakirdan/starcatch/internal/anim"
)

type fixedSizes map[string][2]float64

func (f fixedSizes) Size(key string) (float64, float64, bool) {
	s, ok := f[key]
	return s[0], s[1], ok
}

var testSizes = fixedSizes{
	"ground": {400, 32},
	"player": {32, 48},
	"coin":   {24, 22},
	"ball":   {14, 14},
}

const tick = 1.0 / 60

func newTestWorld() *World {
	return NewWorld(WorldConfig{Width: 800, Height: 600, GravityY: 300}, testSizes)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCreateBodySizes(t *testing.T) {
	w := newTestWorld()

	tests := []struct {
		key  string
		w, h float64
	}{
		{"player", 32, 48},
		{"coin", 24, 22},
		{"unknown", MissingTextureSize, MissingTextureSize},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			b := w.CreateBody(100, 100, tt.key, false)
			bw, bh := b.Size()
			if bw != tt.w || bh != tt.h {
				t.Errorf("size = %vx%v, want %vx%v", bw, bh, tt.w, tt.h)
			}
			if !b.Enabled() || !b.Active() || !b.Visible() {
				t.Error("new body should be enabled, active and visible")
			}
		})
	}
}

func TestGravityAccumulates(t *testing.T) {
	w := newTestWorld()
	b := w.CreateBody(400, 100, "ball", false)

	for i := 0; i < 60; i++ {
		w.Step(tick)
	}

	_, vy := b.Velocity()
	if !almostEqual(vy, 300) {
		t.Errorf("vy after 1s = %v, want 300", vy)
	}
	if b.Y() <= 100 {
		t.Errorf("body did not fall: y = %v", b.Y())
	}
}

func TestNoGravityWhenDisallowed(t *testing.T) {
	w := newTestWorld()
	b := w.CreateBody(400, 100, "ball", false)
	b.SetAllowGravity(false)
	b.SetVelocity(0, 20)

	w.Step(tick)

	_, vy := b.Velocity()
	if vy != 20 {
		t.Errorf("vy = %v, want 20", vy)
	}
}

func TestLandsOnStaticGroup(t *testing.T) {
	w := newTestWorld()
	ground := w.NewStaticGroup()
	floor := ground.Create(400, 568, "ground")
	floor.SetScale(2).RefreshBody()
	before := floor.Bounds()

	player := w.CreateBody(100, 450, "player", false)
	player.SetBounce(0.2)
	w.AddCollider(player, ground, nil)

	if !ground.IsStatic() || !floor.IsStatic() || player.IsStatic() {
		t.Fatal("only the ground should be static")
	}

	for i := 0; i < 240; i++ {
		w.Step(tick)
	}

	if floor.Bounds() != before {
		t.Errorf("static body moved: %+v -> %+v", before, floor.Bounds())
	}
	if !player.TouchingDown() {
		t.Fatal("player should rest on the ground")
	}
	if got := player.Bounds().Bottom(); !almostEqual(got, 536) {
		t.Errorf("player bottom = %v, want 536", got)
	}
}

func TestStaticScaleNeedsRefresh(t *testing.T) {
	w := newTestWorld()
	g := w.NewStaticGroup()
	b := g.Create(400, 568, "ground")
	b.SetScale(2)

	if bw, _ := b.Size(); bw != 400 {
		t.Errorf("static body resized before refresh: w = %v", bw)
	}
	if d := b.DisplayBounds(); d.W != 800 {
		t.Errorf("display width = %v, want 800", d.W)
	}

	b.RefreshBody()
	if bw, bh := b.Size(); bw != 800 || bh != 64 {
		t.Errorf("refreshed size = %vx%v, want 800x64", bw, bh)
	}
}

func TestWorldBoundsBounce(t *testing.T) {
	w := newTestWorld()
	b := w.CreateBody(790, 300, "ball", false)
	b.SetAllowGravity(false)
	b.SetCollideWorldBounds(true)
	b.SetBounce(1)
	b.SetVelocity(600, 0)

	w.Step(tick)

	if !b.Blocked().Right {
		t.Error("expected right side blocked")
	}
	if b.Touching().Right {
		t.Error("world bounds must not set touching")
	}
	vx, _ := b.Velocity()
	if vx != -600 {
		t.Errorf("vx = %v, want -600", vx)
	}
	if got := b.Bounds().Right(); got > 800 {
		t.Errorf("body escaped the world: right = %v", got)
	}
}

func TestSideHitStopsHorizontalMotion(t *testing.T) {
	w := newTestWorld()
	walls := w.NewStaticGroup()
	walls.Create(300, 300, "ball")

	b := w.CreateBody(280, 300, "ball", false)
	b.SetAllowGravity(false)
	b.SetVelocity(600, 0)
	w.AddCollider(b, walls, nil)

	w.Step(tick)

	if !b.Touching().Right {
		t.Fatal("expected contact on the right")
	}
	if got := b.Bounds().Right(); !almostEqual(got, 293) {
		t.Errorf("right edge = %v, want 293", got)
	}
	if vx, _ := b.Velocity(); vx != 0 {
		t.Errorf("vx = %v, want 0", vx)
	}
}

func TestOverlapCallbackDoesNotSeparate(t *testing.T) {
	w := newTestWorld()
	player := w.CreateBody(200, 300, "player", false)
	player.SetAllowGravity(false)
	coins := w.NewGroup(nil)
	coin := coins.Create(205, 300, "coin")
	coin.SetAllowGravity(false)

	var calls int
	w.AddOverlap(player, coins, func(a, b *Body) {
		calls++
		if a != player || b != coin {
			t.Errorf("callback order = (%d, %d), want (%d, %d)", a.ID(), b.ID(), player.ID(), coin.ID())
		}
		b.DisableBody(true, true)
	})

	w.Step(tick)
	w.Step(tick)

	if calls != 1 {
		t.Errorf("callback calls = %d, want 1", calls)
	}
	if x := player.X(); x != 200 {
		t.Errorf("overlap moved the player to %v", x)
	}
	if coins.CountActive(true) != 0 {
		t.Errorf("active coins = %d, want 0", coins.CountActive(true))
	}
}

func TestColliderSeparatesDynamicBodies(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(200, 300, "ball", false)
	b := w.CreateBody(210, 300, "ball", false)
	a.SetAllowGravity(false)
	b.SetAllowGravity(false)

	var hits int
	w.AddCollider(a, b, func(_, _ *Body) { hits++ })
	w.Step(tick)

	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
	if a.Bounds().Intersects(b.Bounds()) {
		t.Error("bodies still intersect after separation")
	}
	if !a.Touching().Right || !b.Touching().Left {
		t.Errorf("touching a=%+v b=%+v", a.Touching(), b.Touching())
	}
}

func TestPauseStopsEverything(t *testing.T) {
	w := newTestWorld()
	a := w.CreateBody(200, 300, "ball", false)
	b := w.CreateBody(205, 300, "ball", false)

	var hits int
	w.AddCollider(a, b, func(_, _ *Body) {
		hits++
		w.Pause()
	})
	w.AddOverlap(a, b, func(_, _ *Body) { hits++ })

	w.Step(tick)
	if hits != 1 {
		t.Fatalf("hits = %d, want 1 (processing must stop once paused)", hits)
	}

	ax, ay := a.Position()
	for i := 0; i < 10; i++ {
		w.Step(tick)
	}
	if x, y := a.Position(); x != ax || y != ay {
		t.Errorf("body moved while paused: (%v,%v) -> (%v,%v)", ax, ay, x, y)
	}
	if hits != 1 {
		t.Errorf("callbacks fired while paused: %d", hits)
	}
	if w.Steps() != 1 {
		t.Errorf("steps = %d, want 1", w.Steps())
	}

	w.Resume()
	if w.IsPaused() {
		t.Error("resume did not clear pause")
	}
}

func TestEnableBodyReset(t *testing.T) {
	w := newTestWorld()
	b := w.CreateBody(100, 300, "coin", false)
	b.SetVelocity(50, 50)
	b.DisableBody(true, true)

	if b.Enabled() || b.Active() || b.Visible() {
		t.Fatal("body should be disabled, inactive and hidden")
	}

	w.Step(tick)
	if x, y := b.Position(); x != 100 || y != 300 {
		t.Errorf("disabled body moved to (%v,%v)", x, y)
	}

	b.EnableBody(true, 100, 0, true, true)
	if x, y := b.Position(); x != 100 || y != 0 {
		t.Errorf("position = (%v,%v), want (100,0)", x, y)
	}
	if vx, vy := b.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("velocity = (%v,%v), want zero", vx, vy)
	}
	if !b.Enabled() || !b.Active() || !b.Visible() {
		t.Error("body should be enabled, active and visible")
	}
}

func TestGroupConfigPlacement(t *testing.T) {
	w := newTestWorld()
	g := w.NewGroup(&GroupConfig{Key: "coin", Repeat: 11, SetXY: SetXY{X: 12, Y: 0, StepX: 70}})

	if g.Len() != 12 {
		t.Fatalf("len = %d, want 12", g.Len())
	}
	for i, b := range g.Children() {
		want := 12 + 70*float64(i)
		if b.X() != want || b.Y() != 0 {
			t.Errorf("child %d at (%v,%v), want (%v,0)", i, b.X(), b.Y(), want)
		}
	}

	var visited int
	g.Iterate(func(b *Body) {
		visited++
		g.Create(0, 0, "coin")
	})
	if visited != 12 {
		t.Errorf("iterate visited %d, want 12", visited)
	}
}

func TestSpriteAnimation(t *testing.T) {
	mgr := anim.NewManager()
	if err := mgr.Create(anim.Animation{
		Key:       "walk",
		Frames:    anim.GenerateFrameNumbers("player", 5, 8),
		FrameRate: 10,
		Repeat:    anim.RepeatForever,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	w := newTestWorld()
	s := w.NewSprite(100, 100, "player", mgr)
	s.Play("walk", true)

	if s.Frame() != 5 {
		t.Errorf("frame = %d, want 5", s.Frame())
	}
	s.UpdateAnimation(0.1)
	if s.Frame() != 6 {
		t.Errorf("frame after 0.1s = %d, want 6", s.Frame())
	}
	if s.CurrentAnimation() != "walk" {
		t.Errorf("animation = %q", s.CurrentAnimation())
	}
}
