package arcade

import "fmt"

// SetXY places the children of a new group: child i is at (X+i*StepX, Y+i*StepY).
type SetXY struct {
	X, Y         float64
	StepX, StepY float64
}

// GroupConfig pre-populates a group with 1+Repeat children of one texture.
type GroupConfig struct {
	Key    string
	Repeat int
	SetXY  SetXY
}

// Group is a collection of bodies that colliders can target as one.
type Group struct {
	world    *World
	tag      string
	static   bool
	children []*Body
}

// NewGroup creates a dynamic group. cfg may be nil for an empty group.
func (w *World) NewGroup(cfg *GroupConfig) *Group {
	g := w.newGroup(false)
	if cfg != nil {
		for i := 0; i <= cfg.Repeat; i++ {
			x := cfg.SetXY.X + float64(i)*cfg.SetXY.StepX
			y := cfg.SetXY.Y + float64(i)*cfg.SetXY.StepY
			g.Create(x, y, cfg.Key)
		}
	}
	return g
}

// NewStaticGroup creates a group whose children never move.
func (w *World) NewStaticGroup() *Group {
	return w.newGroup(true)
}

func (w *World) newGroup(static bool) *Group {
	w.nextID++
	return &Group{
		world:  w,
		tag:    fmt.Sprintf("group-%d", w.nextID),
		static: static,
	}
}

// Create adds a child centered on (x, y).
func (g *Group) Create(x, y float64, key string) *Body {
	b := g.world.CreateBody(x, y, key, g.static)
	b.obj.AddTags(g.tag)
	g.children = append(g.children, b)
	return b
}

// Children returns a copy of the children in creation order.
func (g *Group) Children() []*Body {
	return append([]*Body(nil), g.children...)
}

// Iterate calls fn for every child. Children added by fn are not visited.
func (g *Group) Iterate(fn func(*Body)) {
	for _, b := range g.Children() {
		fn(b)
	}
}

// CountActive counts the children whose active flag equals active.
func (g *Group) CountActive(active bool) int {
	n := 0
	for _, b := range g.children {
		if b.active == active {
			n++
		}
	}
	return n
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.children)
}

// IsStatic reports whether the group's children are static.
func (g *Group) IsStatic() bool {
	return g.static
}

func (g *Group) members() []*Body { return g.children }

func (g *Group) broadphaseTag() string { return g.tag }

func (g *Group) isStatic() bool { return g.static }
