package physics

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ohko/fighter"
)

const defaultIterations = 20

// World owns the Chipmunk space, the static terrain and the character bodies.
type World struct {
	space     *cp.Space
	nextGroup uint
	bodies    map[*cp.Body]*Body
	terrain   []*cp.Shape
}

// NewWorld creates an empty space. Character motion comes from frame
// effects and impulses, so gravity is usually left at zero.
func NewWorld(gravity fighter.Vec) *World {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(gravity)
	return &World{
		space:  space,
		bodies: make(map[*cp.Body]*Body),
	}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Step advances the simulation by dt.
func (w *World) Step(dt time.Duration) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt.Seconds())
}

// NewBody adds a dynamic, rotation-locked body at pos. A non-empty hull
// is attached as a permanent solid shape so the body rests on terrain
// even on frames without collision boxes.
func (w *World) NewBody(pos fighter.Vec, mass float64, hull fighter.Rect) *Body {
	if mass <= 0 {
		mass = 1
	}
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(pos)
	w.space.AddBody(cpBody)

	w.nextGroup++
	b := &Body{
		world: w,
		body:  cpBody,
		group: w.nextGroup,
	}
	if hull.W > 0 && hull.H > 0 {
		cat, mask := fighter.BoxCollision.Filter()
		shape := cp.NewBox2(cpBody, bb(hull), 0)
		shape.SetFriction(0.8)
		shape.SetFilter(cp.NewShapeFilter(b.group, cat, mask))
		w.space.AddShape(shape)
		b.hull = shape
	}
	w.bodies[cpBody] = b
	return b
}

// RemoveBody takes b and all of its shapes out of the space.
func (w *World) RemoveBody(b *Body) {
	if w == nil || b == nil || b.body == nil {
		return
	}
	b.ClearFixtures()
	if b.hull != nil {
		w.space.RemoveShape(b.hull)
		b.hull = nil
	}
	w.space.RemoveBody(b.body)
	delete(w.bodies, b.body)
	b.body = nil
}

// AddStaticBox adds a solid terrain rectangle in world coordinates.
func (w *World) AddStaticBox(r fighter.Rect, tag string) *cp.Shape {
	cat, mask := fighter.BoxCollision.Filter()
	shape := cp.NewBox2(w.space.StaticBody, bb(r), 0)
	shape.SetFriction(0.8)
	shape.SetFilter(cp.NewShapeFilter(0, cat, mask))
	shape.UserData = tag
	w.space.AddShape(shape)
	w.terrain = append(w.terrain, shape)
	return shape
}

// ClearTerrain removes every static box.
func (w *World) ClearTerrain() {
	for _, s := range w.terrain {
		w.space.RemoveShape(s)
	}
	w.terrain = nil
}

// Bodies returns the number of live character bodies.
func (w *World) Bodies() int { return len(w.bodies) }

func bb(r fighter.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}
