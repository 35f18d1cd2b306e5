package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ohko/fighter"
)

// Body adapts a Chipmunk body to fighter.Body. Frame fixtures live next to
// the permanent hull and are replaced wholesale on every rebuild.
type Body struct {
	world *World
	body  *cp.Body
	group uint
	hull  *cp.Shape

	shapes   []*cp.Shape
	fixtures []fighter.Fixture
}

var _ fighter.Body = (*Body)(nil)

// Group is the collision group shared by all of this body's shapes.
func (b *Body) Group() uint { return b.group }

func (b *Body) Position() fighter.Vec {
	if b.body == nil {
		return fighter.Vec{}
	}
	return b.body.Position()
}

func (b *Body) SetPosition(p fighter.Vec) {
	if b.body == nil {
		return
	}
	b.body.SetPosition(p)
}

func (b *Body) Velocity() fighter.Vec {
	if b.body == nil {
		return fighter.Vec{}
	}
	return b.body.Velocity()
}

func (b *Body) Mass() float64 {
	if b.body == nil {
		return 0
	}
	return b.body.Mass()
}

// ApplyImpulse applies a linear impulse through the center of mass.
func (b *Body) ApplyImpulse(v fighter.Vec) {
	if b.body == nil {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(v, b.body.Position())
}

// ClearFixtures removes every frame fixture. The hull stays attached.
func (b *Body) ClearFixtures() {
	if b.world == nil {
		return
	}
	for _, s := range b.shapes {
		b.world.space.RemoveShape(s)
	}
	b.shapes = b.shapes[:0]
	b.fixtures = b.fixtures[:0]
}

// AddFixture attaches a rectangle in body coordinates. Combat boxes are
// sensors; all of a body's shapes share one group so they never collide
// with each other.
func (b *Body) AddFixture(f fighter.Fixture) {
	if b.body == nil {
		panic("physics: fixture added to a removed body")
	}
	shape := cp.NewBox2(b.body, bb(f.Rect), 0)
	shape.SetSensor(f.Sensor)
	shape.SetFilter(cp.NewShapeFilter(b.group, f.Category, f.Mask))
	shape.UserData = f
	if !f.Sensor {
		shape.SetFriction(0.8)
	}
	b.world.space.AddShape(shape)
	b.shapes = append(b.shapes, shape)
	b.fixtures = append(b.fixtures, f)
}

// Fixtures returns a copy of the attached frame fixtures.
func (b *Body) Fixtures() []fighter.Fixture {
	return append([]fighter.Fixture(nil), b.fixtures...)
}

// ShapeCount counts every shape the body owns in the space, hull included.
func (b *Body) ShapeCount() int {
	if b.body == nil {
		return 0
	}
	n := 0
	b.body.EachShape(func(*cp.Shape) { n++ })
	return n
}
