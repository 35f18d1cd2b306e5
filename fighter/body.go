package fighter

// Fixture describes one rectangular shape attached to a character body.
// Rect is relative to the body position.
type Fixture struct {
	Kind     BoxKind
	Rect     Rect
	Tag      string
	Category uint
	Mask     uint
	// Sensor fixtures report overlaps but produce no contact response.
	Sensor bool
}

// FixtureFor derives the fixture of a box, mirrored when facing left.
func FixtureFor(b Box, facingLeft bool) Fixture {
	r := b.Rect
	if facingLeft {
		r = r.MirrorX()
	}
	cat, mask := b.Kind.Filter()
	return Fixture{
		Kind:     b.Kind,
		Rect:     r,
		Tag:      b.Tag,
		Category: cat,
		Mask:     mask,
		Sensor:   !b.Kind.IsPhysical(),
	}
}

// Body is the slice of a rigid body that a character is allowed to drive.
// The state machine is the body's only writer.
type Body interface {
	Position() Vec
	SetPosition(p Vec)
	Mass() float64
	ApplyImpulse(impulse Vec)
	// ClearFixtures removes every fixture owned by the body.
	ClearFixtures()
	AddFixture(f Fixture)
}
