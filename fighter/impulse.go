package fighter

import "github.com/milk9111/ohko/common"

// Transition is an ordered (previous, current) state pair.
type Transition struct {
	From, To StateID
}

// ImpulseTable maps a transition to a world-space impulse direction.
type ImpulseTable map[Transition]Vec

func (t ImpulseTable) Lookup(from, to StateID) (Vec, bool) {
	if t == nil {
		return Vec{}, false
	}
	v, ok := t[Transition{From: from, To: to}]
	return v, ok
}

// Impulse scales the unit direction by speed and mass, mirrored on X when
// facing left.
func Impulse(dir Vec, speed, mass float64, facingLeft bool) Vec {
	v := common.Normalize(dir).Mult(speed * mass)
	return common.MirrorX(v, facingLeft)
}
