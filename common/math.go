package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	BaseWidth  = 500
	BaseHeight = 1000

	// TicksPerSecond is the fixed simulation rate.
	TicksPerSecond = 60
)

// Normalize returns v scaled to unit length, or the zero vector when v has
// no length.
func Normalize(v cp.Vector) cp.Vector {
	l := math.Hypot(v.X, v.Y)
	if l <= 1e-9 {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X / l, Y: v.Y / l}
}

// MirrorX flips the horizontal component when mirror is set.
func MirrorX(v cp.Vector, mirror bool) cp.Vector {
	if mirror {
		v.X = -v.X
	}
	return v
}
