package fighter

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ohko/common"
)

// Vec is the vector type shared with the physics world.
type Vec = cp.Vector

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o overlap with non-zero area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

func (r Rect) Translate(v Vec) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// MirrorX flips r about the vertical axis through the origin.
func (r Rect) MirrorX() Rect {
	return Rect{X: -(r.X + r.W), Y: r.Y, W: r.W, H: r.H}
}

func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// BoxKind discriminates the Box variants.
type BoxKind uint8

const (
	BoxCollision BoxKind = iota + 1
	BoxHurt
	BoxHit
)

func (k BoxKind) String() string {
	switch k {
	case BoxCollision:
		return "CollisionBox"
	case BoxHurt:
		return "HurtBox"
	case BoxHit:
		return "HitBox"
	default:
		return fmt.Sprintf("BoxKind(%d)", uint8(k))
	}
}

// ParseBoxKind maps a document type tag to a BoxKind.
func ParseBoxKind(s string) (BoxKind, error) {
	switch s {
	case "CollisionBox":
		return BoxCollision, nil
	case "HurtBox":
		return BoxHurt, nil
	case "HitBox":
		return BoxHit, nil
	}
	return 0, fmt.Errorf("fighter: unknown box type %q", s)
}

// IsPhysical reports whether the box takes part in rigid-body contact.
func (k BoxKind) IsPhysical() bool {
	return k == BoxCollision
}

// IsCombat reports whether the box is an attack or a vulnerable region.
func (k BoxKind) IsCombat() bool {
	return k == BoxHurt || k == BoxHit
}

// Collision categories. Hit regions only meet hurt regions and the other
// way around; neither touches terrain.
const (
	CategoryTerrain uint = 1 << iota
	CategoryHurt
	CategoryHit
)

// Filter returns the category and mask bits for fixtures of this kind.
func (k BoxKind) Filter() (category, mask uint) {
	switch k {
	case BoxCollision:
		return CategoryTerrain, CategoryTerrain
	case BoxHurt:
		return CategoryHurt, CategoryHit
	case BoxHit:
		return CategoryHit, CategoryHurt
	default:
		panic(fmt.Sprintf("fighter: no collision filter for %v", k))
	}
}

// Box is a tagged rectangle relative to the character origin.
// Tag is only meaningful for CollisionBox, DamageMultiplier only for HitBox.
type Box struct {
	Kind             BoxKind
	Rect             Rect
	Tag              string
	DamageMultiplier float64
}

// EffectKind discriminates the Effect variants.
type EffectKind uint8

const (
	EffectMove EffectKind = iota + 1
)

func (k EffectKind) String() string {
	switch k {
	case EffectMove:
		return "MoveEffect"
	default:
		return fmt.Sprintf("EffectKind(%d)", uint8(k))
	}
}

func ParseEffectKind(s string) (EffectKind, error) {
	if s == "MoveEffect" {
		return EffectMove, nil
	}
	return 0, fmt.Errorf("fighter: unknown effect type %q", s)
}

// Effect is a non-collision per-frame behaviour.
type Effect struct {
	Kind        EffectKind
	Vector      Vec
	SpeedFactor float64
}

// Displacement is the position delta contributed by a move effect.
// The direction is mirrored on X when facing left.
func (e Effect) Displacement(facingLeft bool) Vec {
	if e.Kind != EffectMove {
		return Vec{}
	}
	d := common.Normalize(e.Vector).Mult(e.SpeedFactor)
	return common.MirrorX(d, facingLeft)
}

// FrameConfig is the set of regions and effects active at one frame offset.
type FrameConfig struct {
	Boxes   []Box
	Effects []Effect
}

func (f FrameConfig) MoveEffects() int {
	n := 0
	for _, e := range f.Effects {
		if e.Kind == EffectMove {
			n++
		}
	}
	return n
}

// StateConfig is the static configuration of a single state.
type StateConfig struct {
	AnimationSource string
	AnimationTag    string
	// Continuation is entered when the animation completes one loop.
	// StateNone means the state has no automatic continuation.
	Continuation StateID
	// Frames is keyed by offset from the animation's start frame.
	Frames map[int]FrameConfig
	// AllFrames is merged into every frame when non-nil.
	AllFrames *FrameConfig
}

// FrameAt returns the effective configuration at a frame offset: the
// all-frames overlay followed by the offset's own entry. ok is false when
// neither exists, which is distinct from an explicitly empty frame.
func (c *StateConfig) FrameAt(offset int) (FrameConfig, bool) {
	if c == nil {
		return FrameConfig{}, false
	}
	frame, hasFrame := c.Frames[offset]
	if c.AllFrames == nil {
		return frame, hasFrame
	}
	if !hasFrame {
		return *c.AllFrames, true
	}
	merged := FrameConfig{
		Boxes:   make([]Box, 0, len(c.AllFrames.Boxes)+len(frame.Boxes)),
		Effects: make([]Effect, 0, len(c.AllFrames.Effects)+len(frame.Effects)),
	}
	merged.Boxes = append(append(merged.Boxes, c.AllFrames.Boxes...), frame.Boxes...)
	merged.Effects = append(append(merged.Effects, c.AllFrames.Effects...), frame.Effects...)
	return merged, true
}
