package fighter

import (
	"testing"
	"time"
)

const tick = time.Second / 60

type fakeBody struct {
	pos      Vec
	mass     float64
	impulses []Vec
	fixtures []Fixture
	clears   int
}

func (b *fakeBody) Position() Vec        { return b.pos }
func (b *fakeBody) SetPosition(p Vec)    { b.pos = p }
func (b *fakeBody) Mass() float64        { return b.mass }
func (b *fakeBody) ApplyImpulse(v Vec)   { b.impulses = append(b.impulses, v) }
func (b *fakeBody) ClearFixtures()       { b.fixtures = nil; b.clears++ }
func (b *fakeBody) AddFixture(f Fixture) { b.fixtures = append(b.fixtures, f) }
func (b *fakeBody) kinds() []BoxKind {
	out := make([]BoxKind, 0, len(b.fixtures))
	for _, f := range b.fixtures {
		out = append(out, f.Kind)
	}
	return out
}

var (
	testHurt = Box{Kind: BoxHurt, Rect: Rect{X: -4, Y: -8, W: 8, H: 16}}
	testHit  = Box{Kind: BoxHit, Rect: Rect{X: 4, Y: -2, W: 6, H: 4}, DamageMultiplier: 1.5}
	testFeet = Box{Kind: BoxCollision, Rect: Rect{X: -4, Y: 6, W: 8, H: 2}, Tag: "feet"}
)

func testAnim(tag string, start, count int) AnimationDef {
	return AnimationDef{Source: "test", Tag: tag, Start: start, FrameCount: count, FPS: 60, Loop: true}
}

func newTestCharacter(t *testing.T) *CharacterType {
	t.Helper()
	combos, err := NewComboTable(
		ComboEntry{Sequence: []Position{Center, MiddleRight}, State: "Charge"},
		ComboEntry{Sequence: []Position{Center, MiddleLeft}, State: "Walk"},
	)
	if err != nil {
		t.Fatalf("combo table: %v", err)
	}
	cfg := func(tag string) *StateConfig {
		return &StateConfig{AnimationSource: "test", AnimationTag: tag}
	}
	idle := cfg("idle")
	idle.AllFrames = &FrameConfig{Boxes: []Box{testHurt, testFeet}}
	charge := cfg("charge")
	charge.Continuation = "Attack"
	charge.Frames = map[int]FrameConfig{
		0: {Boxes: []Box{testHurt}},
		1: {Boxes: []Box{testHurt, testHit}},
	}
	attack := cfg("attack")
	attack.Continuation = "Idle"
	attack.Frames = map[int]FrameConfig{0: {Boxes: []Box{testHit}}}
	walk := cfg("walk")
	walk.AllFrames = &FrameConfig{Effects: []Effect{{Kind: EffectMove, Vector: Vec{X: 3, Y: 4}, SpeedFactor: 2}}}
	long := cfg("long")
	long.Continuation = "Idle"
	flinch := cfg("flinch")
	flinch.Continuation = "Idle"

	anims := map[string]AnimationDef{}
	for _, d := range []AnimationDef{
		testAnim("idle", 0, 4),
		testAnim("charge", 10, 3),
		testAnim("attack", 20, 2),
		testAnim("walk", 30, 4),
		testAnim("long", 40, 5),
		testAnim("flinch", 50, 2),
	} {
		anims[AnimationKey(d.Source, d.Tag)] = d
	}

	return &CharacterType{
		Name:    "tester",
		States:  []StateID{"Idle", "Charge", "Attack", "Walk", "Long", "Flinch"},
		Initial: "Idle",
		Configs: map[StateID]*StateConfig{
			"Idle":   idle,
			"Charge": charge,
			"Attack": attack,
			"Walk":   walk,
			"Long":   long,
			"Flinch": flinch,
		},
		Animations: anims,
		Combos:     combos,
		Impulses: ImpulseTable{
			{From: "Charge", To: "Attack"}: {X: 0, Y: -1},
			{From: "Idle", To: "Walk"}:     {X: 2, Y: 0},
		},
		ImpulseSpeed: 10,
		Fallback:     Vec{X: 0, Y: 1},
		GroundTag:    "ground",
		HitReaction:  "Flinch",
	}
}

func newTestController(t *testing.T) (*Controller, *fakeBody) {
	t.Helper()
	body := &fakeBody{mass: 2}
	c, err := NewController(newTestCharacter(t), body)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, body
}

func nearly(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func nearlyVec(a, b Vec) bool {
	return nearly(a.X, b.X) && nearly(a.Y, b.Y)
}
