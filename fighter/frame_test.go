package fighter

import "testing"

func TestFrameAtMergesAllFrames(t *testing.T) {
	e := Effect{Kind: EffectMove, Vector: Vec{X: 1}, SpeedFactor: 1}
	f := Effect{Kind: EffectMove, Vector: Vec{Y: 1}, SpeedFactor: 2}
	cfg := &StateConfig{
		AllFrames: &FrameConfig{Effects: []Effect{e}},
		Frames:    map[int]FrameConfig{2: {Effects: []Effect{f}}},
	}

	cases := []struct {
		name   string
		offset int
		want   []Effect
	}{
		{"overlay_and_frame", 2, []Effect{e, f}},
		{"overlay_only", 0, []Effect{e}},
		{"overlay_past_end", 9, []Effect{e}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := cfg.FrameAt(c.offset)
			if !ok {
				t.Fatalf("expected a configuration at offset %d", c.offset)
			}
			if len(got.Effects) != len(c.want) {
				t.Fatalf("expected %d effects, got %d", len(c.want), len(got.Effects))
			}
			for i := range c.want {
				if got.Effects[i] != c.want[i] {
					t.Fatalf("effect %d: expected %+v, got %+v", i, c.want[i], got.Effects[i])
				}
			}
		})
	}
}

func TestFrameAtAbsenceIsDistinctFromEmpty(t *testing.T) {
	cfg := &StateConfig{Frames: map[int]FrameConfig{0: {}, 1: {Boxes: []Box{testHurt}}}}

	if _, ok := cfg.FrameAt(0); !ok {
		t.Fatalf("explicitly empty frame should be present")
	}
	if _, ok := cfg.FrameAt(2); ok {
		t.Fatalf("offset past the last configured frame should be absent")
	}
	if _, ok := (*StateConfig)(nil).FrameAt(0); ok {
		t.Fatalf("nil config should have no frames")
	}
}

func TestFrameAtDoesNotAliasOverlay(t *testing.T) {
	overlay := &FrameConfig{Boxes: []Box{testHurt}}
	cfg := &StateConfig{AllFrames: overlay, Frames: map[int]FrameConfig{0: {Boxes: []Box{testHit}}}}

	got, _ := cfg.FrameAt(0)
	got.Boxes[0].Tag = "mutated"
	if overlay.Boxes[0].Tag != "" {
		t.Fatalf("merged frame must not share storage with the overlay")
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: -3, W: 4, H: 6}
	if m := r.MirrorX(); m != (Rect{X: -6, Y: -3, W: 4, H: 6}) {
		t.Fatalf("unexpected mirror %+v", m)
	}
	if m := r.MirrorX().MirrorX(); m != r {
		t.Fatalf("mirroring twice should be identity, got %+v", m)
	}

	cases := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 2, W: 4, H: 4}, true},
		{"touching_edge", Rect{X: 6, Y: -3, W: 1, H: 1}, false},
		{"apart", Rect{X: 20, Y: 20, W: 1, H: 1}, false},
		{"contained", Rect{X: 3, Y: -2, W: 1, H: 1}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Intersects(c.o); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.o, got, c.want)
			}
			if got := c.o.Intersects(r); got != c.want {
				t.Fatalf("Intersects should be symmetric")
			}
		})
	}
}

func TestBoxKindFilters(t *testing.T) {
	collCat, collMask := BoxCollision.Filter()
	hurtCat, hurtMask := BoxHurt.Filter()
	hitCat, hitMask := BoxHit.Filter()

	if collCat&(hurtCat|hitCat) != 0 || hurtCat&hitCat != 0 {
		t.Fatalf("categories must be disjoint")
	}
	if hitMask != hurtCat || hurtMask != hitCat {
		t.Fatalf("hit and hurt must only select each other")
	}
	if hitMask&collCat != 0 || collMask&(hurtCat|hitCat) != 0 {
		t.Fatalf("combat regions must never meet terrain")
	}
	if !BoxCollision.IsPhysical() || BoxCollision.IsCombat() {
		t.Fatalf("collision box capabilities wrong")
	}
	if BoxHit.IsPhysical() || !BoxHit.IsCombat() || !BoxHurt.IsCombat() {
		t.Fatalf("combat box capabilities wrong")
	}
}

func TestParseKinds(t *testing.T) {
	for _, k := range []BoxKind{BoxCollision, BoxHurt, BoxHit} {
		got, err := ParseBoxKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseBoxKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseBoxKind("ShieldBox"); err == nil {
		t.Fatalf("expected an error for unknown box types")
	}
	if k, err := ParseEffectKind("MoveEffect"); err != nil || k != EffectMove {
		t.Fatalf("ParseEffectKind: %v, %v", k, err)
	}
}

func TestEffectDisplacement(t *testing.T) {
	e := Effect{Kind: EffectMove, Vector: Vec{X: 3, Y: 4}, SpeedFactor: 10}
	if got := e.Displacement(false); !nearlyVec(got, Vec{X: 6, Y: 8}) {
		t.Fatalf("expected (6,8), got %v", got)
	}
	if got := e.Displacement(true); !nearlyVec(got, Vec{X: -6, Y: 8}) {
		t.Fatalf("expected X mirrored, got %v", got)
	}
	zero := Effect{Kind: EffectMove, SpeedFactor: 5}
	if got := zero.Displacement(false); got != (Vec{}) {
		t.Fatalf("zero direction should not move, got %v", got)
	}
}

func TestFixtureFor(t *testing.T) {
	f := FixtureFor(testHit, true)
	if f.Rect != testHit.Rect.MirrorX() {
		t.Fatalf("fixture should be mirrored when facing left")
	}
	if !f.Sensor || f.Category != CategoryHit || f.Mask != CategoryHurt {
		t.Fatalf("unexpected hit fixture %+v", f)
	}
	if g := FixtureFor(testFeet, false); g.Sensor || g.Tag != "feet" || g.Category != CategoryTerrain {
		t.Fatalf("unexpected collision fixture %+v", g)
	}
}
