package system

import (
	"context"
	"testing"
	"time"

	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/ecs/component"
	"github.com/milk9111/ohko/fighter"
	"github.com/milk9111/ohko/physics"
	"github.com/milk9111/ohko/prefabs"
)

const tick = time.Second / 60

type testScene struct {
	w       *ecs.World
	physics *physics.World
	hero    *prefabs.Character
}

func newScene(t *testing.T) *testScene {
	t.Helper()
	hero, err := prefabs.LoadHero()
	if err != nil {
		t.Fatalf("LoadHero: %v", err)
	}
	return &testScene{w: ecs.NewWorld(), physics: physics.NewWorld(fighter.Vec{}), hero: hero}
}

func (s *testScene) spawn(t *testing.T, pos fighter.Vec) (ecs.Entity, *fighter.Controller) {
	t.Helper()
	body := s.physics.NewBody(pos, s.hero.Spec.Body.Mass, fighter.Rect{})
	ctrl, err := fighter.NewController(s.hero.Type, body)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	e := ecs.CreateEntity(s.w)
	for _, err := range []error{
		ecs.Add(s.w, e, component.CharacterComponent.Kind(), &component.Character{Controller: ctrl}),
		ecs.Add(s.w, e, component.ComboInputComponent.Kind(), &component.ComboInput{}),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	return e, ctrl
}

func TestPadInputSystemFlushesOnRelease(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	pad := &component.PadInput{Pad: fighter.NewControlPad()}
	input := &component.ComboInput{}
	_ = ecs.Add(w, e, component.PadInputComponent.Kind(), pad)
	_ = ecs.Add(w, e, component.ComboInputComponent.Kind(), input)

	sys := NewPadInputSystem()
	pad.Events = append(pad.Events,
		component.PadEvent{Kind: component.PadPress, Position: fighter.Center},
		component.PadEvent{Kind: component.PadMove, Position: fighter.MiddleRight},
	)
	sys.Update(w, tick)
	if len(input.Sequences) != 0 || !pad.Pad.Started() || len(pad.Events) != 0 {
		t.Fatalf("gesture should still be in progress")
	}

	pad.Events = append(pad.Events, component.PadEvent{Kind: component.PadRelease})
	sys.Update(w, tick)
	if len(input.Sequences) != 1 || len(input.Sequences[0]) != 2 {
		t.Fatalf("expected one flushed sequence, got %v", input.Sequences)
	}
}

func TestScriptInputSystem(t *testing.T) {
	script, err := prefabs.CompileInputScript("inline", []byte(`
combo := tick == 1 ? ["Center", "MiddleLeft"] : undefined
facing_left := true
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	sc := &component.InputScript{Script: script}
	input := &component.ComboInput{}
	_ = ecs.Add(w, e, component.InputScriptComponent.Kind(), sc)
	_ = ecs.Add(w, e, component.ComboInputComponent.Kind(), input)

	sys := NewScriptInputSystem(context.Background())
	sys.Update(w, tick)
	if len(input.Sequences) != 0 || !input.FacingPending || !input.FacingLeft {
		t.Fatalf("tick 0 should only request facing: %+v", input)
	}
	sys.Update(w, tick)
	if len(input.Sequences) != 1 || input.Sequences[0][1] != fighter.MiddleLeft {
		t.Fatalf("tick 1 should push a combo: %+v", input)
	}
	if sc.Tick != 2 {
		t.Fatalf("expected tick counter 2, got %d", sc.Tick)
	}
}

func TestCharacterSystemConsumesInput(t *testing.T) {
	s := newScene(t)
	e, ctrl := s.spawn(t, fighter.Vec{})
	input, _ := ecs.Get(s.w, e, component.ComboInputComponent.Kind())
	input.Push([]fighter.Position{fighter.Center, fighter.MiddleRight})
	input.Push([]fighter.Position{fighter.TopLeft})
	input.Face(true)

	NewCharacterSystem().Update(s.w, tick)

	if ctrl.State() != prefabs.HeroPunchACharge || !ctrl.FacingLeft() {
		t.Fatalf("expected PunchACharge facing left, got %s left=%v", ctrl.State(), ctrl.FacingLeft())
	}
	if len(input.Sequences) != 0 || input.FacingPending {
		t.Fatalf("input should be consumed: %+v", input)
	}

	events := ecs.Events(s.w).Drain()
	if len(events) != 1 || events[0].Type != ecs.EventStateChanged {
		t.Fatalf("expected one state change event, got %v", events)
	}
	change := events[0].Data.(ecs.StateChange)
	if change.Entity != e || change.From != prefabs.HeroIdle || change.To != prefabs.HeroPunchACharge {
		t.Fatalf("unexpected change %+v", change)
	}
}

func TestCollisionSystemGroundsAndHits(t *testing.T) {
	s := newScene(t)
	_, attacker := s.spawn(t, fighter.Vec{X: 0, Y: 0})
	target, defender := s.spawn(t, fighter.Vec{X: 14, Y: 0})
	defender.SetFacingLeft(true)

	floor := ecs.CreateEntity(s.w)
	_ = ecs.Add(s.w, floor, component.TerrainComponent.Kind(), &component.Terrain{
		Rect: fighter.Rect{X: -100, Y: 8, W: 200, H: 20},
		Tag:  "ground",
	})

	if err := attacker.Machine().SetState(prefabs.HeroPunchA); err != nil {
		t.Fatal(err)
	}
	attacker.Machine().Advance(time.Second / 12)
	if attacker.Machine().Offset() != 1 {
		t.Fatalf("expected PunchA at offset 1, got %d", attacker.Machine().Offset())
	}

	sys := NewCollisionSystem(fighter.Rect{X: -200, Y: -200, W: 400, H: 400}, 16)
	sys.Update(s.w, tick)

	if !attacker.Grounded() || !defender.Grounded() {
		t.Fatalf("both characters stand on the floor")
	}
	if got := defender.Pending(); len(got) != 1 || got[0] != prefabs.HeroBack {
		t.Fatalf("defender should queue its hit reaction, got %v", got)
	}
	if len(attacker.Pending()) != 0 {
		t.Fatalf("attacker was not struck")
	}

	var hits []ecs.Hit
	for _, ev := range ecs.Events(s.w).Drain() {
		if ev.Type == ecs.EventHit {
			hits = append(hits, ev.Data.(ecs.Hit))
		}
	}
	if len(hits) != 1 || hits[0].Target != target || hits[0].DamageMultiplier != 1 {
		t.Fatalf("expected a single hit on the defender, got %+v", hits)
	}

	// A second pass over the same geometry must not queue the reaction twice.
	sys.Update(s.w, tick)
	if len(defender.Pending()) != 1 {
		t.Fatalf("reaction queued twice: %v", defender.Pending())
	}
}

func TestCollisionSystemIgnoresOutOfBounds(t *testing.T) {
	s := newScene(t)
	_, ctrl := s.spawn(t, fighter.Vec{X: 1000, Y: 1000})
	floor := ecs.CreateEntity(s.w)
	_ = ecs.Add(s.w, floor, component.TerrainComponent.Kind(), &component.Terrain{
		Rect: fighter.Rect{X: 900, Y: 1008, W: 200, H: 20},
		Tag:  "ground",
	})

	NewCollisionSystem(fighter.Rect{W: 100, H: 100}, 16).Update(s.w, tick)
	if ctrl.Grounded() {
		t.Fatalf("regions outside the bounds are not dispatched")
	}
}

func TestPhysicsSystemSteps(t *testing.T) {
	pw := physics.NewWorld(fighter.Vec{Y: 100})
	body := pw.NewBody(fighter.Vec{}, 1, fighter.Rect{})
	sys := NewPhysicsSystem(pw)
	sys.Update(nil, time.Second)
	if v := body.Velocity(); v.Y <= 0 {
		t.Fatalf("expected gravity to accelerate the body, got velocity %v", v)
	}
	sys.Update(nil, time.Second)
	if body.Position().Y <= 0 {
		t.Fatalf("expected the body to fall, got %v", body.Position())
	}
}

func TestWhiteFlashSystemBlinksStruckTarget(t *testing.T) {
	w := ecs.NewWorld()
	attacker, target := ecs.CreateEntity(w), ecs.CreateEntity(w)
	ecs.Events(w).Push(ecs.Event{Type: ecs.EventHit, Data: ecs.Hit{Attacker: attacker, Target: target, DamageMultiplier: 1}})

	sys := NewWhiteFlashSystem()
	sys.Update(w, tick)
	ecs.Events(w).Drain()

	wf, ok := ecs.Get(w, target, component.WhiteFlashComponent.Kind())
	if !ok || !wf.On || wf.Frames != hitFlashFrames {
		t.Fatalf("expected a fresh flash on the target, got %+v", wf)
	}
	if ecs.Has(w, attacker, component.WhiteFlashComponent.Kind()) {
		t.Fatal("attacker should not flash")
	}

	for i := 0; i < hitFlashInterval; i++ {
		sys.Update(w, tick)
	}
	if wf.On {
		t.Fatal("expected the flash to toggle off after one interval")
	}

	for i := 0; i < hitFlashFrames; i++ {
		sys.Update(w, tick)
	}
	if ecs.Has(w, target, component.WhiteFlashComponent.Kind()) {
		t.Fatal("expected the flash to expire")
	}
}

func TestWhiteFlashSystemSkipsDestroyedTarget(t *testing.T) {
	w := ecs.NewWorld()
	attacker, target := ecs.CreateEntity(w), ecs.CreateEntity(w)
	ecs.DestroyEntity(w, target)
	ecs.Events(w).Push(ecs.Event{Type: ecs.EventHit, Data: ecs.Hit{Attacker: attacker, Target: target, DamageMultiplier: 1}})

	NewWhiteFlashSystem().Update(w, tick)

	if ecs.Has(w, target, component.WhiteFlashComponent.Kind()) {
		t.Fatal("destroyed target should not flash")
	}
	if _, _, ok := ecs.First(w, component.WhiteFlashComponent.Kind()); ok {
		t.Fatal("expected no flash components")
	}
}
