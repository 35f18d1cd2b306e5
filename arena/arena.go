package arena

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/milk9111/ohko/common"
	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/ecs/component"
	"github.com/milk9111/ohko/ecs/system"
	"github.com/milk9111/ohko/fighter"
	"github.com/milk9111/ohko/physics"
	"github.com/milk9111/ohko/prefabs"
	"golang.org/x/image/colornames"
)

var ErrNoCharacter = errors.New("arena: no character")

// Config describes one scene.
type Config struct {
	Bounds  fighter.Rect
	Gravity fighter.Vec
	// FloorY is the top edge of the ground strip.
	FloorY    float64
	Spawn     fighter.Vec
	CellSize  int
	Dummy     bool
	DummyGap  float64
	Script    *prefabs.InputScript
	Verbose   bool
	HullColor color.Color
}

func DefaultConfig() Config {
	w, h := float64(common.BaseWidth), float64(common.BaseHeight)
	floor := h * 0.55
	return Config{
		Bounds:    fighter.Rect{X: 0, Y: 0, W: w, H: h},
		Gravity:   fighter.Vec{Y: 900},
		FloorY:    floor,
		Spawn:     fighter.Vec{X: w / 2, Y: floor - 9},
		CellSize:  16,
		DummyGap:  20,
		HullColor: colornames.Goldenrod,
	}
}

// Arena is a playable scene: physics, terrain, the hero and an optional
// training dummy, updated by one scheduler.
type Arena struct {
	cfg       Config
	world     *ecs.World
	physics   *physics.World
	scheduler *ecs.Scheduler
	collision *system.CollisionSystem
	char      *prefabs.Character

	hero  ecs.Entity
	dummy ecs.Entity
	ticks int
}

func New(ctx context.Context, cfg Config, char *prefabs.Character) (*Arena, error) {
	if char == nil || char.Type == nil {
		return nil, ErrNoCharacter
	}
	a := &Arena{
		cfg:     cfg,
		world:   ecs.NewWorld(),
		physics: physics.NewWorld(cfg.Gravity),
		char:    char,
	}
	a.collision = system.NewCollisionSystem(cfg.Bounds, cfg.CellSize)
	a.scheduler = ecs.NewScheduler(
		system.NewScriptInputSystem(ctx),
		system.NewPadInputSystem(),
		system.NewPhysicsSystem(a.physics),
		system.NewCharacterSystem(),
		a.collision,
		system.NewWhiteFlashSystem(),
	)

	if err := a.addFloor(); err != nil {
		return nil, err
	}

	hero, err := a.spawn("hero", cfg.Spawn, false)
	if err != nil {
		return nil, err
	}
	a.hero = hero
	if err := ecs.Add(a.world, hero, component.PadInputComponent.Kind(), &component.PadInput{Pad: fighter.NewControlPad()}); err != nil {
		return nil, err
	}
	if cfg.Script != nil {
		if err := ecs.Add(a.world, hero, component.InputScriptComponent.Kind(), &component.InputScript{Script: cfg.Script}); err != nil {
			return nil, err
		}
	}

	if cfg.Dummy {
		pos := cfg.Spawn.Add(fighter.Vec{X: cfg.DummyGap})
		dummy, err := a.spawn("dummy", pos, true)
		if err != nil {
			return nil, err
		}
		a.dummy = dummy
	}
	return a, nil
}

func (a *Arena) World() *ecs.World { return a.world }

func (a *Arena) Physics() *physics.World { return a.physics }

func (a *Arena) Scheduler() *ecs.Scheduler { return a.scheduler }

func (a *Arena) Bounds() fighter.Rect { return a.collision.Bounds() }

func (a *Arena) FloorY() float64 { return a.cfg.FloorY }

func (a *Arena) Ticks() int { return a.ticks }

func (a *Arena) Character() *prefabs.Character { return a.char }

func (a *Arena) Hero() ecs.Entity { return a.hero }

// Dummy returns the training dummy, if one was spawned.
func (a *Arena) Dummy() (ecs.Entity, bool) {
	return a.dummy, a.dummy.Valid() && ecs.IsAlive(a.world, a.dummy)
}

func (a *Arena) Controller(e ecs.Entity) *fighter.Controller {
	ch, ok := ecs.Get(a.world, e, component.CharacterComponent.Kind())
	if !ok {
		return nil
	}
	return ch.Controller
}

func (a *Arena) HeroController() *fighter.Controller { return a.Controller(a.hero) }

// Pad returns the hero's pointer buffer.
func (a *Arena) Pad() *component.PadInput {
	pad, _ := ecs.Get(a.world, a.hero, component.PadInputComponent.Kind())
	return pad
}

// Input returns the hero's pending combo input.
func (a *Arena) Input() *component.ComboInput {
	in, _ := ecs.Get(a.world, a.hero, component.ComboInputComponent.Kind())
	return in
}

// Step advances the scene by one fixed tick and returns its events.
func (a *Arena) Step(dt time.Duration) []ecs.Event {
	a.scheduler.Update(a.world, dt)
	a.ticks++
	return ecs.Events(a.world).Drain()
}

// Reload swaps every character onto a new character type. Each one keeps
// its position and facing but restarts in the new type's initial state.
// The previous type stays in place when the new one cannot be spawned.
func (a *Arena) Reload(char *prefabs.Character) error {
	if char == nil || char.Type == nil {
		return ErrNoCharacter
	}

	type swap struct {
		ch   *component.Character
		pb   *component.PhysicsBody
		ctrl *fighter.Controller
		body *physics.Body
	}
	var (
		swaps []swap
		err   error
	)
	ecs.ForEach2(a.world, component.CharacterComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, ch *component.Character, pb *component.PhysicsBody) {
		if err != nil || ch.Controller == nil {
			return
		}
		body := a.newBody(char, ch.Controller.Position())
		ctrl, cerr := a.newController(char, body, ch.Controller.FacingLeft())
		if cerr != nil {
			a.physics.RemoveBody(body)
			err = fmt.Errorf("arena: reload %v: %w", e, cerr)
			return
		}
		swaps = append(swaps, swap{ch: ch, pb: pb, ctrl: ctrl, body: body})
	})
	if err != nil {
		for _, s := range swaps {
			a.physics.RemoveBody(s.body)
		}
		return err
	}

	for _, s := range swaps {
		a.physics.RemoveBody(s.pb.Body)
		s.ch.Controller = s.ctrl
		s.pb.Body = s.body
	}
	a.char = char
	return nil
}

// ApplyChange reacts to an edited document or script. Failures are logged
// and the running scene is left untouched.
func (a *Arena) ApplyChange(ch prefabs.Change) {
	if ch.Script {
		sc, ok := ecs.Get(a.world, a.hero, component.InputScriptComponent.Kind())
		if !ok || sc.Script == nil {
			return
		}
		script, err := prefabs.LoadInputScript(ch.Name())
		if err != nil {
			log.Printf("arena: reload %s: %v", ch.Name(), err)
			return
		}
		sc.Script = script
		log.Printf("arena: reloaded script %s", ch.Name())
		return
	}

	if ch.Name() != prefabs.HeroFile {
		return
	}
	char, err := prefabs.LoadHero()
	if err == nil {
		err = a.Reload(char)
	}
	if err != nil {
		log.Printf("arena: reload %s: %v; keeping previous character", ch.Name(), err)
		return
	}
	log.Printf("arena: reloaded %s", ch.Name())
}

// PollReload applies every change the watcher has reported so far.
func (a *Arena) PollReload(w *prefabs.Watcher) {
	if w == nil {
		return
	}
	for {
		select {
		case ch, ok := <-w.Events:
			if !ok {
				return
			}
			a.ApplyChange(ch)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("arena: watcher: %v", err)
		default:
			return
		}
	}
}

func (a *Arena) addFloor() error {
	tag := a.char.Type.GroundTag
	if tag == "" {
		tag = "ground"
	}
	b := a.Bounds()
	floor := fighter.Rect{X: b.X, Y: a.cfg.FloorY, W: b.W, H: b.Y + b.H - a.cfg.FloorY}
	a.physics.AddStaticBox(floor, tag)

	e := ecs.CreateEntity(a.world)
	for _, err := range []error{
		ecs.Add(a.world, e, component.NameComponent.Kind(), &component.Name{Value: "floor"}),
		ecs.Add(a.world, e, component.TerrainComponent.Kind(), &component.Terrain{Rect: floor, Tag: tag}),
	} {
		if err != nil {
			return fmt.Errorf("arena: floor: %w", err)
		}
	}
	return nil
}

func (a *Arena) spawn(name string, pos fighter.Vec, facingLeft bool) (ecs.Entity, error) {
	body := a.newBody(a.char, pos)
	ctrl, err := a.newController(a.char, body, facingLeft)
	if err != nil {
		a.physics.RemoveBody(body)
		return ecs.NoEntity, fmt.Errorf("arena: spawn %s: %w", name, err)
	}

	hull := color.Color(a.cfg.HullColor)
	if c := a.char.Spec.Body.Color; c != nil && c.Color != nil {
		hull = c.Color
	}
	if hull == nil {
		hull = colornames.Goldenrod
	}

	e := ecs.CreateEntity(a.world)
	for _, err := range []error{
		ecs.Add(a.world, e, component.NameComponent.Kind(), &component.Name{Value: name}),
		ecs.Add(a.world, e, component.CharacterComponent.Kind(), &component.Character{Controller: ctrl}),
		ecs.Add(a.world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body}),
		ecs.Add(a.world, e, component.ComboInputComponent.Kind(), &component.ComboInput{}),
		ecs.Add(a.world, e, component.AppearanceComponent.Kind(), &component.Appearance{Hull: hullRect(a.char), Color: hull}),
	} {
		if err != nil {
			return ecs.NoEntity, err
		}
	}
	return e, nil
}

func (a *Arena) newBody(char *prefabs.Character, pos fighter.Vec) *physics.Body {
	return a.physics.NewBody(pos, char.Spec.Body.Mass, hullRect(char))
}

func (a *Arena) newController(char *prefabs.Character, body *physics.Body, facingLeft bool) (*fighter.Controller, error) {
	ctrl, err := fighter.NewController(char.Type, body)
	if err != nil {
		return nil, err
	}
	ctrl.Verbose = a.cfg.Verbose
	ctrl.SetFacingLeft(facingLeft)
	return ctrl, nil
}

func hullRect(char *prefabs.Character) fighter.Rect {
	w, h := char.Spec.Body.Width, char.Spec.Body.Height
	return fighter.Rect{X: -w / 2, Y: -h / 2, W: w, H: h}
}
