package fighter

import (
	"fmt"
	"log"
	"time"
)

// Region is a box translated into world space.
type Region struct {
	Kind             BoxKind
	Rect             Rect
	Tag              string
	DamageMultiplier float64
}

// Collider is anything the collision dispatcher can pair up.
type Collider interface {
	Regions() []Region
	OnCollision(other Collider, own, theirs Region)
}

// Controller drives one runtime character: it buffers recognised combos,
// ticks the state machine, applies frame effects and transition impulses,
// and exposes world-space regions.
type Controller struct {
	char    *CharacterType
	machine *StateMachine
	body    Body

	queue     []StateID
	lastState StateID
	grounded  bool

	// Verbose logs recognised combos and state transitions.
	Verbose bool
}

// NewController spawns a character on body.
func NewController(char *CharacterType, body Body) (*Controller, error) {
	m, err := NewStateMachine(char, body)
	if err != nil {
		return nil, err
	}
	return &Controller{
		char:      char,
		machine:   m,
		body:      body,
		lastState: m.Current(),
	}, nil
}

func (c *Controller) Character() *CharacterType { return c.char }

func (c *Controller) Machine() *StateMachine { return c.machine }

func (c *Controller) State() StateID { return c.machine.Current() }

// LastState is the state recorded at the end of the previous tick.
func (c *Controller) LastState() StateID { return c.lastState }

func (c *Controller) Grounded() bool { return c.grounded }

func (c *Controller) FacingLeft() bool { return c.machine.FacingLeft() }

func (c *Controller) SetFacingLeft(left bool) { c.machine.SetFacingLeft(left) }

func (c *Controller) Position() Vec { return c.body.Position() }

// Pending returns a copy of the queued states, head first.
func (c *Controller) Pending() []StateID {
	return append([]StateID(nil), c.queue...)
}

// AddCombo recognises seq and queues its state. Sequences without a match
// are dropped silently; oversized or malformed ones are dropped and logged.
func (c *Controller) AddCombo(seq []Position) bool {
	key, err := EncodeCombo(seq)
	if err != nil {
		log.Printf("fighter: %s: discarding combo %v: %v", c.char.Name, seq, err)
		return false
	}
	s, ok := c.char.Combos.Lookup(key)
	if !ok {
		return false
	}
	if c.Verbose {
		log.Printf("fighter: %s: combo %v -> %s", c.char.Name, seq, s)
	}
	c.queue = append(c.queue, s)
	return true
}

// Enqueue appends a declared state to the pending queue.
func (c *Controller) Enqueue(s StateID) error {
	if !c.char.Has(s) {
		return fmt.Errorf("%w: %s", ErrUnknownState, s)
	}
	c.queue = append(c.queue, s)
	return nil
}

// Tick runs one simulation step:
//  1. drain at most one queued state,
//  2. apply the current frame's move effects (or the fallback),
//  3. advance the animation, which may fire a continuation,
//  4. apply the impulse keyed by (last state, current state),
//  5. clear the grounded flag.
func (c *Controller) Tick(dt time.Duration) {
	if len(c.queue) > 0 {
		next := c.queue[0]
		c.queue[0] = StateNone
		c.queue = c.queue[1:]
		if err := c.machine.SetState(next); err != nil {
			panic(fmt.Sprintf("fighter: queued state: %v", err))
		}
	}

	c.applyEffects()

	if next, ok := c.machine.Advance(dt); ok && c.Verbose {
		log.Printf("fighter: %s: continuation -> %s", c.char.Name, next)
	}

	current := c.machine.Current()
	if dir, ok := c.char.Impulses.Lookup(c.lastState, current); ok {
		c.body.ApplyImpulse(Impulse(dir, c.char.ImpulseSpeed, c.body.Mass(), c.FacingLeft()))
	}
	if c.Verbose && current != c.lastState {
		log.Printf("fighter: %s: %s -> %s", c.char.Name, c.lastState, current)
	}
	c.lastState = current

	c.grounded = false
}

func (c *Controller) applyEffects() {
	frame, _ := c.machine.FrameConfig()
	var delta Vec
	moves := 0
	for _, e := range frame.Effects {
		switch e.Kind {
		case EffectMove:
			delta = delta.Add(e.Displacement(c.FacingLeft()))
			moves++
		}
	}
	if moves == 0 {
		if c.grounded {
			return
		}
		delta = c.char.Fallback
	}
	c.body.SetPosition(c.body.Position().Add(delta))
}

// Regions returns the current frame's boxes in world space.
func (c *Controller) Regions() []Region {
	frame, ok := c.machine.FrameConfig()
	if !ok || len(frame.Boxes) == 0 {
		return nil
	}
	pos := c.body.Position()
	out := make([]Region, 0, len(frame.Boxes))
	for _, b := range frame.Boxes {
		r := b.Rect
		if c.FacingLeft() {
			r = r.MirrorX()
		}
		out = append(out, Region{
			Kind:             b.Kind,
			Rect:             r.Translate(pos),
			Tag:              b.Tag,
			DamageMultiplier: b.DamageMultiplier,
		})
	}
	return out
}

// OnCollision is invoked by the collision dispatcher for each overlapping
// pair of regions. A collision box touching ground grounds the character;
// a hurt box struck by a hit box queues the hit reaction.
func (c *Controller) OnCollision(other Collider, own, theirs Region) {
	switch own.Kind {
	case BoxCollision:
		if theirs.Kind == BoxCollision && c.char.GroundTag != "" && theirs.Tag == c.char.GroundTag {
			c.grounded = true
		}
	case BoxHurt:
		if theirs.Kind == BoxHit {
			c.react()
		}
	case BoxHit:
		// resolved by the struck character
	}
}

func (c *Controller) react() {
	reaction := c.char.HitReaction
	if reaction == StateNone || c.machine.Current() == reaction {
		return
	}
	for _, s := range c.queue {
		if s == reaction {
			return
		}
	}
	c.queue = append(c.queue, reaction)
}
