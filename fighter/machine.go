package fighter

import (
	"errors"
	"fmt"
	"time"
)

var ErrNilBody = errors.New("fighter: nil body")

// StateMachine binds the current state to its animation timeline and to
// the fixtures of the character's body.
type StateMachine struct {
	char       *CharacterType
	body       Body
	timelines  map[StateID]*Timeline
	current    StateID
	facingLeft bool
	watcher    continuationWatcher

	frame    FrameConfig
	hasFrame bool
}

// NewStateMachine creates a machine in the character's initial state.
func NewStateMachine(char *CharacterType, body Body) (*StateMachine, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := char.Validate(); err != nil {
		return nil, err
	}
	m := &StateMachine{
		char:      char,
		body:      body,
		timelines: make(map[StateID]*Timeline, len(char.States)),
	}
	for _, s := range char.States {
		def, err := char.Animation(s)
		if err != nil {
			return nil, err
		}
		m.timelines[s] = NewTimeline(def)
	}
	if err := m.SetState(char.Initial); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *StateMachine) Current() StateID { return m.current }

func (m *StateMachine) FacingLeft() bool { return m.facingLeft }

func (m *StateMachine) Body() Body { return m.body }

// Timeline returns the timeline of the current state.
func (m *StateMachine) Timeline() *Timeline { return m.timelines[m.current] }

// Offset is the current frame relative to the state's animation start.
func (m *StateMachine) Offset() int {
	if tl := m.Timeline(); tl != nil {
		return tl.Offset()
	}
	return 0
}

// FrameConfig returns the effective configuration at the current frame.
func (m *StateMachine) FrameConfig() (FrameConfig, bool) {
	return m.frame, m.hasFrame
}

// SetState stops and rewinds the active timeline, then starts s from its
// first frame, rebuilds fixtures and arms the continuation watcher.
func (m *StateMachine) SetState(s StateID) error {
	next, ok := m.timelines[s]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, s)
	}
	if m.current != StateNone {
		if prev := m.timelines[m.current]; prev != nil {
			prev.Stop()
			prev.Reset()
		}
	}

	m.current = s
	next.Reset()
	next.SetFlipH(m.facingLeft)
	next.Play()
	m.refreshFrame()

	def := next.Def()
	m.watcher.arm(def.Start, def.FrameCount, m.char.Configs[s].Continuation)
	return nil
}

// SetFacingLeft flips playback and mirrors the body's fixtures.
func (m *StateMachine) SetFacingLeft(left bool) {
	if m.facingLeft == left {
		return
	}
	m.facingLeft = left
	if tl := m.Timeline(); tl != nil {
		tl.SetFlipH(left)
	}
	m.rebuildFixtures()
}

// Advance moves the active timeline forward. Fixtures are rebuilt when the
// frame index changes; the continuation fires at most once per activation.
// It reports the continuation state when one was entered.
func (m *StateMachine) Advance(dt time.Duration) (StateID, bool) {
	tl := m.Timeline()
	if tl == nil {
		return StateNone, false
	}
	before := tl.Frame()
	tl.Advance(dt)
	if tl.Frame() != before {
		m.refreshFrame()
	}

	next, ok := m.watcher.check(tl)
	if !ok {
		return StateNone, false
	}
	if err := m.SetState(next); err != nil {
		panic(fmt.Sprintf("fighter: continuation of %s: %v", m.current, err))
	}
	return next, true
}

func (m *StateMachine) refreshFrame() {
	m.frame, m.hasFrame = m.char.Configs[m.current].FrameAt(m.Offset())
	m.rebuildFixtures()
}

func (m *StateMachine) rebuildFixtures() {
	if m.body == nil {
		panic("fighter: fixture rebuild without a body")
	}
	m.body.ClearFixtures()
	if !m.hasFrame {
		return
	}
	for _, b := range m.frame.Boxes {
		m.body.AddFixture(FixtureFor(b, m.facingLeft))
	}
}
