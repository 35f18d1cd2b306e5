package fighter

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownState   = errors.New("fighter: unknown state")
	ErrMissingConfig  = errors.New("fighter: state has no configuration")
	ErrMissingAnim    = errors.New("fighter: animation not found")
	ErrBadAnimation   = errors.New("fighter: unusable animation")
	ErrNoStates       = errors.New("fighter: character declares no states")
	ErrDuplicateState = errors.New("fighter: state declared twice")
)

// StateID names one state of a character's closed state set.
type StateID string

// StateNone is the sentinel "no state" value. It is never a member of a
// character's state set.
const StateNone StateID = ""

func (s StateID) String() string {
	if s == StateNone {
		return "<none>"
	}
	return string(s)
}

// CharacterType is the immutable, load-once description of one kind of
// character. It is shared by every runtime instance of that character.
type CharacterType struct {
	Name    string
	States  []StateID
	Initial StateID
	Configs map[StateID]*StateConfig

	// Animations is keyed by AnimationKey(source, tag).
	Animations map[string]AnimationDef
	Combos     *ComboTable
	Impulses   ImpulseTable

	// ImpulseSpeed scales transition impulses (multiplied by body mass).
	ImpulseSpeed float64
	// Fallback is added to the position on ticks without move effects.
	Fallback Vec
	// GroundTag marks CollisionBox regions that ground the character.
	GroundTag string
	// HitReaction is entered when a hurt region is struck. StateNone disables it.
	HitReaction StateID
}

// Has reports whether s belongs to the declared state set.
func (c *CharacterType) Has(s StateID) bool {
	if c == nil || s == StateNone {
		return false
	}
	_, ok := c.Configs[s]
	return ok
}

// Animation returns the timeline definition bound to state s.
func (c *CharacterType) Animation(s StateID) (AnimationDef, error) {
	cfg, ok := c.Configs[s]
	if !ok {
		return AnimationDef{}, fmt.Errorf("%w: %s", ErrUnknownState, s)
	}
	def, ok := c.Animations[AnimationKey(cfg.AnimationSource, cfg.AnimationTag)]
	if !ok {
		return AnimationDef{}, fmt.Errorf("%w: %s/%s (state %s)", ErrMissingAnim, cfg.AnimationSource, cfg.AnimationTag, s)
	}
	return def, nil
}

// Validate checks that the state set is complete and that every reference
// made by configs, combos and impulses points at a declared state.
func (c *CharacterType) Validate() error {
	if c == nil || len(c.States) == 0 {
		return ErrNoStates
	}
	for _, def := range c.Animations {
		if err := def.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[StateID]bool, len(c.States))
	for _, s := range c.States {
		if s == StateNone {
			return fmt.Errorf("%w: empty state name", ErrUnknownState)
		}
		if seen[s] {
			return fmt.Errorf("%w: %s", ErrDuplicateState, s)
		}
		seen[s] = true
		if _, ok := c.Configs[s]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingConfig, s)
		}
		if _, err := c.Animation(s); err != nil {
			return err
		}
	}
	for s, cfg := range c.Configs {
		if !seen[s] {
			return fmt.Errorf("%w: configured state %s is not declared", ErrUnknownState, s)
		}
		if cfg.Continuation != StateNone && !seen[cfg.Continuation] {
			return fmt.Errorf("%w: %s continues into %s", ErrUnknownState, s, cfg.Continuation)
		}
	}
	if !seen[c.Initial] {
		return fmt.Errorf("%w: initial state %s", ErrUnknownState, c.Initial)
	}
	if c.HitReaction != StateNone && !seen[c.HitReaction] {
		return fmt.Errorf("%w: hit reaction %s", ErrUnknownState, c.HitReaction)
	}
	for _, target := range c.Combos.Targets() {
		if !seen[target] {
			return fmt.Errorf("%w: combo target %s", ErrUnknownState, target)
		}
	}
	for tr := range c.Impulses {
		if !seen[tr.From] || !seen[tr.To] {
			return fmt.Errorf("%w: impulse %s -> %s", ErrUnknownState, tr.From, tr.To)
		}
	}
	return nil
}
