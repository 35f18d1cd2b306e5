package prefabs

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/milk9111/ohko/fighter"
)

var (
	ErrMissingState = errors.New("prefabs: declared state missing from document")
	ErrExtraState   = errors.New("prefabs: document configures an undeclared state")
	ErrBadFrameKey  = errors.New("prefabs: frame key must be a non-negative offset or \"all\"")

	ErrDuplicateImpulse = errors.New("prefabs: impulse transition defined twice")
)

const allFramesKey = "all"

// Build turns a decoded document into a validated CharacterType for the
// given closed state set. Every problem is fatal: the first one found is
// returned and no partial character is produced.
func Build(spec *CharacterSpec, states []fighter.StateID) (*fighter.CharacterType, error) {
	if spec == nil {
		return nil, fmt.Errorf("prefabs: nil character document")
	}
	declared := make(map[fighter.StateID]bool, len(states))
	for _, s := range states {
		declared[s] = true
	}

	names := make([]string, 0, len(spec.States))
	for name := range spec.States {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !declared[fighter.StateID(name)] {
			return nil, fmt.Errorf("%w: %s", ErrExtraState, name)
		}
	}

	char := &fighter.CharacterType{
		Name:         spec.Name,
		States:       append([]fighter.StateID(nil), states...),
		Initial:      fighter.StateID(spec.Initial),
		Configs:      make(map[fighter.StateID]*fighter.StateConfig, len(states)),
		Animations:   buildAnimations(spec.Animations),
		ImpulseSpeed: spec.ImpulseSpeed,
		Fallback:     fighter.Vec{X: spec.Fallback.X, Y: spec.Fallback.Y},
		GroundTag:    spec.GroundTag,
		HitReaction:  fighter.StateID(spec.HitReaction),
	}

	for _, s := range states {
		st, ok := spec.States[string(s)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingState, s)
		}
		cfg, err := buildState(st)
		if err != nil {
			return nil, fmt.Errorf("prefabs: state %s: %w", s, err)
		}
		char.Configs[s] = cfg
	}

	combos, err := buildCombos(spec.Combos)
	if err != nil {
		return nil, err
	}
	char.Combos = combos

	if len(spec.Impulses) > 0 {
		char.Impulses = make(fighter.ImpulseTable, len(spec.Impulses))
		for _, imp := range spec.Impulses {
			tr := fighter.Transition{From: fighter.StateID(imp.From), To: fighter.StateID(imp.To)}
			if _, dup := char.Impulses[tr]; dup {
				return nil, fmt.Errorf("%w: %s -> %s", ErrDuplicateImpulse, tr.From, tr.To)
			}
			char.Impulses[tr] = fighter.Vec{X: imp.Vector.X, Y: imp.Vector.Y}
		}
	}

	if err := char.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", spec.Name, err)
	}
	return char, nil
}

func buildAnimations(sheets map[string]map[string]ClipSpec) map[string]fighter.AnimationDef {
	out := make(map[string]fighter.AnimationDef)
	for source, clips := range sheets {
		for tag, clip := range clips {
			loop := true
			if clip.Loop != nil {
				loop = *clip.Loop
			}
			out[fighter.AnimationKey(source, tag)] = fighter.AnimationDef{
				Source:     source,
				Tag:        tag,
				Start:      clip.Start,
				FrameCount: clip.FrameCount,
				FPS:        clip.FPS,
				Loop:       loop,
			}
		}
	}
	return out
}

func buildState(st StateSpec) (*fighter.StateConfig, error) {
	cfg := &fighter.StateConfig{
		AnimationSource: st.AnimationName,
		AnimationTag:    st.AnimationTag,
	}
	if st.AutomaticContinuation != nil {
		cfg.Continuation = fighter.StateID(*st.AutomaticContinuation)
	}
	for key, fs := range st.Frames {
		frame, err := buildFrame(fs)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", key, err)
		}
		if key == allFramesKey {
			cfg.AllFrames = &frame
			continue
		}
		offset, err := strconv.Atoi(key)
		if err != nil || offset < 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadFrameKey, key)
		}
		if cfg.Frames == nil {
			cfg.Frames = make(map[int]fighter.FrameConfig)
		}
		cfg.Frames[offset] = frame
	}
	return cfg, nil
}

func buildFrame(fs FrameSpec) (fighter.FrameConfig, error) {
	var frame fighter.FrameConfig
	for _, bs := range fs.Boxes {
		kind, err := fighter.ParseBoxKind(bs.Type)
		if err != nil {
			return frame, err
		}
		box := fighter.Box{
			Kind: kind,
			Rect: fighter.Rect{
				X: float64(bs.Rectangle.Location[0]),
				Y: float64(bs.Rectangle.Location[1]),
				W: float64(bs.Rectangle.Size[0]),
				H: float64(bs.Rectangle.Size[1]),
			},
		}
		switch kind {
		case fighter.BoxCollision:
			box.Tag = bs.CollisionTag
		case fighter.BoxHit:
			box.DamageMultiplier = bs.DamageMultiplier
		}
		frame.Boxes = append(frame.Boxes, box)
	}
	for _, es := range fs.Effects {
		kind, err := fighter.ParseEffectKind(es.Type)
		if err != nil {
			return frame, err
		}
		frame.Effects = append(frame.Effects, fighter.Effect{
			Kind:        kind,
			Vector:      fighter.Vec{X: es.Vector.X, Y: es.Vector.Y},
			SpeedFactor: es.SpeedFactor,
		})
	}
	return frame, nil
}

func buildCombos(specs []ComboSpec) (*fighter.ComboTable, error) {
	entries := make([]fighter.ComboEntry, 0, len(specs))
	for i, cs := range specs {
		seq := make([]fighter.Position, 0, len(cs.Sequence))
		for _, name := range cs.Sequence {
			p, err := fighter.ParsePosition(name)
			if err != nil {
				return nil, fmt.Errorf("prefabs: combo %d: %w", i, err)
			}
			seq = append(seq, p)
		}
		entries = append(entries, fighter.ComboEntry{Sequence: seq, State: fighter.StateID(cs.State)})
	}
	table, err := fighter.NewComboTable(entries...)
	if err != nil {
		return nil, fmt.Errorf("prefabs: combos: %w", err)
	}
	return table, nil
}
