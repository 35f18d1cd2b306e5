package prefabs

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ohko/fighter"
)

// InputScript is a compiled tengo program that produces character input.
// Each run sees the global `tick`; afterwards `combo` (an array of
// position names, or undefined) and `facing_left` (optional bool) are read.
type InputScript struct {
	Name     string
	compiled *tengo.Compiled
}

// ScriptInput is what one run of an input script asked for.
type ScriptInput struct {
	Combo      []fighter.Position
	HasCombo   bool
	FacingLeft bool
	HasFacing  bool
}

// LoadInputScript reads and compiles a script by name.
func LoadInputScript(name string) (*InputScript, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return CompileInputScript(name, src)
}

func CompileInputScript(name string, src []byte) (*InputScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", name, err)
	}
	return &InputScript{Name: name, compiled: compiled}, nil
}

// Run executes the script for one tick.
func (s *InputScript) Run(ctx context.Context, tick int) (ScriptInput, error) {
	var in ScriptInput
	if err := s.compiled.Set("tick", tick); err != nil {
		return in, err
	}
	if err := s.compiled.RunContext(ctx); err != nil {
		return in, fmt.Errorf("prefabs: script %s tick %d: %w", s.Name, tick, err)
	}

	if v := s.compiled.Get("combo"); !v.IsUndefined() {
		seq, err := positions(v.Array())
		if err != nil {
			return in, fmt.Errorf("prefabs: script %s tick %d: %w", s.Name, tick, err)
		}
		in.Combo, in.HasCombo = seq, true
	}
	if v := s.compiled.Get("facing_left"); !v.IsUndefined() {
		in.FacingLeft, in.HasFacing = v.Bool(), true
	}
	return in, nil
}

func positions(raw []interface{}) ([]fighter.Position, error) {
	seq := make([]fighter.Position, 0, len(raw))
	for _, r := range raw {
		name, ok := r.(string)
		if !ok {
			return nil, fmt.Errorf("combo element %v is not a position name", r)
		}
		p, err := fighter.ParsePosition(name)
		if err != nil {
			return nil, err
		}
		seq = append(seq, p)
	}
	return seq, nil
}
