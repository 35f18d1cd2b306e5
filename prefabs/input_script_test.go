package prefabs

import (
	"context"
	"testing"

	"github.com/milk9111/ohko/fighter"
)

func TestInputScriptRun(t *testing.T) {
	src := []byte(`
combo := undefined
if tick == 3 {
	combo = ["Center", "MiddleRight"]
}
facing_left := tick > 3
`)
	s, err := CompileInputScript("inline", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	in, err := s.Run(context.Background(), 1)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if in.HasCombo || !in.HasFacing || in.FacingLeft {
		t.Fatalf("unexpected input at tick 1: %+v", in)
	}

	in, err = s.Run(context.Background(), 3)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !in.HasCombo || len(in.Combo) != 2 || in.Combo[1] != fighter.MiddleRight {
		t.Fatalf("unexpected combo at tick 3: %+v", in)
	}

	in, _ = s.Run(context.Background(), 4)
	if in.HasCombo || !in.FacingLeft {
		t.Fatalf("combo must not leak into the next tick: %+v", in)
	}
}

func TestInputScriptErrors(t *testing.T) {
	if _, err := CompileInputScript("broken", []byte("combo := [")); err == nil {
		t.Fatalf("expected a compile error")
	}

	s, err := CompileInputScript("bad name", []byte(`combo := ["Center", "Sideways"]`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := s.Run(context.Background(), 0); err == nil {
		t.Fatalf("expected an unknown position error")
	}

	s, err = CompileInputScript("no facing", []byte(`combo := undefined`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	in, err := s.Run(context.Background(), 0)
	if err != nil || in.HasFacing {
		t.Fatalf("facing is optional: %+v %v", in, err)
	}
}

func TestEmbeddedDemoScriptCompiles(t *testing.T) {
	s, err := LoadInputScript("demo.tengo")
	if err != nil {
		t.Fatalf("LoadInputScript: %v", err)
	}
	in, err := s.Run(context.Background(), 60)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !in.HasCombo || len(in.Combo) != 2 {
		t.Fatalf("expected the first demo combo at tick 60, got %+v", in)
	}
}
