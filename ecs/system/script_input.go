package system

import (
	"context"
	"log"
	"time"

	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/ecs/component"
)

// ScriptInputSystem runs each entity's input script once per tick.
type ScriptInputSystem struct {
	ctx context.Context
}

func NewScriptInputSystem(ctx context.Context) *ScriptInputSystem {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ScriptInputSystem{ctx: ctx}
}

func (s *ScriptInputSystem) Update(w *ecs.World, _ time.Duration) {
	ecs.ForEach2(w, component.InputScriptComponent.Kind(), component.ComboInputComponent.Kind(), func(e ecs.Entity, script *component.InputScript, input *component.ComboInput) {
		if script.Script == nil {
			return
		}
		tick := script.Tick
		script.Tick++

		in, err := script.Script.Run(s.ctx, tick)
		if err != nil {
			log.Printf("system: entity=%v: %v", e, err)
			return
		}
		if in.HasFacing {
			input.Face(in.FacingLeft)
		}
		if in.HasCombo {
			input.Push(in.Combo)
		}
	})
}
