package system

import (
	"time"

	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/ecs/component"
)

// PadInputSystem replays buffered pointer events through each entity's
// control pad and flushes released gestures into its ComboInput.
type PadInputSystem struct{}

func NewPadInputSystem() *PadInputSystem {
	return &PadInputSystem{}
}

func (p *PadInputSystem) Update(w *ecs.World, _ time.Duration) {
	ecs.ForEach2(w, component.PadInputComponent.Kind(), component.ComboInputComponent.Kind(), func(e ecs.Entity, pad *component.PadInput, input *component.ComboInput) {
		if pad.Pad == nil {
			pad.Events = pad.Events[:0]
			return
		}
		for _, ev := range pad.Events {
			switch ev.Kind {
			case component.PadPress:
				pad.Pad.Press(ev.Position)
			case component.PadMove:
				pad.Pad.Move(ev.Position)
			case component.PadRelease:
				if seq, ok := pad.Pad.Release(); ok {
					input.Push(seq)
				}
			}
		}
		pad.Events = pad.Events[:0]
	})
}
