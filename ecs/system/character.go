package system

import (
	"time"

	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/ecs/component"
)

// CharacterSystem feeds queued input into each character and ticks it.
type CharacterSystem struct{}

func NewCharacterSystem() *CharacterSystem {
	return &CharacterSystem{}
}

func (c *CharacterSystem) Update(w *ecs.World, dt time.Duration) {
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		ctrl := ch.Controller
		if ctrl == nil {
			return
		}

		if input, ok := ecs.Get(w, e, component.ComboInputComponent.Kind()); ok {
			if input.FacingPending {
				ctrl.SetFacingLeft(input.FacingLeft)
				input.FacingPending = false
			}
			for _, seq := range input.Sequences {
				ctrl.AddCombo(seq)
			}
			input.Sequences = input.Sequences[:0]
		}

		before := ctrl.State()
		ctrl.Tick(dt)
		if after := ctrl.State(); after != before {
			ecs.Events(w).Push(ecs.Event{
				Type: ecs.EventStateChanged,
				Data: ecs.StateChange{Entity: e, From: before, To: after},
			})
		}
	})
}
