package system

import (
	"log"
	"time"

	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/ecs/component"
)

const (
	hitFlashFrames   = 12
	hitFlashInterval = 3
)

// WhiteFlashSystem blinks struck characters. It must run after the
// collision system so the tick's hits are still queued.
type WhiteFlashSystem struct{}

func NewWhiteFlashSystem() *WhiteFlashSystem { return &WhiteFlashSystem{} }

func (s *WhiteFlashSystem) Update(w *ecs.World, _ time.Duration) {
	ecs.ForEach(w, component.WhiteFlashComponent.Kind(), func(e ecs.Entity, wf *component.WhiteFlash) {
		if wf.Interval <= 0 {
			wf.Interval = 1
		}
		wf.Timer++
		if wf.Timer >= wf.Interval {
			wf.Timer = 0
			wf.On = !wf.On
			wf.Frames -= wf.Interval
		}
		if wf.Frames <= 0 {
			ecs.Remove(w, e, component.WhiteFlashComponent.Kind())
		}
	})

	for _, evt := range ecs.Events(w).Peek() {
		hit, ok := evt.Data.(ecs.Hit)
		if !ok || !ecs.IsAlive(w, hit.Target) {
			continue
		}
		if wf, ok := ecs.Get(w, hit.Target, component.WhiteFlashComponent.Kind()); ok {
			wf.Frames = hitFlashFrames
			continue
		}
		if err := ecs.Add(w, hit.Target, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{
			Frames:   hitFlashFrames,
			Interval: hitFlashInterval,
			On:       true,
		}); err != nil {
			log.Printf("system: entity=%v: %v", hit.Target, err)
		}
	}
}
