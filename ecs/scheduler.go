package ecs

import "time"

// System advances the world by one fixed step.
type System interface {
	Update(w *World, dt time.Duration)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update discards the previous step's undrained events, then runs every
// system in order.
func (s *Scheduler) Update(w *World, dt time.Duration) {
	w.events.flush()
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
