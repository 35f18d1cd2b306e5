package system

import (
	"time"

	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/physics"
)

// PhysicsSystem integrates the Chipmunk space before characters update.
type PhysicsSystem struct {
	world *physics.World
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (ps *PhysicsSystem) World() *physics.World {
	if ps == nil {
		return nil
	}
	return ps.world
}

func (ps *PhysicsSystem) Update(_ *ecs.World, dt time.Duration) {
	if ps == nil || ps.world == nil {
		return
	}
	ps.world.Step(dt)
}
