package ecs

import "fmt"

// Entity is a handle: the low 32 bits index the entity store, the high 32
// bits hold the generation the index was issued under. A destroyed entity's
// index is reused with a bumped generation, so stale handles stop matching.
type Entity uint64

// NoEntity is the zero handle. Index 0 is never issued.
const NoEntity Entity = 0

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID { return entityID(e & 0xffffffff) }

func (e Entity) generation() generation { return generation(e >> 32) }

func (e Entity) Valid() bool { return e.id() != 0 }

func (e Entity) String() string {
	if !e.Valid() {
		return "none"
	}
	return fmt.Sprintf("%d.%d", e.id(), e.generation())
}
