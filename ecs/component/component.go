package component

import (
	"errors"
	"reflect"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID numbers registered kinds from 1. Zero is never issued.
type ComponentID uint32

var registry struct {
	mu    sync.Mutex
	names []string
}

// KindName returns the Go type name registered for id.
func KindName(id ComponentID) string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return "invalid"
	}
	return registry.names[id-1]
}

// ComponentKind is the typed key of one component store.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.names = append(registry.names, reflect.TypeOf((*T)(nil)).Elem().String())
	return ComponentKind[T]{id: ComponentID(len(registry.names))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

func (k ComponentKind[T]) String() string { return KindName(k.id) }

// ComponentHandle is what each component file exports, e.g.
//
//	var NameComponent = NewComponent[Name]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
