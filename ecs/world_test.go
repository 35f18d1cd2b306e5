package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/ohko/ecs/component"
	"github.com/milk9111/ohko/fighter"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
		alive   int
	}{
		{"single", 1, nil, 1},
		{"destroy_middle", 3, []int{1}, 2},
		{"destroy_all", 2, []int{0, 1}, 0},
		{"destroy_twice", 2, []int{0, 0}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := CreateEntity(w)
				if !e.Valid() {
					t.Fatalf("created entity %v is not valid", e)
				}
				ents = append(ents, e)
			}
			destroyed := map[int]bool{}
			for _, i := range c.destroy {
				got := DestroyEntity(w, ents[i])
				if got == destroyed[i] {
					t.Fatalf("DestroyEntity(%v) = %v on second call %v", ents[i], got, destroyed[i])
				}
				destroyed[i] = true
				if IsAlive(w, ents[i]) {
					t.Fatalf("entity %v should be dead", ents[i])
				}
			}
			if n := len(Entities(w)); n != c.alive {
				t.Fatalf("expected %d live entities, got %d", c.alive, n)
			}
		})
	}
}

func TestEntityString(t *testing.T) {
	if s := NoEntity.String(); s != "none" {
		t.Fatalf("NoEntity.String() = %q", s)
	}
	if s := makeEntity(7, 2).String(); s != "7.2" {
		t.Fatalf("String() = %q, want 7.2", s)
	}
}

func TestComponentStores(t *testing.T) {
	w := NewWorld()
	hero := CreateEntity(w)
	floor := CreateEntity(w)
	ghost := CreateEntity(w)
	DestroyEntity(w, ghost)

	nameKind := component.NameComponent.Kind()
	terrainKind := component.TerrainComponent.Kind()

	tests := []struct {
		name    string
		add     func() error
		wantErr error
	}{
		{"name_on_hero", func() error { return Add(w, hero, nameKind, &component.Name{Value: "hero"}) }, nil},
		{"name_on_floor", func() error { return Add(w, floor, nameKind, &component.Name{Value: "floor"}) }, nil},
		{"terrain_on_floor", func() error {
			return Add(w, floor, terrainKind, &component.Terrain{Rect: fighter.Rect{W: 10, H: 2}, Tag: "ground"})
		}, nil},
		{"nil_component", func() error { return Add[component.Name](w, hero, nameKind, nil) }, component.ErrNilComponent},
		{"zero_kind", func() error {
			return Add(w, hero, component.ComponentKind[component.Name]{}, &component.Name{})
		}, component.ErrInvalidComponentKind},
		{"dead_entity", func() error { return Add(w, ghost, nameKind, &component.Name{Value: "ghost"}) }, component.ErrEntityNotAlive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.add()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if n, ok := Get(w, hero, nameKind); !ok || n.Value != "hero" {
		t.Fatalf("expected hero name, got %+v", n)
	}
	if Has(w, hero, terrainKind) {
		t.Fatal("hero should not be terrain")
	}
	if Has(w, ghost, nameKind) {
		t.Fatal("dead entity should hold nothing")
	}

	var both []Entity
	ForEach2(w, nameKind, terrainKind, func(e Entity, n *component.Name, tr *component.Terrain) {
		both = append(both, e)
		if n.Value != "floor" || tr.Tag != "ground" {
			t.Fatalf("unexpected pair %+v %+v", n, tr)
		}
	})
	if len(both) != 1 || both[0] != floor {
		t.Fatalf("expected only the floor, got %v", both)
	}

	if !Remove(w, floor, terrainKind) || Remove(w, floor, terrainKind) {
		t.Fatal("Remove should succeed once")
	}
	if !DestroyEntity(w, hero) {
		t.Fatal("expected hero destroyed")
	}
	if _, ok := Get(w, hero, nameKind); ok {
		t.Fatal("destroyed entity kept its components")
	}
}

func TestForEachAllowsRemoval(t *testing.T) {
	w := NewWorld()
	kind := component.NameComponent.Kind()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), kind, &component.Name{})
	}
	visited := 0
	ForEach(w, kind, func(e Entity, _ *component.Name) {
		visited++
		Remove(w, e, kind)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if _, _, ok := First(w, kind); ok {
		t.Fatal("expected every name removed")
	}
}

func TestComponentKindNames(t *testing.T) {
	if got := component.NameComponent.Kind().String(); got != "component.Name" {
		t.Fatalf("kind name = %q", got)
	}
	if got := component.KindName(0); got != "invalid" {
		t.Fatalf("zero kind name = %q", got)
	}
}
