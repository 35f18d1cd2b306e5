package system

import (
	"math"
	"time"

	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/ecs/component"
	"github.com/milk9111/ohko/fighter"
	"github.com/solarlune/resolv"
)

const defaultCellSize = 16

// CollisionSystem is the region-overlap dispatcher. Every tick it loads
// all world-space regions into a resolv spatial hash, narrows candidate
// pairs with an exact rectangle test and invokes OnCollision on the owner
// of each region. Regions outside the bounds are not considered.
type CollisionSystem struct {
	bounds  fighter.Rect
	space   *resolv.Space
	objects []*resolv.Object
}

type regionRef struct {
	entity ecs.Entity
	owner  fighter.Collider
	region fighter.Region
}

func NewCollisionSystem(bounds fighter.Rect, cellSize int) *CollisionSystem {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	w := int(math.Ceil(bounds.W))
	h := int(math.Ceil(bounds.H))
	return &CollisionSystem{
		bounds: bounds,
		space:  resolv.NewSpace(w, h, cellSize, cellSize),
	}
}

func (cs *CollisionSystem) Bounds() fighter.Rect { return cs.bounds }

func (cs *CollisionSystem) Update(w *ecs.World, _ time.Duration) {
	cs.reset()

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		if ch.Controller != nil {
			cs.insert(e, ch.Controller)
		}
	})
	ecs.ForEach(w, component.TerrainComponent.Kind(), func(e ecs.Entity, t *component.Terrain) {
		cs.insert(e, t)
	})

	for _, obj := range cs.objects {
		own := obj.Data.(*regionRef)
		check := obj.Check(0, 0)
		if check == nil {
			continue
		}
		seen := make(map[*resolv.Object]bool, len(check.Objects))
		for _, other := range check.Objects {
			if seen[other] {
				continue
			}
			seen[other] = true
			theirs, ok := other.Data.(*regionRef)
			if !ok || theirs.entity == own.entity {
				continue
			}
			if !own.region.Rect.Intersects(theirs.region.Rect) {
				continue
			}
			own.owner.OnCollision(theirs.owner, own.region, theirs.region)
			if own.region.Kind == fighter.BoxHit && theirs.region.Kind == fighter.BoxHurt {
				ecs.Events(w).Push(ecs.Event{
					Type: ecs.EventHit,
					Data: ecs.Hit{Attacker: own.entity, Target: theirs.entity, DamageMultiplier: own.region.DamageMultiplier},
				})
			}
		}
	}
}

func (cs *CollisionSystem) insert(e ecs.Entity, owner fighter.Collider) {
	for _, r := range owner.Regions() {
		if r.Rect.W <= 0 || r.Rect.H <= 0 {
			continue
		}
		obj := resolv.NewObject(r.Rect.X-cs.bounds.X, r.Rect.Y-cs.bounds.Y, r.Rect.W, r.Rect.H, r.Kind.String())
		obj.Data = &regionRef{entity: e, owner: owner, region: r}
		cs.space.Add(obj)
		cs.objects = append(cs.objects, obj)
	}
}

func (cs *CollisionSystem) reset() {
	if len(cs.objects) > 0 {
		cs.space.Remove(cs.objects...)
	}
	for i := range cs.objects {
		cs.objects[i] = nil
	}
	cs.objects = cs.objects[:0]
}
