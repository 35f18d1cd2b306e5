package component

import "github.com/milk9111/ohko/fighter"

// Terrain is a static CollisionBox region, usually tagged as ground.
type Terrain struct {
	Rect fighter.Rect
	Tag  string
}

func (t *Terrain) Regions() []fighter.Region {
	return []fighter.Region{{Kind: fighter.BoxCollision, Rect: t.Rect, Tag: t.Tag}}
}

func (t *Terrain) OnCollision(fighter.Collider, fighter.Region, fighter.Region) {}

var TerrainComponent = NewComponent[Terrain]()
