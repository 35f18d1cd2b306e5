package component

import "github.com/milk9111/ohko/physics"

// PhysicsBody links an entity to its Chipmunk2D body.
type PhysicsBody struct {
	Body *physics.Body
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
