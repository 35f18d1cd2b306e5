package component

import "github.com/milk9111/ohko/fighter"

// Character is a spawned fighter driven by the character system.
type Character struct {
	Controller *fighter.Controller
}

var CharacterComponent = NewComponent[Character]()
