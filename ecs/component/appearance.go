package component

import (
	"image/color"

	"github.com/milk9111/ohko/fighter"
)

// Appearance is how the sandbox draws an entity's hull.
type Appearance struct {
	Hull  fighter.Rect
	Color color.Color
}

var AppearanceComponent = NewComponent[Appearance]()
