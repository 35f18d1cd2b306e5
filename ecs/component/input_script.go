package component

import "github.com/milk9111/ohko/prefabs"

// InputScript drives an entity's ComboInput from a tengo program.
type InputScript struct {
	Script *prefabs.InputScript
	Tick   int
}

var InputScriptComponent = NewComponent[InputScript]()
