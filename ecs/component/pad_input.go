package component

import "github.com/milk9111/ohko/fighter"

type PadEventKind uint8

const (
	PadPress PadEventKind = iota + 1
	PadMove
	PadRelease
)

type PadEvent struct {
	Kind     PadEventKind
	Position fighter.Position
}

// PadInput buffers raw pointer events for a ControlPad.
type PadInput struct {
	Pad    *fighter.ControlPad
	Events []PadEvent
}

var PadInputComponent = NewComponent[PadInput]()
